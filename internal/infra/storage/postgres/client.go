// Package postgres persists queue entries, observed bridge events and chain
// watermarks with pgx. The relayer treats it as a write-behind copy; the in-memory queue stays
// authoritative while the process runs.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultReadyBatchSize = 100

// db is the subset of *pgxpool.Pool the store uses.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db    db
	close func()

	now            func() time.Time
	readyBatchSize int
}

type Option func(*Store)

// WithClock overrides the time source used for update timestamps and cleanup.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithReadyBatchSize bounds GetPendingOrRetryReady. Default: 100.
func WithReadyBatchSize(n int) Option {
	return func(s *Store) {
		s.readyBatchSize = n
	}
}

// Open connects to dsn, pings the server and creates the schema when missing.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := newStore(pool, pool.Close, opts...)
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func newStore(conn db, closeFn func(), opts ...Option) *Store {
	s := &Store{
		db:             conn,
		close:          closeFn,
		now:            time.Now,
		readyBatchSize: defaultReadyBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Migrate creates the tables and indexes the store needs. It is safe to run
// on every start.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bridge_transactions (
		id              TEXT PRIMARY KEY,
		token           TEXT NOT NULL,
		user_address    TEXT NOT NULL,
		amount          TEXT NOT NULL,
		transaction_id  TEXT NOT NULL,
		source_chain_id BIGINT NOT NULL,
		target_chain_id BIGINT NOT NULL,
		nonce           TEXT NOT NULL,
		status          TEXT NOT NULL,
		retry_count     INTEGER NOT NULL DEFAULT 0,
		max_retries     INTEGER NOT NULL,
		last_error      TEXT NOT NULL DEFAULT '',
		settlement_hash TEXT NOT NULL DEFAULT '',
		next_retry_at   TIMESTAMPTZ,
		recovered       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS bridge_transactions_status_idx ON bridge_transactions (status, created_at)`,
	`CREATE INDEX IF NOT EXISTS bridge_transactions_user_idx ON bridge_transactions (user_address, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS event_logs (
		id               BIGSERIAL PRIMARY KEY,
		chain_id         BIGINT NOT NULL,
		kind             TEXT NOT NULL,
		block_number     BIGINT NOT NULL,
		transaction_hash TEXT NOT NULL,
		log_index        INTEGER NOT NULL,
		target_chain_id  BIGINT NOT NULL,
		token            TEXT NOT NULL,
		user_address     TEXT NOT NULL,
		amount           TEXT NOT NULL,
		nonce            TEXT NOT NULL,
		observed_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (chain_id, transaction_hash, log_index)
	)`,
	`CREATE TABLE IF NOT EXISTS relayer_state (
		chain_id             BIGINT PRIMARY KEY,
		last_processed_block BIGINT NOT NULL,
		updated_at           TIMESTAMPTZ NOT NULL
	)`,
}
