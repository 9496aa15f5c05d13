package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/bridgerelay/internal/bridge"
	"github.com/gabapcia/bridgerelay/internal/txqueue"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

const entryColumns = `id, token, user_address, amount, transaction_id, source_chain_id, target_chain_id, nonce,
	status, retry_count, max_retries, last_error, settlement_hash, next_retry_at, recovered, created_at, updated_at`

const (
	querySaveEntry = `INSERT INTO bridge_transactions (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	ON CONFLICT (id) DO UPDATE SET
		status          = EXCLUDED.status,
		retry_count     = EXCLUDED.retry_count,
		max_retries     = EXCLUDED.max_retries,
		last_error      = EXCLUDED.last_error,
		settlement_hash = EXCLUDED.settlement_hash,
		next_retry_at   = EXCLUDED.next_retry_at,
		recovered       = EXCLUDED.recovered,
		updated_at      = EXCLUDED.updated_at`

	queryUpdateStatus = `UPDATE bridge_transactions SET
		status          = $2,
		settlement_hash = COALESCE($3, settlement_hash),
		next_retry_at   = CASE WHEN $2 = 'FAILED' THEN next_retry_at ELSE NULL END,
		recovered       = CASE WHEN $2 = 'COMPLETED' THEN FALSE ELSE recovered END,
		updated_at      = $4
	WHERE id = $1`

	queryGetByID = `SELECT ` + entryColumns + ` FROM bridge_transactions WHERE id = $1`

	queryGetByStatus = `SELECT ` + entryColumns + ` FROM bridge_transactions WHERE status = $1 ORDER BY created_at`

	queryPendingOrRetryReady = `SELECT ` + entryColumns + ` FROM bridge_transactions
	WHERE status = 'PENDING'
		OR (status = 'FAILED' AND retry_count < max_retries AND next_retry_at <= $1)
	ORDER BY created_at
	LIMIT $2`

	queryGetByUser = `SELECT ` + entryColumns + ` FROM bridge_transactions
	WHERE user_address = $1
	ORDER BY created_at DESC
	LIMIT $2`

	queryCleanup = `DELETE FROM bridge_transactions WHERE status = 'COMPLETED' AND updated_at < $1`

	queryStats = `SELECT status, COUNT(*), COUNT(*) FILTER (WHERE retry_count >= max_retries)
	FROM bridge_transactions
	GROUP BY status`
)

var _ txqueue.Repository = (*Store)(nil)

func (s *Store) Save(ctx context.Context, entry txqueue.Entry) error {
	tx := entry.Tx

	_, err := s.db.Exec(ctx, querySaveEntry,
		entry.ID,
		tx.Token.Hex(),
		tx.User.Hex(),
		formatInt(tx.Amount),
		tx.TransactionID.Hex(),
		int64(tx.SourceChainID),
		int64(tx.TargetChainID),
		formatInt(tx.Nonce),
		string(entry.Status),
		entry.RetryCount,
		entry.MaxRetries,
		entry.LastError,
		formatHash(entry.SettlementHash),
		entry.NextRetryAt,
		entry.Recovered,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save entry %s: %w", entry.ID, err)
	}
	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id string, status txqueue.Status, settlementHash *common.Hash) error {
	var hash *string
	if settlementHash != nil {
		h := settlementHash.Hex()
		hash = &h
	}

	tag, err := s.db.Exec(ctx, queryUpdateStatus, id, string(status), hash, s.now())
	if err != nil {
		return fmt.Errorf("update entry %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", txqueue.ErrNotFound, id)
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (txqueue.Entry, error) {
	entry, err := scanEntry(s.db.QueryRow(ctx, queryGetByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return txqueue.Entry{}, fmt.Errorf("%w: %s", txqueue.ErrNotFound, id)
		}
		return txqueue.Entry{}, err
	}
	return entry, nil
}

func (s *Store) GetByStatus(ctx context.Context, status txqueue.Status) ([]txqueue.Entry, error) {
	return s.queryEntries(ctx, queryGetByStatus, string(status))
}

func (s *Store) GetPendingOrRetryReady(ctx context.Context, now time.Time) ([]txqueue.Entry, error) {
	return s.queryEntries(ctx, queryPendingOrRetryReady, now, s.readyBatchSize)
}

func (s *Store) GetByUser(ctx context.Context, user common.Address, limit int) ([]txqueue.Entry, error) {
	return s.queryEntries(ctx, queryGetByUser, user.Hex(), limit)
}

func (s *Store) CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	tag, err := s.db.Exec(ctx, queryCleanup, s.now().Add(-age))
	if err != nil {
		return 0, fmt.Errorf("cleanup entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *Store) GetStats(ctx context.Context) (txqueue.Stats, error) {
	rows, err := s.db.Query(ctx, queryStats)
	if err != nil {
		return txqueue.Stats{}, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var stats txqueue.Stats
	for rows.Next() {
		var (
			status           string
			count, exhausted int
		)
		if err := rows.Scan(&status, &count, &exhausted); err != nil {
			return txqueue.Stats{}, fmt.Errorf("scan stats: %w", err)
		}

		stats.Total += count
		switch txqueue.Status(status) {
		case txqueue.StatusPending:
			stats.Pending = count
		case txqueue.StatusProcessing:
			stats.Processing = count
		case txqueue.StatusCompleted:
			stats.Completed = count
		case txqueue.StatusFailed:
			stats.Failed = count
			stats.Exhausted = exhausted
		}
	}

	return stats, rows.Err()
}

func (s *Store) queryEntries(ctx context.Context, sql string, args ...any) ([]txqueue.Entry, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []txqueue.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (txqueue.Entry, error) {
	var (
		entry                        txqueue.Entry
		token, user, amount, nonce   string
		transactionID, status, hash  string
		sourceChainID, targetChainID int64
	)

	err := row.Scan(
		&entry.ID,
		&token,
		&user,
		&amount,
		&transactionID,
		&sourceChainID,
		&targetChainID,
		&nonce,
		&status,
		&entry.RetryCount,
		&entry.MaxRetries,
		&entry.LastError,
		&hash,
		&entry.NextRetryAt,
		&entry.Recovered,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return txqueue.Entry{}, err
	}

	entry.Status = txqueue.Status(status)
	if !entry.Status.Valid() {
		return txqueue.Entry{}, fmt.Errorf("entry %s: unknown status %q", entry.ID, status)
	}

	amountValue, err := parseInt(amount)
	if err != nil {
		return txqueue.Entry{}, fmt.Errorf("entry %s: amount: %w", entry.ID, err)
	}

	nonceValue, err := parseInt(nonce)
	if err != nil {
		return txqueue.Entry{}, fmt.Errorf("entry %s: nonce: %w", entry.ID, err)
	}

	entry.Tx = bridge.Transaction{
		Token:         common.HexToAddress(token),
		User:          common.HexToAddress(user),
		Amount:        amountValue,
		TransactionID: common.HexToHash(transactionID),
		SourceChainID: uint64(sourceChainID),
		TargetChainID: uint64(targetChainID),
		Nonce:         nonceValue,
	}

	if hash != "" {
		entry.SettlementHash = common.HexToHash(hash)
	}

	return entry, nil
}

func formatInt(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func parseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

func formatHash(h common.Hash) string {
	if h == (common.Hash{}) {
		return ""
	}
	return h.Hex()
}
