package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gabapcia/bridgerelay/internal/chainwatch"

	"github.com/jackc/pgx/v5"
)

const (
	querySaveCheckpoint = `INSERT INTO relayer_state (chain_id, last_processed_block, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (chain_id) DO UPDATE SET
		last_processed_block = EXCLUDED.last_processed_block,
		updated_at = EXCLUDED.updated_at`

	queryLoadCheckpoint = `SELECT last_processed_block FROM relayer_state WHERE chain_id = $1`
)

var _ chainwatch.CheckpointStorage = (*Store)(nil)

// SaveCheckpoint overwrites the watermark of chainID.
func (s *Store) SaveCheckpoint(ctx context.Context, chainID uint64, block uint64) error {
	if block > math.MaxInt64 {
		return fmt.Errorf("checkpoint %d of chain %d does not fit a BIGINT", block, chainID)
	}

	if _, err := s.db.Exec(ctx, querySaveCheckpoint, int64(chainID), int64(block), s.now()); err != nil {
		return fmt.Errorf("save checkpoint of chain %d: %w", chainID, err)
	}
	return nil
}

// LoadLatestCheckpoint returns chainwatch.ErrNoCheckpointFound when the chain
// has no row yet.
func (s *Store) LoadLatestCheckpoint(ctx context.Context, chainID uint64) (uint64, error) {
	var block int64
	err := s.db.QueryRow(ctx, queryLoadCheckpoint, int64(chainID)).Scan(&block)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, chainwatch.ErrNoCheckpointFound
	}
	if err != nil {
		return 0, fmt.Errorf("load checkpoint of chain %d: %w", chainID, err)
	}
	if block < 0 {
		return 0, fmt.Errorf("checkpoint of chain %d is negative: %d", chainID, block)
	}

	return uint64(block), nil
}
