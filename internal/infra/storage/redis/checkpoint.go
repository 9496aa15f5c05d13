package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/bridgerelay/internal/chainwatch"

	"github.com/redis/go-redis/v9"
)

const checkpointKeyPrefix = "relayer"

// checkpointKey returns the key holding the watermark of chainID:
//
//	"relayer:checkpoint:<chainID>"
func checkpointKey(chainID uint64) string {
	return fmt.Sprintf("%s:checkpoint:%d", checkpointKeyPrefix, chainID)
}

// SaveCheckpoint overwrites the watermark of chainID. The key never expires.
func (c *client) SaveCheckpoint(ctx context.Context, chainID uint64, block uint64) error {
	return c.conn.Set(ctx, checkpointKey(chainID), strconv.FormatUint(block, 10), 0).Err()
}

// LoadLatestCheckpoint returns chainwatch.ErrNoCheckpointFound when the chain
// has no watermark yet.
func (c *client) LoadLatestCheckpoint(ctx context.Context, chainID uint64) (uint64, error) {
	val, err := c.conn.Get(ctx, checkpointKey(chainID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainwatch.ErrNoCheckpointFound
		}

		return 0, err
	}

	block, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse checkpoint %q of chain %d: %w", val, chainID, err)
	}

	return block, nil
}

var _ chainwatch.CheckpointStorage = (*client)(nil)
