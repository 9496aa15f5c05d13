package chainwatch

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no watermark
// has been saved for the chain yet.
var ErrNoCheckpointFound = errors.New("no checkpoint found for chain")

// CheckpointStorage persists the watermark of each chain: the last block
// whose events were all delivered.
type CheckpointStorage interface {
	// SaveCheckpoint overwrites the watermark of chainID.
	SaveCheckpoint(ctx context.Context, chainID uint64, block uint64) error

	// LoadLatestCheckpoint returns ErrNoCheckpointFound when chainID has no
	// watermark.
	LoadLatestCheckpoint(ctx context.Context, chainID uint64) (uint64, error)
}

// nopCheckpoint keeps no state; every start catches up from the configured
// start block.
type nopCheckpoint struct{}

var _ CheckpointStorage = nopCheckpoint{}

func (nopCheckpoint) SaveCheckpoint(context.Context, uint64, uint64) error { return nil }

func (nopCheckpoint) LoadLatestCheckpoint(context.Context, uint64) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
