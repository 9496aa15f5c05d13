package chainwatch

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

// LogBatch is one delivery from a live subscription. Logs holds every
// matching log in (Through of the previous batch, Through], ascending. When
// Err is set, Logs is empty and Through is meaningless.
type LogBatch struct {
	Logs    []types.Log
	Through uint64
	Err     error
}

// Blockchain is the chain RPC surface a watcher needs.
type Blockchain interface {
	// BlockNumber returns the current head height.
	BlockNumber(ctx context.Context) (uint64, error)

	// FilterLogs returns the logs matching q over its block range.
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)

	// Subscribe streams logs matching q starting at block from (inclusive).
	// The channel is closed when ctx is canceled.
	Subscribe(ctx context.Context, q ethereum.FilterQuery, from uint64) (<-chan LogBatch, error)
}
