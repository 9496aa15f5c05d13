package txqueue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/bridgerelay/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNotFound is returned when an entry does not exist.
var ErrNotFound = errors.New("queue entry not found")

// Repository is the durable store behind the queue. The queue only ever hands
// it copies; the repository never drives state transitions.
type Repository interface {
	// Save upserts the entry by id.
	Save(ctx context.Context, entry Entry) error

	// UpdateStatus changes the status of an existing entry. settlementHash is
	// recorded when non-nil.
	UpdateStatus(ctx context.Context, id string, status Status, settlementHash *common.Hash) error

	// GetByID returns ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (Entry, error)

	GetByStatus(ctx context.Context, status Status) ([]Entry, error)

	// GetPendingOrRetryReady returns a bounded batch of claimable entries,
	// oldest first.
	GetPendingOrRetryReady(ctx context.Context, now time.Time) ([]Entry, error)

	// GetByUser returns the newest entries for user, at most limit.
	GetByUser(ctx context.Context, user common.Address, limit int) ([]Entry, error)

	// CleanupOlderThan deletes completed entries last updated before age ago
	// and returns how many were removed.
	CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error)

	GetStats(ctx context.Context) (Stats, error)
}

type nopRepository struct{}

var _ Repository = nopRepository{}

func (nopRepository) Save(context.Context, Entry) error { return nil }

func (nopRepository) UpdateStatus(context.Context, string, Status, *common.Hash) error { return nil }

func (nopRepository) GetByID(context.Context, string) (Entry, error) { return Entry{}, ErrNotFound }

func (nopRepository) GetByStatus(context.Context, Status) ([]Entry, error) { return nil, nil }

func (nopRepository) GetPendingOrRetryReady(context.Context, time.Time) ([]Entry, error) {
	return nil, nil
}

func (nopRepository) GetByUser(context.Context, common.Address, int) ([]Entry, error) {
	return nil, nil
}

func (nopRepository) CleanupOlderThan(context.Context, time.Duration) (int64, error) { return 0, nil }

func (nopRepository) GetStats(context.Context) (Stats, error) { return Stats{}, nil }

type writeKind int

const (
	writeSave writeKind = iota
	writeStatus
)

type writeOp struct {
	kind  writeKind
	entry Entry
}

// writer applies persistence operations on a single goroutine in the order
// they were enqueued. Enqueue never blocks on the repository, and a later
// snapshot of an entry can never be overwritten by an earlier one.
type writer struct {
	repo    Repository
	timeout time.Duration

	mu      sync.Mutex
	pending []writeOp
	closed  bool

	signal chan struct{}
	done   chan struct{}
}

func newWriter(repo Repository, timeout time.Duration) *writer {
	w := &writer{
		repo:    repo,
		timeout: timeout,
		signal:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	go w.run()
	return w
}

func (w *writer) notify() {
	select {
	case w.signal <- struct{}{}:
	default:
	}
}

// enqueue schedules op. Operations enqueued after close are dropped.
func (w *writer) enqueue(op writeOp) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		logger.Warn(context.Background(), "queue persistence closed, dropping write",
			"queue.entry_id", op.entry.ID,
		)
		return
	}
	w.pending = append(w.pending, op)
	w.mu.Unlock()

	w.notify()
}

func (w *writer) take() ([]writeOp, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	batch := w.pending
	w.pending = nil
	return batch, w.closed
}

func (w *writer) run() {
	defer close(w.done)

	for range w.signal {
		for {
			batch, closed := w.take()
			if len(batch) == 0 {
				if closed {
					return
				}
				break
			}

			for _, op := range batch {
				w.apply(op)
			}
		}
	}
}

func (w *writer) apply(op writeOp) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	var err error
	switch op.kind {
	case writeSave:
		err = w.repo.Save(ctx, op.entry)
	case writeStatus:
		var hash *common.Hash
		if op.entry.Status == StatusCompleted {
			hash = &op.entry.SettlementHash
		}
		err = w.repo.UpdateStatus(ctx, op.entry.ID, op.entry.Status, hash)
	}

	if err != nil {
		logger.Error(ctx, "failed to persist queue entry",
			"queue.entry_id", op.entry.ID,
			"queue.status", op.entry.Status,
			"error", err,
		)
	}
}

// close stops accepting writes and waits until every pending write has been
// attempted or ctx is done.
func (w *writer) close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	w.notify()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
