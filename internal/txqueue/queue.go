// Package txqueue implements the relay retry queue: an in-memory, insertion
// ordered collection of bridge transactions in flight, with a write-behind
// copy kept in a Repository for crash recovery.
//
// Lifecycle of an entry:
//
//	PENDING ──claim──▶ PROCESSING ──success──▶ COMPLETED
//	   ▲                    │
//	   │ backoff elapsed    │ failure
//	   └────────────────── FAILED ──(retries exhausted)──▶ FAILED (terminal)
//
// Every state transition happens under one mutex. The repository receives
// snapshots on a separate goroutine, so storage latency or outages never
// block the relay path; write failures are logged and otherwise ignored.
package txqueue

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/bridgerelay/internal/bridge"
	"github.com/gabapcia/bridgerelay/internal/pkg/logger"
	"github.com/gabapcia/bridgerelay/internal/pkg/telemetry"
	"github.com/gabapcia/bridgerelay/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	// ErrAlreadyClaimed is returned when an entry is already being processed.
	ErrAlreadyClaimed = errors.New("queue entry already claimed")

	// ErrNotClaimed is returned when a result is reported for an entry that is
	// not PROCESSING.
	ErrNotClaimed = errors.New("queue entry not claimed")

	// ErrNotEligible is returned when claiming a COMPLETED or exhausted entry.
	ErrNotEligible = errors.New("queue entry not eligible for processing")

	// ErrQueueClosed is returned by Add after Close.
	ErrQueueClosed = errors.New("queue closed")
)

// recoveredError is recorded on entries found PROCESSING at restore time.
const recoveredError = "relayer stopped while the entry was processing"

// Queue is the retry queue contract used by watchers and the processor.
type Queue interface {
	// Add enqueues tx as PENDING. When an entry with the same id exists it is
	// returned unchanged and added is false.
	Add(ctx context.Context, tx bridge.Transaction, maxRetries int) (entry Entry, added bool, err error)

	// GetNext returns the first claimable entry in insertion order without
	// claiming it.
	GetNext() (Entry, bool)

	// Claim atomically selects the next claimable entry and marks it PROCESSING.
	Claim(ctx context.Context) (Entry, bool)

	// MarkProcessing claims a specific entry.
	MarkProcessing(ctx context.Context, id string) (Entry, error)

	// MarkCompleted records a successful settlement and releases the claim.
	MarkCompleted(ctx context.Context, id string, settlementHash common.Hash) (Entry, error)

	// MarkFailed records a failed attempt, releases the claim and schedules the
	// next retry at baseDelay * 2^(retryCount-1) when retries remain.
	MarkFailed(ctx context.Context, id string, cause string, baseDelay time.Duration) (Entry, error)

	// Cleanup removes COMPLETED entries last updated more than maxAge ago and
	// returns how many were removed.
	Cleanup(ctx context.Context, maxAge time.Duration) int

	Get(id string) (Entry, bool)
	GetByStatus(status Status) []Entry
	PendingOrRetryReady(now time.Time) []Entry
	Stats() Stats
	Size() int

	// Restore loads persisted entries. Entries persisted as PROCESSING come
	// back PENDING with Recovered set.
	Restore(ctx context.Context) error

	// Close flushes pending persistence writes.
	Close(ctx context.Context) error
}

type queue struct {
	mu      sync.Mutex
	entries map[string]*Entry
	order   []string
	claimed types.Set[string]
	closed  bool

	now    func() time.Time
	repo   Repository
	writer *writer
}

var _ Queue = (*queue)(nil)

// New returns an empty queue.
func New(opts ...Option) (Queue, error) {
	cfg := config{
		now:          time.Now,
		repo:         nopRepository{},
		writeTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	q := &queue{
		entries: make(map[string]*Entry),
		claimed: types.NewSet[string](),
		now:     cfg.now,
		repo:    cfg.repo,
		writer:  newWriter(cfg.repo, cfg.writeTimeout),
	}

	if err := q.registerMetrics(); err != nil {
		return nil, errors.Join(err, q.writer.close(context.Background()))
	}

	return q, nil
}

func (q *queue) registerMetrics() error {
	_, err := telemetry.Meter("txqueue").Int64ObservableGauge(
		"relayer.queue.entries",
		metric.WithDescription("Queue entries per status"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			stats := q.Stats()
			o.Observe(int64(stats.Pending), metric.WithAttributes(attribute.String("status", string(StatusPending))))
			o.Observe(int64(stats.Processing), metric.WithAttributes(attribute.String("status", string(StatusProcessing))))
			o.Observe(int64(stats.Completed), metric.WithAttributes(attribute.String("status", string(StatusCompleted))))
			o.Observe(int64(stats.Failed-stats.Exhausted), metric.WithAttributes(attribute.String("status", string(StatusFailed))))
			o.Observe(int64(stats.Exhausted), metric.WithAttributes(attribute.String("status", "EXHAUSTED")))
			return nil
		}),
	)
	return err
}

func (q *queue) Add(ctx context.Context, tx bridge.Transaction, maxRetries int) (Entry, bool, error) {
	id := EntryID(tx)

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return Entry{}, false, ErrQueueClosed
	}

	if existing, ok := q.entries[id]; ok {
		if !existing.Tx.Equal(tx) {
			logger.Warn(ctx, "duplicate queue id with different transaction fields",
				"queue.entry_id", id,
			)
		}
		return existing.clone(), false, nil
	}

	now := q.now()
	entry := &Entry{
		ID:         id,
		Tx:         tx.Clone(),
		Status:     StatusPending,
		MaxRetries: maxRetries,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	q.entries[id] = entry
	q.order = append(q.order, id)
	q.writer.enqueue(writeOp{kind: writeSave, entry: entry.clone()})

	return entry.clone(), true, nil
}

// next returns the first claimable entry. Callers hold q.mu.
func (q *queue) next(now time.Time) *Entry {
	for _, id := range q.order {
		if q.claimed.Has(id) {
			continue
		}

		if entry := q.entries[id]; entry.IsEligible(now) {
			return entry
		}
	}
	return nil
}

func (q *queue) GetNext() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry := q.next(q.now())
	if entry == nil {
		return Entry{}, false
	}
	return entry.clone(), true
}

func (q *queue) Claim(ctx context.Context) (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry := q.next(q.now())
	if entry == nil {
		return Entry{}, false
	}

	q.markProcessing(entry)
	return entry.clone(), true
}

func (q *queue) markProcessing(entry *Entry) {
	entry.Status = StatusProcessing
	entry.NextRetryAt = nil
	entry.UpdatedAt = q.now()

	q.claimed.Add(entry.ID)
	q.writer.enqueue(writeOp{kind: writeStatus, entry: entry.clone()})
}

func (q *queue) MarkProcessing(ctx context.Context, id string) (Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, ok := q.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	switch {
	case q.claimed.Has(id):
		return entry.clone(), ErrAlreadyClaimed
	case entry.Status == StatusCompleted, entry.IsExhausted():
		return entry.clone(), ErrNotEligible
	}

	q.markProcessing(entry)
	return entry.clone(), nil
}

// claimedEntry returns the PROCESSING entry for id. Callers hold q.mu.
func (q *queue) claimedEntry(id string) (*Entry, error) {
	entry, ok := q.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if entry.Status != StatusProcessing || !q.claimed.Has(id) {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotClaimed, id, entry.Status)
	}

	return entry, nil
}

func (q *queue) MarkCompleted(ctx context.Context, id string, settlementHash common.Hash) (Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, err := q.claimedEntry(id)
	if err != nil {
		return Entry{}, err
	}

	entry.Status = StatusCompleted
	entry.SettlementHash = settlementHash
	entry.NextRetryAt = nil
	entry.Recovered = false
	entry.UpdatedAt = q.now()

	q.claimed.Delete(id)
	q.writer.enqueue(writeOp{kind: writeStatus, entry: entry.clone()})

	return entry.clone(), nil
}

func (q *queue) MarkFailed(ctx context.Context, id string, cause string, baseDelay time.Duration) (Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, err := q.claimedEntry(id)
	if err != nil {
		return Entry{}, err
	}

	now := q.now()

	entry.Status = StatusFailed
	entry.RetryCount++
	entry.LastError = cause
	entry.UpdatedAt = now
	entry.NextRetryAt = nil

	if entry.RetryCount < entry.MaxRetries {
		next := now.Add(backoff(baseDelay, entry.RetryCount))
		entry.NextRetryAt = &next
	}

	q.claimed.Delete(id)
	q.writer.enqueue(writeOp{kind: writeSave, entry: entry.clone()})

	return entry.clone(), nil
}

func (q *queue) Cleanup(ctx context.Context, maxAge time.Duration) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	removed := 0

	q.order = slices.DeleteFunc(q.order, func(id string) bool {
		entry := q.entries[id]
		if entry.Status != StatusCompleted || now.Sub(entry.UpdatedAt) <= maxAge {
			return false
		}

		delete(q.entries, id)
		removed++
		return true
	})

	if removed > 0 {
		logger.Info(ctx, "removed completed queue entries", "queue.removed", removed)
	}

	return removed
}

func (q *queue) Get(id string) (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, ok := q.entries[id]
	if !ok {
		return Entry{}, false
	}
	return entry.clone(), true
}

func (q *queue) collect(keep func(*Entry) bool) []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []Entry
	for _, id := range q.order {
		if entry := q.entries[id]; keep(entry) {
			out = append(out, entry.clone())
		}
	}
	return out
}

func (q *queue) GetByStatus(status Status) []Entry {
	return q.collect(func(e *Entry) bool { return e.Status == status })
}

func (q *queue) PendingOrRetryReady(now time.Time) []Entry {
	return q.collect(func(e *Entry) bool { return e.IsEligible(now) })
}

func (q *queue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()

	var stats Stats
	for _, entry := range q.entries {
		stats.count(*entry)
	}
	return stats
}

func (q *queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}

func (q *queue) Restore(ctx context.Context) error {
	var loaded []Entry
	for _, status := range Statuses {
		entries, err := q.repo.GetByStatus(ctx, status)
		if err != nil {
			return fmt.Errorf("load %s entries: %w", status, err)
		}
		loaded = append(loaded, entries...)
	}

	slices.SortStableFunc(loaded, func(a, b Entry) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	q.mu.Lock()
	defer q.mu.Unlock()

	recovered := 0
	for _, persisted := range loaded {
		if _, ok := q.entries[persisted.ID]; ok {
			continue
		}

		entry := persisted.clone()
		if entry.Status == StatusProcessing {
			entry.Status = StatusPending
			entry.Recovered = true
			entry.LastError = recoveredError
			entry.NextRetryAt = nil
			entry.UpdatedAt = q.now()
			recovered++

			q.writer.enqueue(writeOp{kind: writeSave, entry: entry.clone()})
		}

		q.entries[entry.ID] = &entry
		q.order = append(q.order, entry.ID)
	}

	logger.Info(ctx, "queue restored",
		"queue.restored", len(loaded),
		"queue.recovered", recovered,
	)

	return nil
}

func (q *queue) Close(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	return q.writer.close(ctx)
}
