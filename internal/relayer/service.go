// Package relayer wires the chain watchers, the retry queue and the queue
// processor into one service and owns their startup and shutdown order.
//
// Startup restores the queue, catches every chain up concurrently, opens the
// live subscriptions and only then starts the processor. Shutdown runs in the
// opposite direction: the processor stops claiming first, then the watchers
// close their subscriptions, then the queue flushes its persistence writes.
package relayer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/bridgerelay/internal/bridge"
	"github.com/gabapcia/bridgerelay/internal/chainwatch"
	"github.com/gabapcia/bridgerelay/internal/pkg/logger"
	"github.com/gabapcia/bridgerelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/bridgerelay/internal/queueproc"
	"github.com/gabapcia/bridgerelay/internal/txqueue"

	"golang.org/x/sync/errgroup"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// EventRecorder keeps an audit trail of every observed bridge event.
type EventRecorder interface {
	RecordEvent(ctx context.Context, event bridge.ChainEvent) error
}

type nopRecorder struct{}

func (nopRecorder) RecordEvent(context.Context, bridge.ChainEvent) error { return nil }

type Service interface {
	// Start brings the relay pipeline up. A catch-up that still fails after
	// its retries aborts startup and is returned.
	Start(ctx context.Context) error

	// Close shuts the pipeline down. It is safe to call Close even if the
	// service was never started.
	Close()
}

type service struct {
	queue     txqueue.Queue
	processor queueproc.Service
	watchers  []chainwatch.Service
	cfg       config

	mu        sync.Mutex
	isStarted bool
	closeFunc func()
}

var _ Service = (*service)(nil)

type config struct {
	maxRetries    int
	flushTimeout  time.Duration
	recorder      EventRecorder
	catchUpRetry  retry.Retry
	afterShutdown []func()
}

type Option func(*config)

// WithMaxRetries sets the attempt budget of new queue entries. Default: 3.
func WithMaxRetries(n int) Option {
	return func(c *config) {
		c.maxRetries = n
	}
}

// WithEventRecorder records every observed event before it is routed.
func WithEventRecorder(r EventRecorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}

// WithCatchUpRetry sets the policy catch-up runs under. Default: 5 attempts.
func WithCatchUpRetry(r retry.Retry) Option {
	return func(c *config) {
		c.catchUpRetry = r
	}
}

// WithFlushTimeout bounds how long Close waits for queue persistence.
// Default: 10s.
func WithFlushTimeout(d time.Duration) Option {
	return func(c *config) {
		c.flushTimeout = d
	}
}

// WithShutdownHook runs fn after the queue is flushed, in registration order.
// Use it to release clients the pipeline depends on.
func WithShutdownHook(fn func()) Option {
	return func(c *config) {
		c.afterShutdown = append(c.afterShutdown, fn)
	}
}

// New returns a relayer over one shared queue and processor and one watcher
// per chain.
func New(queue txqueue.Queue, processor queueproc.Service, watchers []chainwatch.Service, opts ...Option) *service {
	cfg := config{
		maxRetries:   3,
		flushTimeout: 10 * time.Second,
		recorder:     nopRecorder{},
		catchUpRetry: retry.New(retry.WithAttempts(5), retry.WithDelay(2*time.Second), retry.WithMaxDelay(30*time.Second)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		queue:     queue,
		processor: processor,
		watchers:  watchers,
		cfg:       cfg,
	}
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if err := s.queue.Restore(ctx); err != nil {
		return fmt.Errorf("restore queue: %w", err)
	}

	if err := s.catchUp(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)

	var live []chainwatch.Service
	stopWatchers := func() {
		for _, w := range live {
			w.Close()
		}
	}

	for _, w := range s.watchers {
		if err := w.Start(ctx, s.handle); err != nil {
			stopWatchers()
			cancel()
			return fmt.Errorf("start watcher of chain %d: %w", w.ChainID(), err)
		}
		live = append(live, w)
	}

	if err := s.processor.Start(ctx); err != nil {
		stopWatchers()
		cancel()
		return fmt.Errorf("start processor: %w", err)
	}

	s.closeFunc = func() {
		s.processor.Close()
		stopWatchers()
		cancel()
		s.flush()

		for _, fn := range s.cfg.afterShutdown {
			fn()
		}
	}
	s.isStarted = true

	logger.Info(ctx, "relayer started", "chains", len(s.watchers), "queue.size", s.queue.Size())
	return nil
}

// catchUp replays missed events of every chain concurrently. Chains do not
// wait on each other, but Start returns only once all of them are done.
func (s *service) catchUp(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, w := range s.watchers {
		g.Go(func() error {
			wctx := logger.Derive(gctx, "chain.id", w.ChainID())

			err := s.cfg.catchUpRetry.Execute(wctx, func() error {
				err := w.CatchUp(wctx, s.handle)
				if err != nil {
					logger.Warn(wctx, "catch-up failed", "error", err)
				}
				return err
			})
			if err != nil {
				return fmt.Errorf("catch up chain %d: %w", w.ChainID(), err)
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *service) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.flushTimeout)
	defer cancel()

	if err := s.queue.Close(ctx); err != nil {
		logger.Error(ctx, "queue persistence not fully flushed", "error", err)
	}
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
		logger.Info(context.Background(), "relayer stopped")
	}

	s.closeFunc = nil
	s.isStarted = false
}

// handle records event and enqueues the settlement of lock events. Returning
// an error makes the watcher deliver the event again.
func (s *service) handle(ctx context.Context, event bridge.ChainEvent) error {
	ctx = logger.Derive(ctx,
		"chain.id", event.SourceChainID,
		"event.kind", event.Kind,
		"block.number", event.BlockNumber,
		"event.tx_hash", event.TransactionHash.Hex(),
	)

	if err := s.cfg.recorder.RecordEvent(ctx, event); err != nil {
		logger.Warn(ctx, "failed to record event", "error", err)
	}

	if event.Kind != bridge.EventTokensLocked {
		logger.Info(ctx, "transfer confirmation observed",
			"event.user", event.User.Hex(),
			"event.amount", event.Amount,
		)
		return nil
	}

	tx, err := bridge.FromLockedEvent(event)
	if err != nil {
		logger.Warn(ctx, "rejected malformed lock event", "error", err)
		return nil
	}

	entry, added, err := s.queue.Add(ctx, tx, s.cfg.maxRetries)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", event, err)
	}

	if !added {
		logger.Debug(ctx, "lock event already queued", "tx.id", entry.ID, "tx.status", entry.Status)
		return nil
	}

	logger.Info(ctx, "settlement queued",
		"tx.id", entry.ID,
		"tx.target_chain_id", tx.TargetChainID,
	)
	return nil
}
