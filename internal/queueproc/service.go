// Package queueproc drives the retry queue: on every processing tick it
// claims one eligible entry, signs it with the source chain signer, submits
// it through the target chain submitter and records the outcome. A second
// ticker sweeps completed entries.
//
// Attempts run detached from the service context so that Close never cuts a
// submission short; each attempt is bounded by its own timeout instead.
package queueproc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/bridgerelay/internal/pkg/logger"
	"github.com/gabapcia/bridgerelay/internal/pkg/telemetry"
	"github.com/gabapcia/bridgerelay/internal/signer"
	"github.com/gabapcia/bridgerelay/internal/submitter"
	"github.com/gabapcia/bridgerelay/internal/txqueue"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
)

const (
	outcomeCompleted = "completed"
	outcomeRetry     = "retry"
	outcomeExhausted = "exhausted"
	outcomeSettled   = "already_settled"
)

// Pruner removes completed entries from durable storage.
type Pruner interface {
	CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

type Service interface {
	// Start launches the processing and cleanup tickers. Calling Start on a
	// running service does nothing.
	Start(ctx context.Context) error

	// ProcessNext claims one eligible entry and runs a full attempt on it. It
	// reports whether an entry was claimed.
	ProcessNext(ctx context.Context) bool

	// Close stops both tickers and waits for in-flight attempts. It is safe
	// to call on a service that was never started.
	Close()
}

type service struct {
	queue      txqueue.Queue
	signers    map[uint64]signer.Signer
	submitters map[uint64]submitter.Submitter

	cfg config

	workers     *semaphore.Weighted
	inflight    sync.WaitGroup
	submissions metric.Int64Counter
	tracer      trace.Tracer

	mu        sync.Mutex
	isStarted bool
	closeFunc func()
}

var _ Service = (*service)(nil)

// New returns a processor for queue. signers are keyed by source chain id and
// submitters by target chain id.
func New(queue txqueue.Queue, signers map[uint64]signer.Signer, submitters map[uint64]submitter.Submitter, opts ...Option) (*service, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	submissions, err := telemetry.Meter("queueproc").Int64Counter(
		"relayer.submissions",
		metric.WithDescription("Settlement attempts by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("create submissions counter: %w", err)
	}

	return &service{
		queue:       queue,
		signers:     signers,
		submitters:  submitters,
		cfg:         cfg,
		workers:     semaphore.NewWeighted(int64(cfg.workers)),
		submissions: submissions,
		tracer:      telemetry.Tracer("queueproc"),
	}, nil
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		logger.Debug(ctx, "queue processor already running")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)

	var loops sync.WaitGroup
	loops.Add(2)
	go s.every(ctx, &loops, s.cfg.processingInterval, s.tick)
	go s.every(ctx, &loops, s.cfg.cleanupInterval, s.cleanup)

	s.closeFunc = func() {
		cancel()
		loops.Wait()
		s.inflight.Wait()
	}
	s.isStarted = true

	logger.Info(ctx, "queue processor started",
		"processor.interval", s.cfg.processingInterval.String(),
		"processor.workers", s.cfg.workers,
	)
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
		logger.Info(context.Background(), "queue processor stopped")
	}

	s.closeFunc = nil
	s.isStarted = false
}

func (s *service) every(ctx context.Context, wg *sync.WaitGroup, interval time.Duration, fn func(context.Context)) {
	defer wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

// tick starts one attempt when a worker is free. Without a free worker the
// tick is skipped, so slow submissions never pile up.
func (s *service) tick(ctx context.Context) {
	if !s.workers.TryAcquire(1) {
		return
	}

	entry, ok := s.queue.Claim(ctx)
	if !ok {
		s.workers.Release(1)
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer s.workers.Release(1)

		s.attempt(context.WithoutCancel(ctx), entry)
	}()
}

func (s *service) ProcessNext(ctx context.Context) bool {
	entry, ok := s.queue.Claim(ctx)
	if !ok {
		return false
	}

	s.attempt(ctx, entry)
	return true
}

func (s *service) cleanup(ctx context.Context) {
	s.queue.Cleanup(ctx, s.cfg.retention)

	if s.cfg.pruner == nil {
		return
	}

	removed, err := s.cfg.pruner.CleanupOlderThan(ctx, s.cfg.retention)
	if err != nil {
		logger.Warn(ctx, "failed to clean up persisted entries", "error", err)
		return
	}

	if removed > 0 {
		logger.Info(ctx, "removed persisted completed entries", "queue.removed", removed)
	}
}

// attempt runs one sign and submit cycle for a claimed entry and resolves its
// claim with the outcome.
func (s *service) attempt(ctx context.Context, entry txqueue.Entry) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.submissionTimeout)
	defer cancel()

	attemptID := uuid.Must(uuid.NewV7()).String()

	ctx, span := s.tracer.Start(ctx, "queueproc.attempt", trace.WithAttributes(
		attribute.String("tx.id", entry.ID),
		attribute.String("attempt.id", attemptID),
		attribute.Int("attempt.number", entry.RetryCount+1),
	))
	defer span.End()

	ctx = logger.Derive(ctx,
		"tx.id", entry.ID,
		"attempt.id", attemptID,
		"attempt.number", entry.RetryCount+1,
	)

	logger.Info(ctx, "processing queue entry")

	outcome, err := s.settle(ctx, entry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		outcome = s.fail(ctx, entry.ID, err)
	}

	span.SetAttributes(attribute.String("attempt.outcome", outcome))
	s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// settle returns the outcome of a completed entry or the error that failed
// the attempt.
func (s *service) settle(ctx context.Context, entry txqueue.Entry) (string, error) {
	tx := entry.Tx

	// A previous attempt may have broadcast a settlement whose receipt never
	// arrived, so every retry checks the target chain first.
	if entry.Recovered || entry.RetryCount > 0 {
		settled, err := s.reconcile(ctx, entry)
		if err != nil {
			return "", err
		}
		if settled {
			return outcomeSettled, nil
		}
	}

	sign, ok := s.signers[tx.SourceChainID]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrNoSigner, tx.SourceChainID)
	}

	signature, err := sign.SignTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	submit, ok := s.submitters[tx.TargetChainID]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrNoSubmitter, tx.TargetChainID)
	}

	result := submit.SubmitTransaction(ctx, tx, [][]byte{signature})
	if !result.Success {
		reason := result.Reason
		if reason == "" {
			reason = "transaction submission failed"
		}
		return "", errors.New(reason)
	}

	logger.Info(ctx, "queue entry completed", "settlement.hash", result.SettlementHash.Hex())
	if _, err := s.queue.MarkCompleted(ctx, entry.ID, result.SettlementHash); err != nil {
		logger.Error(ctx, "failed to mark queue entry completed", "error", err)
	}

	return outcomeCompleted, nil
}

// reconcile checks whether an entry that was attempted before already landed
// on the target chain, completing it without a second submission if so.
func (s *service) reconcile(ctx context.Context, entry txqueue.Entry) (bool, error) {
	submit, ok := s.submitters[entry.Tx.TargetChainID]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrNoSubmitter, entry.Tx.TargetChainID)
	}

	settled, err := submit.IsSettled(ctx, entry.Tx)
	if err != nil {
		return false, fmt.Errorf("check settlement: %w", err)
	}

	if !settled {
		logger.Info(ctx, "entry not settled on target chain, resubmitting", "tx.recovered", entry.Recovered)
		return false, nil
	}

	// The hash of the settlement that landed is not known here.
	if _, err := s.queue.MarkCompleted(ctx, entry.ID, entry.SettlementHash); err != nil {
		logger.Error(ctx, "failed to mark queue entry completed", "error", err)
	}

	logger.Info(ctx, "entry already settled on target chain", "tx.recovered", entry.Recovered)
	return true, nil
}

func (s *service) fail(ctx context.Context, id string, cause error) string {
	entry, err := s.queue.MarkFailed(ctx, id, cause.Error(), s.cfg.retryDelay)
	if err != nil {
		logger.Error(ctx, "failed to mark queue entry failed", "cause", cause, "error", err)
		return outcomeRetry
	}

	if entry.IsExhausted() {
		logger.Error(ctx, "queue entry exhausted its retries",
			"tx.retry_count", entry.RetryCount,
			"error", cause,
		)
		return outcomeExhausted
	}

	logger.Warn(ctx, "queue entry attempt failed",
		"tx.retry_count", entry.RetryCount,
		"tx.next_retry_at", entry.NextRetryAt,
		"error", cause,
	)
	return outcomeRetry
}
