// Package chainwatch delivers bridge contract events of one chain to a
// handler without gaps and without duplicates across the catch-up and live
// phases.
//
// CatchUp replays history from the watermark to the head observed at query
// time and then moves the watermark to that head. Start opens the live
// subscription at watermark+1, so the boundary block is only ever delivered
// by catch-up.
package chainwatch

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/bridgerelay/internal/bridge"
	"github.com/gabapcia/bridgerelay/internal/pkg/logger"
	"github.com/gabapcia/bridgerelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/bridgerelay/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrCatchUpRequired is returned by Start before a successful CatchUp.
	ErrCatchUpRequired = errors.New("catch-up must complete before the live subscription")

	errSubscriptionClosed = errors.New("subscription closed")
)

// Handler receives each decoded event. A returned error stops the current
// delivery before the watermark moves past the event.
type Handler func(ctx context.Context, event bridge.ChainEvent) error

type Service interface {
	ChainID() uint64

	// CatchUp delivers every event from the watermark through the current
	// head, then advances the watermark to that head. On error the
	// watermark is left where it was.
	CatchUp(ctx context.Context, handler Handler) error

	// Start opens the live subscription and returns once it is open. Events
	// are delivered from a background goroutine until Close.
	Start(ctx context.Context, handler Handler) error

	// Watermark returns the last fully delivered block, if any.
	Watermark() (uint64, bool)

	Close()
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()

	chainID           uint64
	chain             Blockchain
	query             ethereum.FilterQuery
	startBlock        uint64
	batchSize         uint64
	checkpointStorage CheckpointStorage
	retry             retry.Retry
	resubscribeDelay  time.Duration

	wmu          sync.Mutex
	watermark    uint64
	hasWatermark bool
	caughtUp     bool
}

var _ Service = (*service)(nil)

func (s *service) ChainID() uint64 {
	return s.chainID
}

func (s *service) Watermark() (uint64, bool) {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	return s.watermark, s.hasWatermark
}

func (s *service) setWatermark(block uint64) {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	s.watermark, s.hasWatermark = block, true
}

// next returns the first block not yet delivered.
func (s *service) next() uint64 {
	if wm, ok := s.Watermark(); ok {
		return wm + 1
	}
	return s.startBlock
}

func (s *service) loadWatermark(ctx context.Context) error {
	if _, ok := s.Watermark(); ok {
		return nil
	}

	block, err := s.checkpointStorage.LoadLatestCheckpoint(ctx, s.chainID)
	if errors.Is(err, ErrNoCheckpointFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load watermark: %w", err)
	}

	s.setWatermark(block)
	return nil
}

func (s *service) rangeQuery(from, to uint64) ethereum.FilterQuery {
	q := s.query
	q.FromBlock = new(big.Int).SetUint64(from)
	q.ToBlock = new(big.Int).SetUint64(to)
	return q
}

func (s *service) CatchUp(ctx context.Context, handler Handler) error {
	ctx = logger.Derive(ctx, "chain.id", s.chainID)

	if err := s.loadWatermark(ctx); err != nil {
		return err
	}

	from := s.next()

	head, err := s.chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("query head: %w", err)
	}

	if from > head {
		logger.Info(ctx, "chain already caught up", "block.from", from, "block.head", head)
		s.markCaughtUp()
		return nil
	}

	var delivered int
	for lo := from; lo <= head; {
		hi := min(lo+s.batchSize-1, head)

		logs, err := s.chain.FilterLogs(ctx, s.rangeQuery(lo, hi))
		if err != nil {
			return fmt.Errorf("filter logs [%d, %d]: %w", lo, hi, err)
		}

		n, err := s.deliver(ctx, logs, handler)
		if err != nil {
			return err
		}
		delivered += n

		lo = hi + 1
	}

	if err := s.checkpointStorage.SaveCheckpoint(ctx, s.chainID, head); err != nil {
		return fmt.Errorf("save watermark: %w", err)
	}
	s.setWatermark(head)
	s.markCaughtUp()

	logger.Info(ctx, "catch-up complete",
		"block.from", from,
		"block.head", head,
		"events.delivered", delivered,
	)
	return nil
}

func (s *service) markCaughtUp() {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	s.caughtUp = true
}

func (s *service) isCaughtUp() bool {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	return s.caughtUp
}

// deliver decodes logs in block then log-index order and hands each bridge
// event to handler. Removed and foreign logs are skipped, as are malformed
// bridge logs, which are never delivered.
func (s *service) deliver(ctx context.Context, logs []types.Log, handler Handler) (int, error) {
	ordered := slices.Clone(logs)
	slices.SortStableFunc(ordered, func(a, b types.Log) int {
		return cmp.Or(cmp.Compare(a.BlockNumber, b.BlockNumber), cmp.Compare(a.Index, b.Index))
	})

	var delivered int
	for _, log := range ordered {
		if log.Removed {
			continue
		}

		event, err := bridge.ParseLog(log, s.chainID)
		if errors.Is(err, bridge.ErrUnknownEvent) {
			logger.Debug(ctx, "skipping unknown log", "tx.hash", log.TxHash.Hex(), "block.number", log.BlockNumber)
			continue
		}
		if err != nil {
			logger.Warn(ctx, "discarding malformed bridge log",
				"tx.hash", log.TxHash.Hex(),
				"block.number", log.BlockNumber,
				"log.index", log.Index,
				"error", err,
			)
			continue
		}

		if err := handler(ctx, event); err != nil {
			return delivered, fmt.Errorf("handle %s: %w", event, err)
		}
		delivered++
	}

	return delivered, nil
}

func (s *service) Start(ctx context.Context, handler Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}
	if !s.isCaughtUp() {
		return ErrCatchUpRequired
	}

	ctx, cancel := context.WithCancel(logger.Derive(ctx, "chain.id", s.chainID))

	from := s.next()
	sub, stop, err := s.open(ctx)
	if err != nil {
		cancel()
		return err
	}
	logger.Info(ctx, "live subscription open", "block.from", from)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.run(ctx, sub, stop, handler)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true

	return nil
}

func (s *service) open(ctx context.Context) (<-chan LogBatch, context.CancelFunc, error) {
	subCtx, stop := context.WithCancel(ctx)

	sub, err := s.chain.Subscribe(subCtx, s.query, s.next())
	if err != nil {
		stop()
		return nil, nil, fmt.Errorf("subscribe: %w", err)
	}

	return sub, stop, nil
}

func (s *service) run(ctx context.Context, sub <-chan LogBatch, stop context.CancelFunc, handler Handler) {
	defer func() {
		if stop != nil {
			stop()
		}
	}()

	for {
		batch, ok := chflow.Receive(ctx, sub)
		if ctx.Err() != nil {
			return
		}

		var err error
		switch {
		case !ok:
			err = errSubscriptionClosed
		case batch.Err != nil:
			err = batch.Err
		default:
			err = s.apply(ctx, batch, handler)
		}

		if err == nil {
			continue
		}

		wm, _ := s.Watermark()
		logger.Warn(ctx, "live subscription interrupted, resubscribing", "chain.watermark", wm, "error", err)

		stop()
		if sub, stop, ok = s.resubscribe(ctx); !ok {
			return
		}
	}
}

// apply delivers one live batch and advances the watermark to its upper
// bound. A failed checkpoint write is logged; the in-memory watermark still
// advances and the next successful write catches the store up.
func (s *service) apply(ctx context.Context, batch LogBatch, handler Handler) error {
	if _, err := s.deliver(ctx, batch.Logs, handler); err != nil {
		return err
	}

	if wm, ok := s.Watermark(); ok && batch.Through <= wm {
		return nil
	}

	if err := s.checkpointStorage.SaveCheckpoint(ctx, s.chainID, batch.Through); err != nil {
		logger.Error(ctx, "failed to save watermark", "block.number", batch.Through, "error", err)
	}
	s.setWatermark(batch.Through)

	return nil
}

// resubscribe reopens the subscription at the current watermark until it
// succeeds or ctx ends.
func (s *service) resubscribe(ctx context.Context) (<-chan LogBatch, context.CancelFunc, bool) {
	for {
		var (
			sub  <-chan LogBatch
			stop context.CancelFunc
		)

		operation := func() error {
			var err error
			sub, stop, err = s.open(ctx)
			return err
		}

		var err error
		if s.retry != nil {
			err = s.retry.Execute(ctx, operation)
		} else {
			err = operation()
		}

		if err == nil {
			logger.Info(ctx, "resubscribed", "block.from", s.next())
			return sub, stop, true
		}
		if ctx.Err() != nil {
			return nil, nil, false
		}

		logger.Error(ctx, "resubscribe failed", "error", err)
		if !chflow.Sleep(ctx, s.resubscribeDelay) {
			return nil, nil, false
		}
	}
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

type config struct {
	startBlock        uint64
	batchSize         uint64
	checkpointStorage CheckpointStorage
	retry             retry.Retry
	resubscribeDelay  time.Duration
}

type Option func(*config)

// New returns a watcher for the bridge contract at bridgeAddress on chainID.
func New(chainID uint64, chain Blockchain, bridgeAddress common.Address, opts ...Option) Service {
	cfg := config{
		batchSize:         2000,
		checkpointStorage: nopCheckpoint{},
		resubscribeDelay:  5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chainID: chainID,
		chain:   chain,
		query: ethereum.FilterQuery{
			Addresses: []common.Address{bridgeAddress},
			Topics:    bridge.EventTopics(),
		},
		startBlock:        cfg.startBlock,
		batchSize:         max(cfg.batchSize, 1),
		checkpointStorage: cfg.checkpointStorage,
		retry:             cfg.retry,
		resubscribeDelay:  cfg.resubscribeDelay,
	}
}

// WithStartBlock sets where the first catch-up begins when no watermark is stored.
func WithStartBlock(block uint64) Option {
	return func(c *config) {
		c.startBlock = block
	}
}

// WithBatchSize sets how many blocks each catch-up log query spans. Default: 2000.
func WithBatchSize(blocks uint64) Option {
	return func(c *config) {
		c.batchSize = blocks
	}
}

func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithRetry wraps each resubscription attempt.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithResubscribeDelay sets the pause between failed resubscription rounds. Default: 5s.
func WithResubscribeDelay(d time.Duration) Option {
	return func(c *config) {
		c.resubscribeDelay = d
	}
}
