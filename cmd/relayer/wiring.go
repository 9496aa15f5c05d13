package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gabapcia/bridgerelay/internal/chainwatch"
	"github.com/gabapcia/bridgerelay/internal/config"
	"github.com/gabapcia/bridgerelay/internal/handlers/cli"
	"github.com/gabapcia/bridgerelay/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/bridgerelay/internal/infra/secretstore"
	"github.com/gabapcia/bridgerelay/internal/infra/storage/postgres"
	"github.com/gabapcia/bridgerelay/internal/infra/storage/redis"
	"github.com/gabapcia/bridgerelay/internal/keystore"
	"github.com/gabapcia/bridgerelay/internal/pkg/logger"
	"github.com/gabapcia/bridgerelay/internal/pkg/resilience/retry"
	"github.com/gabapcia/bridgerelay/internal/queueproc"
	"github.com/gabapcia/bridgerelay/internal/relayer"
	"github.com/gabapcia/bridgerelay/internal/signer"
	"github.com/gabapcia/bridgerelay/internal/submitter"
	"github.com/gabapcia/bridgerelay/internal/txqueue"
)

// wiring builds each dependency on first use and releases everything it
// built on close, newest first.
type wiring struct {
	cfg config.Config

	store    keystore.Store
	database *postgres.Store
	closers  []func()
}

func newWiring(cfg config.Config) *wiring {
	return &wiring{cfg: cfg}
}

func (w *wiring) onClose(fn func()) {
	w.closers = append(w.closers, fn)
}

func (w *wiring) close() {
	for _, fn := range slices.Backward(w.closers) {
		fn()
	}
	w.closers = nil
}

func (w *wiring) keys(ctx context.Context) (keystore.Store, error) {
	if w.store != nil {
		return w.store, nil
	}

	store, err := secretstore.Open(ctx, w.cfg.SecretStoreConfig())
	if err != nil {
		return nil, err
	}

	w.store = store
	return store, nil
}

// postgres returns nil when no database is configured.
func (w *wiring) postgres(ctx context.Context) (*postgres.Store, error) {
	if w.database != nil || w.cfg.DatabaseURL == "" {
		return w.database, nil
	}

	db, err := postgres.Open(ctx, w.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	w.database = db
	w.onClose(db.Close)
	return db, nil
}

func (w *wiring) history(ctx context.Context) (cli.TransactionHistory, error) {
	db, err := w.postgres(ctx)
	if err != nil {
		return nil, err
	}
	if db == nil {
		return nil, cli.ErrHistoryUnavailable
	}
	return db, nil
}

// checkpoints prefers redis and falls back to the database. It returns nil
// when neither is configured.
func (w *wiring) checkpoints(ctx context.Context, db *postgres.Store) (chainwatch.CheckpointStorage, error) {
	if w.cfg.Redis.Addr == "" {
		if db != nil {
			logger.Info(ctx, "no redis configured, keeping chain watermarks in the database")
			return db, nil
		}

		logger.Warn(ctx, "no redis or database configured, chain watermarks will not survive a restart")
		return nil, nil
	}

	client, err := redis.NewClient(ctx, w.cfg.Redis.Addr, w.cfg.Redis.Username, w.cfg.Redis.Password, w.cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	w.onClose(func() {
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "failed to close redis client", "error", err)
		}
	})
	return client, nil
}

func (w *wiring) signerFor(ctx context.Context, chain config.Chain) (signer.Signer, error) {
	key := w.cfg.KeyFor(chain)
	if key.Material != "" {
		return signer.NewFromHex(key.Material)
	}

	store, err := w.keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("open secret store: %w", err)
	}
	return signer.NewFromStore(store, key.ID), nil
}

// dial connects to chain and checks the node serves the configured chain id.
func (w *wiring) dial(ctx context.Context, chain config.Chain) (*ethereum.Client, error) {
	client, err := ethereum.Dial(ctx, chain.RPCURL,
		ethereum.WithCallTimeout(w.cfg.RPCTimeout),
		ethereum.WithPollInterval(w.cfg.PollInterval),
		ethereum.WithMaxRange(w.cfg.CatchUpBatchSize),
	)
	if err != nil {
		return nil, err
	}
	w.onClose(client.Close)

	id, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chain id: %w", err)
	}
	if id.Uint64() != chain.ChainID {
		return nil, fmt.Errorf("node at %s serves chain %d, configured as %d", chain.RPCURL, id.Uint64(), chain.ChainID)
	}

	return client, nil
}

func (w *wiring) relayer(ctx context.Context) (relayer.Service, error) {
	db, err := w.postgres(ctx)
	if err != nil {
		return nil, err
	}

	checkpoints, err := w.checkpoints(ctx, db)
	if err != nil {
		return nil, err
	}

	var (
		signers    = make(map[uint64]signer.Signer, len(w.cfg.Chains))
		submitters = make(map[uint64]submitter.Submitter, len(w.cfg.Chains))
		watchers   = make([]chainwatch.Service, 0, len(w.cfg.Chains))
	)

	for _, chain := range w.cfg.Chains {
		chainCtx := logger.Derive(ctx, "chain.id", chain.ChainID, "chain.name", chain.Name)

		client, err := w.dial(chainCtx, chain)
		if err != nil {
			return nil, fmt.Errorf("chain %q: %w", chain.Name, err)
		}

		sign, err := w.signerFor(chainCtx, chain)
		if err != nil {
			return nil, fmt.Errorf("chain %q: %w", chain.Name, err)
		}

		signers[chain.ChainID] = sign
		submitters[chain.ChainID] = submitter.New(client, sign, chain.Bridge())

		watchOpts := []chainwatch.Option{
			chainwatch.WithStartBlock(chain.StartBlock),
			chainwatch.WithBatchSize(w.cfg.CatchUpBatchSize),
			chainwatch.WithRetry(retry.New(retry.WithAttempts(3), retry.WithDelay(time.Second))),
		}
		if checkpoints != nil {
			watchOpts = append(watchOpts, chainwatch.WithCheckpointStorage(checkpoints))
		}
		watchers = append(watchers, chainwatch.New(chain.ChainID, client, chain.Bridge(), watchOpts...))

		logger.Info(chainCtx, "chain configured", "chain.bridge", chain.Bridge().Hex())
	}

	queueOpts := []txqueue.Option{}
	processorOpts := []queueproc.Option{
		queueproc.WithRetryDelay(w.cfg.RetryDelay),
		queueproc.WithProcessingInterval(w.cfg.ProcessingInterval),
		queueproc.WithCleanupInterval(w.cfg.CleanupInterval),
		queueproc.WithRetention(w.cfg.CompletedRetention),
		queueproc.WithSubmissionTimeout(w.cfg.SubmissionTimeout),
		queueproc.WithWorkers(w.cfg.Workers),
	}
	relayerOpts := []relayer.Option{
		relayer.WithMaxRetries(w.cfg.MaxRetries),
	}
	if db != nil {
		queueOpts = append(queueOpts, txqueue.WithRepository(db))
		processorOpts = append(processorOpts, queueproc.WithPruner(db))
		relayerOpts = append(relayerOpts, relayer.WithEventRecorder(db))
	} else {
		logger.Warn(ctx, "no database configured, the queue will not survive a restart")
	}

	queue, err := txqueue.New(queueOpts...)
	if err != nil {
		return nil, fmt.Errorf("create queue: %w", err)
	}

	processor, err := queueproc.New(queue, signers, submitters, processorOpts...)
	if err != nil {
		return nil, fmt.Errorf("create queue processor: %w", err)
	}

	return relayer.New(queue, processor, watchers, relayerOpts...), nil
}
