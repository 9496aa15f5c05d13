// Package ethereum adapts go-ethereum's ethclient to the chain RPC interfaces
// of the watcher and the submitter. Every call is bounded by a per-call
// timeout, and live logs are delivered by polling eth_getLogs, which works
// against HTTP-only nodes.
package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/bridgerelay/internal/chainwatch"
	"github.com/gabapcia/bridgerelay/internal/pkg/logger"
	httptransport "github.com/gabapcia/bridgerelay/internal/pkg/transport/http"
	"github.com/gabapcia/bridgerelay/internal/pkg/x/chflow"
	"github.com/gabapcia/bridgerelay/internal/submitter"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

const logBatchChannelBufferSize = 4

// backend is the subset of *ethclient.Client the adapter calls.
type backend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	Close()
}

type Client struct {
	conn         backend
	callTimeout  time.Duration
	pollInterval time.Duration
	maxRange     uint64
}

var (
	_ chainwatch.Blockchain = (*Client)(nil)
	_ submitter.Backend     = (*Client)(nil)
)

type config struct {
	callTimeout  time.Duration
	pollInterval time.Duration
	httpTimeout  time.Duration
	maxRange     uint64
}

type Option func(*config)

// WithCallTimeout bounds each RPC call. Default: 15s.
func WithCallTimeout(d time.Duration) Option {
	return func(c *config) {
		c.callTimeout = d
	}
}

// WithPollInterval sets how often live subscriptions poll for new blocks. Default: 4s.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithMaxRange caps the blocks a single live poll asks eth_getLogs for. A
// poll that falls further behind the head catches up in several batches
// without waiting for the poll interval. Default: 2000.
func WithMaxRange(blocks uint64) Option {
	return func(c *config) {
		if blocks > 0 {
			c.maxRange = blocks
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		callTimeout:  15 * time.Second,
		pollInterval: 4 * time.Second,
		httpTimeout:  30 * time.Second,
		maxRange:     2000,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Dial connects to the node at url. HTTP endpoints go through the shared
// retrying transport.
func Dial(ctx context.Context, url string, opts ...Option) (*Client, error) {
	cfg := newConfig(opts)

	httpClient := httptransport.NewStandardClient(
		httptransport.WithTimeout(cfg.httpTimeout),
		httptransport.WithLogging("ethereum"),
	)

	rpcClient, err := rpc.DialOptions(ctx, url, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	return newClient(ethclient.NewClient(rpcClient), cfg), nil
}

func newClient(conn backend, cfg config) *Client {
	return &Client{
		conn:         conn,
		callTimeout:  cfg.callTimeout,
		pollInterval: cfg.pollInterval,
		maxRange:     cfg.maxRange,
	}
}

func (c *Client) Close() {
	c.conn.Close()
}

func (c *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.callTimeout)
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	return c.conn.BlockNumber(ctx)
}

func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	return c.conn.FilterLogs(ctx, q)
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	return c.conn.ChainID(ctx)
}

func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	return c.conn.PendingNonceAt(ctx, account)
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	return c.conn.SuggestGasPrice(ctx)
}

func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	return c.conn.EstimateGas(ctx, msg)
}

func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	return c.conn.SendTransaction(ctx, tx)
}

func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	return c.conn.TransactionReceipt(ctx, txHash)
}

func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()
	return c.conn.CallContract(ctx, msg, blockNumber)
}

type pollResult struct {
	batch chainwatch.LogBatch
	next  uint64

	// delivered is false when the head had not reached the polled block.
	delivered bool
	// behind is true when the range was capped below the head.
	behind bool
}

// poll queries logs in [from, min(head, from+maxRange-1)] and reports the
// next block to poll from.
func (c *Client) poll(ctx context.Context, q ethereum.FilterQuery, from uint64) pollResult {
	head, err := c.BlockNumber(ctx)
	if err != nil {
		return pollResult{batch: chainwatch.LogBatch{Err: fmt.Errorf("query head: %w", err)}, next: from, delivered: true}
	}

	if head < from {
		return pollResult{next: from}
	}

	to := head
	if c.maxRange > 0 && head-from >= c.maxRange {
		to = from + c.maxRange - 1
	}

	q.FromBlock = new(big.Int).SetUint64(from)
	q.ToBlock = new(big.Int).SetUint64(to)

	logs, err := c.FilterLogs(ctx, q)
	if err != nil {
		return pollResult{batch: chainwatch.LogBatch{Err: fmt.Errorf("filter logs [%d, %d]: %w", from, to, err)}, next: from, delivered: true}
	}

	return pollResult{
		batch:     chainwatch.LogBatch{Logs: logs, Through: to},
		next:      to + 1,
		delivered: true,
		behind:    to < head,
	}
}

// Subscribe polls for logs matching q from block from onward. Each batch
// covers at most maxRange blocks up to the head seen by that poll. Failed
// polls are delivered as error batches and retried from the same block.
func (c *Client) Subscribe(ctx context.Context, q ethereum.FilterQuery, from uint64) (<-chan chainwatch.LogBatch, error) {
	batches := make(chan chainwatch.LogBatch, logBatchChannelBufferSize)

	go func() {
		defer close(batches)

		next := from
		for {
			res := c.poll(ctx, q, next)
			if ctx.Err() != nil {
				return
			}

			if res.delivered {
				if res.batch.Err != nil {
					logger.Debug(ctx, "log poll failed", "block.from", next, "error", res.batch.Err)
				}
				if !chflow.Send(ctx, batches, res.batch) {
					return
				}
				next = res.next
			}

			if res.behind {
				continue
			}

			if !chflow.Sleep(ctx, c.pollInterval) {
				return
			}
		}
	}()

	return batches, nil
}
