// Package submitter sends signed settlement calls to a target chain bridge
// contract and waits for their receipts.
package submitter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/gabapcia/bridgerelay/internal/bridge"
	"github.com/gabapcia/bridgerelay/internal/pkg/logger"
	"github.com/gabapcia/bridgerelay/internal/pkg/x/chflow"
	"github.com/gabapcia/bridgerelay/internal/signer"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend is the chain RPC surface a submitter needs.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type Submitter interface {
	// SubmitTransaction sends the settlement call for tx and blocks until
	// its receipt is available. Reverts and transport faults are both
	// reported as a failed result.
	SubmitTransaction(ctx context.Context, tx bridge.Transaction, signatures [][]byte) bridge.SettlementResult

	// EstimateGas returns the gas the settlement call would use.
	EstimateGas(ctx context.Context, tx bridge.Transaction, signatures [][]byte) (uint64, error)

	// IsSettled reports whether the target bridge already processed tx.
	IsSettled(ctx context.Context, tx bridge.Transaction) (bool, error)
}

type submitter struct {
	backend Backend
	signer  signer.Signer
	bridge  common.Address

	pollInterval time.Duration
	gasMargin    uint64

	mu        sync.Mutex
	chainID   *big.Int
	nextNonce *uint64
}

var _ Submitter = (*submitter)(nil)

type config struct {
	pollInterval time.Duration
	gasMargin    uint64
}

type Option func(*config)

// WithReceiptPollInterval sets how often the receipt is polled. Default: 1s.
func WithReceiptPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithGasMargin adds percent on top of the gas estimate. Default: 20.
func WithGasMargin(percent uint64) Option {
	return func(c *config) {
		c.gasMargin = percent
	}
}

func New(backend Backend, s signer.Signer, bridgeAddress common.Address, opts ...Option) Submitter {
	cfg := config{
		pollInterval: time.Second,
		gasMargin:    20,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &submitter{
		backend:      backend,
		signer:       s,
		bridge:       bridgeAddress,
		pollInterval: cfg.pollInterval,
		gasMargin:    cfg.gasMargin,
	}
}

func (s *submitter) callMsg(ctx context.Context, tx bridge.Transaction, signatures [][]byte) (ethereum.CallMsg, error) {
	payload, err := bridge.BuildSettlementPayload(tx, signatures)
	if err != nil {
		return ethereum.CallMsg{}, err
	}

	from, err := s.signer.Address(ctx)
	if err != nil {
		return ethereum.CallMsg{}, fmt.Errorf("resolve relayer address: %w", err)
	}

	return ethereum.CallMsg{From: from, To: &s.bridge, Data: payload}, nil
}

func (s *submitter) EstimateGas(ctx context.Context, tx bridge.Transaction, signatures [][]byte) (uint64, error) {
	msg, err := s.callMsg(ctx, tx, signatures)
	if err != nil {
		return 0, err
	}
	return s.backend.EstimateGas(ctx, msg)
}

func (s *submitter) IsSettled(ctx context.Context, tx bridge.Transaction) (bool, error) {
	data, err := bridge.PackProcessedQuery(tx.TransactionID)
	if err != nil {
		return false, err
	}

	out, err := s.backend.CallContract(ctx, ethereum.CallMsg{To: &s.bridge, Data: data}, nil)
	if err != nil {
		return false, fmt.Errorf("query processed transactions: %w", err)
	}

	return bridge.UnpackProcessedResult(out)
}

func (s *submitter) SubmitTransaction(ctx context.Context, tx bridge.Transaction, signatures [][]byte) bridge.SettlementResult {
	ctx = logger.Derive(ctx,
		"tx.transaction_id", tx.TransactionID.Hex(),
		"chain.id", tx.TargetChainID,
	)

	hash, err := s.send(ctx, tx, signatures)
	if err != nil {
		logger.Warn(ctx, "settlement not sent", "error", err)
		return bridge.Failed(err.Error())
	}

	logger.Info(ctx, "settlement sent", "tx.settlement_hash", hash.Hex())

	receipt, err := s.waitReceipt(ctx, hash)
	if err != nil {
		return bridge.Failed(fmt.Sprintf("wait for receipt of %s: %v", hash.Hex(), err))
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		logger.Warn(ctx, "settlement reverted", "tx.settlement_hash", hash.Hex(), "block.number", receipt.BlockNumber)
		return bridge.Failed(fmt.Sprintf("settlement transaction %s reverted", hash.Hex()))
	}

	logger.Info(ctx, "settlement confirmed", "tx.settlement_hash", hash.Hex(), "block.number", receipt.BlockNumber)
	return bridge.Succeeded(receipt.TxHash)
}

// send builds, signs and broadcasts the settlement call. Nonce assignment and
// broadcast are serialized so concurrent submissions never share a nonce.
func (s *submitter) send(ctx context.Context, tx bridge.Transaction, signatures [][]byte) (common.Hash, error) {
	msg, err := s.callMsg(ctx, tx, signatures)
	if err != nil {
		return common.Hash{}, err
	}

	gas, err := s.backend.EstimateGas(ctx, msg)
	if err != nil {
		return common.Hash{}, fmt.Errorf("estimate gas: %w", err)
	}
	gas += gas * s.gasMargin / 100

	s.mu.Lock()
	defer s.mu.Unlock()

	chainID, err := s.loadChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	nonce, err := s.backend.PendingNonceAt(ctx, msg.From)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pending nonce: %w", err)
	}
	if s.nextNonce != nil && *s.nextNonce > nonce {
		nonce = *s.nextNonce
	}

	gasPrice, err := s.backend.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("suggest gas price: %w", err)
	}

	unsigned := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &s.bridge,
		Value:    new(big.Int),
		Data:     msg.Data,
	})

	signed, err := s.signer.SignEthTx(ctx, unsigned, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign settlement: %w", err)
	}

	if err := s.backend.SendTransaction(ctx, signed); err != nil {
		s.nextNonce = nil
		return common.Hash{}, fmt.Errorf("send settlement: %w", err)
	}

	next := nonce + 1
	s.nextNonce = &next

	return signed.Hash(), nil
}

// loadChainID caches the target chain id. Callers hold s.mu.
func (s *submitter) loadChainID(ctx context.Context) (*big.Int, error) {
	if s.chainID != nil {
		return s.chainID, nil
	}

	id, err := s.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}

	s.chainID = id
	return id, nil
}

func (s *submitter) waitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	for {
		receipt, err := s.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			logger.Debug(ctx, "receipt lookup failed", "tx.settlement_hash", hash.Hex(), "error", err)
		}

		if !chflow.Sleep(ctx, s.pollInterval) {
			return nil, ctx.Err()
		}
	}
}
