// Package bridge defines the relay data model and the pure mappings between
// bridge contract events, canonical bridge transactions, and the bytes that
// signers and the target contract must agree on.
//
// A Transaction is derived once from a TokensLocked event and never mutated.
// Re-deriving it from the same event yields identical fields, which keeps the
// message hash stable across restarts and makes the queue id a reliable
// deduplication key.
package bridge

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrWrongEventKind is returned when an event other than TokensLocked
	// reaches FromLockedEvent.
	ErrWrongEventKind = errors.New("event must be TokensLocked")

	// ErrMalformedEvent is returned when an event is missing a field a
	// settlement needs.
	ErrMalformedEvent = errors.New("malformed bridge event")

	// ErrUnknownEvent is returned by ParseLog for logs that are not bridge events.
	ErrUnknownEvent = errors.New("unknown bridge event")
)

// EventKind discriminates the ChainEvent variants.
type EventKind string

const (
	// EventTokensLocked records a deposit on the source chain destined for another chain.
	EventTokensLocked EventKind = "TokensLocked"

	// EventTokensMinted confirms a wrapped mint on the destination chain.
	EventTokensMinted EventKind = "TokensMinted"

	// EventTokensUnlocked confirms a release of locked funds on the origin chain.
	EventTokensUnlocked EventKind = "TokensUnlocked"
)

// EventKinds lists every kind the watcher subscribes to, in ABI order.
var EventKinds = []EventKind{EventTokensLocked, EventTokensMinted, EventTokensUnlocked}

// ChainEvent is a bridge contract log observed on one chain.
//
// SourceChainID is always the chain the log was observed on. TargetChainID is
// the destination encoded in the log for TokensLocked; for the confirmation
// kinds it equals SourceChainID.
type ChainEvent struct {
	Kind            EventKind
	BlockNumber     uint64
	TransactionHash common.Hash
	LogIndex        uint
	SourceChainID   uint64
	TargetChainID   uint64

	Token  common.Address
	User   common.Address
	Amount *big.Int
	Nonce  *big.Int
}

// String identifies the event for logs.
func (e ChainEvent) String() string {
	return fmt.Sprintf("%s@%d:%s#%d", e.Kind, e.BlockNumber, e.TransactionHash.Hex(), e.LogIndex)
}

// Transaction is the canonical settlement instruction derived from a
// TokensLocked event.
type Transaction struct {
	Token  common.Address
	User   common.Address
	Amount *big.Int

	// TransactionID is the source lock transaction hash and the bridge's
	// replay-protection key on the target chain.
	TransactionID common.Hash

	SourceChainID uint64
	TargetChainID uint64
	Nonce         *big.Int
}

// Clone returns a deep copy, so big.Int fields are never shared between owners.
func (t Transaction) Clone() Transaction {
	t.Amount = cloneInt(t.Amount)
	t.Nonce = cloneInt(t.Nonce)
	return t
}

// Equal reports whether two transactions carry identical field values.
func (t Transaction) Equal(o Transaction) bool {
	return t.Token == o.Token &&
		t.User == o.User &&
		t.TransactionID == o.TransactionID &&
		t.SourceChainID == o.SourceChainID &&
		t.TargetChainID == o.TargetChainID &&
		intEqual(t.Amount, o.Amount) &&
		intEqual(t.Nonce, o.Nonce)
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

func intEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// SettlementResult is what a submitter reports for one settlement attempt.
// Exactly one of SettlementHash (on success) or Reason (on failure) is set.
type SettlementResult struct {
	Success        bool
	SettlementHash common.Hash
	Reason         string
}

// Succeeded builds a successful result.
func Succeeded(hash common.Hash) SettlementResult {
	return SettlementResult{Success: true, SettlementHash: hash}
}

// Failed builds a failed result with a human-readable reason.
func Failed(reason string) SettlementResult {
	return SettlementResult{Reason: reason}
}
