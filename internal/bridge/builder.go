package bridge

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

// FromLockedEvent derives the settlement transaction for a TokensLocked event.
func FromLockedEvent(event ChainEvent) (Transaction, error) {
	if event.Kind != EventTokensLocked {
		return Transaction{}, fmt.Errorf("%w: got %s", ErrWrongEventKind, event.Kind)
	}

	switch {
	case event.Amount == nil || event.Amount.Sign() < 0:
		return Transaction{}, fmt.Errorf("%w: invalid amount", ErrMalformedEvent)
	case event.Nonce == nil:
		return Transaction{}, fmt.Errorf("%w: missing nonce", ErrMalformedEvent)
	case event.TransactionHash == (common.Hash{}):
		return Transaction{}, fmt.Errorf("%w: missing transaction hash", ErrMalformedEvent)
	case event.TargetChainID == 0:
		return Transaction{}, fmt.Errorf("%w: missing target chain", ErrMalformedEvent)
	}

	tx := Transaction{
		Token:         event.Token,
		User:          event.User,
		Amount:        event.Amount,
		TransactionID: event.TransactionHash,
		SourceChainID: event.SourceChainID,
		TargetChainID: event.TargetChainID,
		Nonce:         event.Nonce,
	}

	return tx.Clone(), nil
}

// BuildMessageHash returns
//
//	keccak256(token ‖ user ‖ uint256(amount) ‖ transactionId ‖ uint256(targetChainId))
//
// with addresses packed as 20 bytes and integers as 32-byte big-endian words.
// The field order and widths are what the target contract verifies signatures
// against.
func BuildMessageHash(tx Transaction) common.Hash {
	amount := tx.Amount
	if amount == nil {
		amount = new(big.Int)
	}

	return crypto.Keccak256Hash(
		tx.Token.Bytes(),
		tx.User.Bytes(),
		math.U256Bytes(new(big.Int).Set(amount)),
		tx.TransactionID.Bytes(),
		math.U256Bytes(new(big.Int).SetUint64(tx.TargetChainID)),
	)
}

// BuildSettlementPayload encodes the completeBridgeTransfer call data. The
// signatures are passed through unmodified and in the given order.
func BuildSettlementPayload(tx Transaction, signatures [][]byte) ([]byte, error) {
	if tx.Amount == nil {
		return nil, fmt.Errorf("%w: invalid amount", ErrMalformedEvent)
	}

	return contractABI.Pack(methodCompleteTransfer,
		tx.Token,
		tx.User,
		tx.Amount,
		[32]byte(tx.TransactionID),
		signatures,
	)
}
