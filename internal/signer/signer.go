// Package signer produces relayer signatures over bridge transactions and
// signs the relayer's own settlement transactions.
//
// A Signer holds its key directly or resolves it through a keystore.Store on
// first use. A resolved key is cached for the lifetime of the Signer; failed
// lookups are not cached, so a later call retries the store.
package signer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/gabapcia/bridgerelay/internal/bridge"
	"github.com/gabapcia/bridgerelay/internal/keystore"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrInvalidSignature is returned by Recover for signatures that are not
// 65 bytes with a 27/28 recovery id.
var ErrInvalidSignature = errors.New("invalid signature")

type Signer interface {
	// SignTransaction signs bridge.BuildMessageHash(tx) as an EIP-191
	// personal message. The recovery id is 27 or 28.
	SignTransaction(ctx context.Context, tx bridge.Transaction) ([]byte, error)

	// SignTransactions signs each transaction in order.
	SignTransactions(ctx context.Context, txs []bridge.Transaction) ([][]byte, error)

	// Address returns the address of the signing key.
	Address(ctx context.Context) (common.Address, error)

	// SignEthTx signs a transaction the relayer sends on chainID.
	SignEthTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// keySource yields the private key used by a signer.
type keySource func(ctx context.Context) (*ecdsa.PrivateKey, error)

type signer struct {
	source keySource
}

var _ Signer = (*signer)(nil)

// New returns a Signer over a key held in memory.
func New(key *ecdsa.PrivateKey) Signer {
	return &signer{
		source: func(context.Context) (*ecdsa.PrivateKey, error) { return key, nil },
	}
}

// NewFromHex parses hex key material and returns a Signer over it.
func NewFromHex(material string) (Signer, error) {
	key, err := keystore.ParsePrivateKey(material)
	if err != nil {
		return nil, err
	}
	return New(key), nil
}

// NewFromStore returns a Signer whose key is fetched from store under keyID
// the first time it is needed.
func NewFromStore(store keystore.Store, keyID string) Signer {
	var (
		mu     sync.Mutex
		cached *ecdsa.PrivateKey
	)

	return &signer{
		source: func(ctx context.Context) (*ecdsa.PrivateKey, error) {
			mu.Lock()
			defer mu.Unlock()

			if cached != nil {
				return cached, nil
			}

			material, err := store.GetKey(ctx, keyID)
			if err != nil {
				return nil, fmt.Errorf("fetch signing key %s: %w", keyID, err)
			}

			key, err := keystore.ParsePrivateKey(material)
			if err != nil {
				return nil, fmt.Errorf("signing key %s: %w", keyID, err)
			}

			cached = key
			return cached, nil
		},
	}
}

func (s *signer) SignTransaction(ctx context.Context, tx bridge.Transaction) ([]byte, error) {
	key, err := s.source(ctx)
	if err != nil {
		return nil, err
	}

	hash := bridge.BuildMessageHash(tx)

	sig, err := crypto.Sign(accounts.TextHash(hash.Bytes()), key)
	if err != nil {
		return nil, fmt.Errorf("sign message hash %s: %w", hash.Hex(), err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	return sig, nil
}

func (s *signer) SignTransactions(ctx context.Context, txs []bridge.Transaction) ([][]byte, error) {
	sigs := make([][]byte, 0, len(txs))
	for _, tx := range txs {
		sig, err := s.SignTransaction(ctx, tx)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

func (s *signer) Address(ctx context.Context) (common.Address, error) {
	key, err := s.source(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

func (s *signer) SignEthTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	key, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
}

// Recover returns the address that produced sig over tx's message hash.
func Recover(tx bridge.Transaction, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength || sig[crypto.RecoveryIDOffset] < 27 {
		return common.Address{}, ErrInvalidSignature
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	normalized[crypto.RecoveryIDOffset] -= 27

	hash := bridge.BuildMessageHash(tx)
	pub, err := crypto.SigToPub(accounts.TextHash(hash.Bytes()), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}
