// Package keystore defines the secret-store contract used to hold relayer
// signing keys, independent of the backend that stores them, plus key
// rotation on top of any backend.
//
// Backends live under internal/infra/secretstore and are selected at
// configuration time; nothing in the relay path inspects which one is in use.
package keystore

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrKeyNotFound is returned by GetKey when no key is stored under the id.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidKey is returned when stored key material is not a valid
	// secp256k1 private key.
	ErrInvalidKey = errors.New("invalid private key")

	// ErrInvalidKeyID is returned for empty or malformed key ids.
	ErrInvalidKeyID = errors.New("invalid key id")
)

// Store holds hex-encoded private keys by id.
type Store interface {
	// GetKey returns ErrKeyNotFound (possibly wrapped) when id is unknown.
	GetKey(ctx context.Context, id string) (string, error)

	// StoreKey creates or overwrites the key stored under id.
	StoreKey(ctx context.Context, id, key string) error

	// DeleteKey removes id. Deleting a missing key is not an error.
	DeleteKey(ctx context.Context, id string) error

	KeyExists(ctx context.Context, id string) (bool, error)

	ListKeys(ctx context.Context) ([]string, error)
}

// ValidateKeyID rejects ids that cannot be used as a path segment by every backend.
func ValidateKeyID(id string) error {
	if id == "" || strings.ContainsAny(id, "/\\ ") {
		return fmt.Errorf("%w: %q", ErrInvalidKeyID, id)
	}
	return nil
}

// ParsePrivateKey decodes hex key material, with or without a 0x prefix.
func ParsePrivateKey(material string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(material), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}

// EncodePrivateKey returns key as 0x-prefixed hex, the format every backend stores.
func EncodePrivateKey(key *ecdsa.PrivateKey) string {
	return "0x" + fmt.Sprintf("%x", crypto.FromECDSA(key))
}
