// Package secretstore selects a keystore.Store backend by name.
package secretstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/bridgerelay/internal/infra/secretstore/aws"
	"github.com/gabapcia/bridgerelay/internal/infra/secretstore/local"
	"github.com/gabapcia/bridgerelay/internal/infra/secretstore/vault"
	"github.com/gabapcia/bridgerelay/internal/keystore"
)

// Backend names accepted by Open.
const (
	BackendLocal = "local"
	BackendVault = "vault"
	BackendAWS   = "aws"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown secret store backend")

type Config struct {
	Backend string

	// Seed preloads the local backend.
	Seed  map[string]string
	Vault vault.Config
	AWS   aws.Config
}

// Open builds the backend named by cfg.Backend. An empty name selects the
// local in-memory backend.
func Open(ctx context.Context, cfg Config) (keystore.Store, error) {
	switch cfg.Backend {
	case "", BackendLocal:
		return local.New(cfg.Seed), nil
	case BackendVault:
		return vault.New(cfg.Vault)
	case BackendAWS:
		return aws.New(ctx, cfg.AWS)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
