package secretstore

import (
	"testing"

	"github.com/gabapcia/bridgerelay/internal/infra/secretstore/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("defaults to the local backend", func(t *testing.T) {
		store, err := Open(t.Context(), Config{Seed: map[string]string{"relayer": "0x01"}})
		require.NoError(t, err)

		key, err := store.GetKey(t.Context(), "relayer")
		require.NoError(t, err)
		assert.Equal(t, "0x01", key)
	})

	t.Run("builds the vault backend", func(t *testing.T) {
		store, err := Open(t.Context(), Config{
			Backend: BackendVault,
			Vault:   vault.Config{Address: "http://127.0.0.1:8200", Token: "s.root"},
		})
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("propagates backend errors", func(t *testing.T) {
		_, err := Open(t.Context(), Config{Backend: BackendVault, Vault: vault.Config{Address: "http://127.0.0.1:8200"}})
		assert.ErrorIs(t, err, vault.ErrMissingToken)
	})

	t.Run("rejects unknown backends", func(t *testing.T) {
		_, err := Open(t.Context(), Config{Backend: "gcp"})
		assert.ErrorIs(t, err, ErrUnknownBackend)
	})
}
