package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gabapcia/bridgerelay/internal/infra/secretstore"
	"github.com/gabapcia/bridgerelay/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	devKey    = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	bridgeOne = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	bridgeTwo = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
)

const twoChains = `chains:
  - name: Ethereum Local
    chainId: 1337
    rpcUrl: http://localhost:8545
    bridgeAddress: "` + bridgeOne + `"
    startBlock: 10
  - name: Polygon Local
    chainId: 1338
    rpcUrl: ws://localhost:8546
    bridgeAddress: "` + bridgeTwo + `"
    keyId: polygon-relayer
`

func writeChains(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chains.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("RELAYER_CHAINS_FILE", writeChains(t, twoChains))
		t.Setenv("RELAYER_SIGNING_KEY", devKey)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "bridgerelay", cfg.ServiceName)
		assert.False(t, cfg.TelemetryEnabled)
		assert.Equal(t, 5*time.Second, cfg.RetryDelay)
		assert.Equal(t, 3, cfg.MaxRetries)
		assert.Equal(t, 2*time.Second, cfg.ProcessingInterval)
		assert.Equal(t, time.Hour, cfg.CleanupInterval)
		assert.Equal(t, time.Hour, cfg.CompletedRetention)
		assert.Equal(t, 2*time.Minute, cfg.SubmissionTimeout)
		assert.Equal(t, 1, cfg.Workers)
		assert.Equal(t, 4*time.Second, cfg.PollInterval)
		assert.Equal(t, uint64(2000), cfg.CatchUpBatchSize)
		assert.Equal(t, secretstore.BackendLocal, cfg.SecretStore)
		assert.Empty(t, cfg.Redis.Addr)
		assert.Empty(t, cfg.DatabaseURL)

		require.Len(t, cfg.Chains, 2)
		assert.Equal(t, uint64(1337), cfg.Chains[0].ChainID)
		assert.Equal(t, uint64(10), cfg.Chains[0].StartBlock)
		assert.Equal(t, common.HexToAddress(bridgeOne), cfg.Chains[0].Bridge())
		assert.Equal(t, "polygon-relayer", cfg.Chains[1].KeyID)
	})

	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Setenv("RELAYER_CHAINS_FILE", writeChains(t, twoChains))
		t.Setenv("RELAYER_SIGNING_KEY_ID", "relayer")
		t.Setenv("RELAYER_RETRY_DELAY", "250ms")
		t.Setenv("RELAYER_MAX_RETRIES", "7")
		t.Setenv("RELAYER_WORKERS", "4")
		t.Setenv("RELAYER_SECRET_STORE", "vault")
		t.Setenv("RELAYER_VAULT_ADDRESS", "https://vault.internal:8200")
		t.Setenv("RELAYER_VAULT_TOKEN", "s.token")
		t.Setenv("RELAYER_REDIS_ADDR", "localhost:6379")
		t.Setenv("RELAYER_REDIS_DB", "2")
		t.Setenv("RELAYER_DATABASE_URL", "postgres://relayer@localhost/relayer")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
		assert.Equal(t, 7, cfg.MaxRetries)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, "https://vault.internal:8200", cfg.Vault.Address)
		assert.Equal(t, "secret", cfg.Vault.Mount)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, "postgres://relayer@localhost/relayer", cfg.DatabaseURL)
	})

	t.Run("rejects an unknown secret store", func(t *testing.T) {
		t.Setenv("RELAYER_CHAINS_FILE", writeChains(t, twoChains))
		t.Setenv("RELAYER_SIGNING_KEY", devKey)
		t.Setenv("RELAYER_SECRET_STORE", "keychain")

		_, err := Load()
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "'oneof'")
	})

	t.Run("rejects a malformed duration", func(t *testing.T) {
		t.Setenv("RELAYER_CHAINS_FILE", writeChains(t, twoChains))
		t.Setenv("RELAYER_RETRY_DELAY", "soon")

		_, err := Load()
		assert.ErrorContains(t, err, "read environment")
	})

	t.Run("fails without a chain file", func(t *testing.T) {
		t.Setenv("RELAYER_CHAINS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := Load()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("fails when a chain cannot sign", func(t *testing.T) {
		t.Setenv("RELAYER_CHAINS_FILE", writeChains(t, twoChains))

		_, err := Load()
		require.ErrorIs(t, err, ErrNoSigningKey)
		assert.ErrorContains(t, err, "Ethereum Local")
	})
}

func TestLoadChains(t *testing.T) {
	t.Run("rejects unknown keys", func(t *testing.T) {
		path := writeChains(t, "chains:\n  - name: Local\n    chainID: 1337\n")

		_, err := LoadChains(path)
		assert.ErrorContains(t, err, "parse chain file")
	})

	t.Run("rejects an empty chain list", func(t *testing.T) {
		_, err := LoadChains(writeChains(t, "chains: []\n"))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("reports the offending yaml key", func(t *testing.T) {
		path := writeChains(t, `chains:
  - name: Local
    chainId: 1337
    rpcUrl: http://localhost:8545
    bridgeAddress: "0x1234"
`)

		_, err := LoadChains(path)
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "bridgeAddress")
	})

	t.Run("redacts an invalid chain private key", func(t *testing.T) {
		path := writeChains(t, `chains:
  - name: Local
    chainId: 1337
    rpcUrl: http://localhost:8545
    bridgeAddress: "`+bridgeOne+`"
    privateKey: not-a-real-key
`)

		_, err := LoadChains(path)
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.NotContains(t, err.Error(), "not-a-real-key")
	})
}

func validConfig() Config {
	return Config{
		LogLevel:           "info",
		ServiceName:        "bridgerelay",
		RetryDelay:         time.Second,
		MaxRetries:         3,
		ProcessingInterval: time.Second,
		CleanupInterval:    time.Hour,
		SubmissionTimeout:  time.Minute,
		Workers:            1,
		PollInterval:       time.Second,
		RPCTimeout:         time.Second,
		CatchUpBatchSize:   100,
		SigningKey:         devKey,
		SecretStore:        secretstore.BackendLocal,
		Chains: []Chain{
			{Name: "one", ChainID: 1337, RPCURL: "http://localhost:8545", BridgeAddress: bridgeOne},
			{Name: "two", ChainID: 1338, RPCURL: "http://localhost:8546", BridgeAddress: bridgeTwo},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("accepts a complete config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("rejects duplicate chain ids", func(t *testing.T) {
		cfg := validConfig()
		cfg.Chains[1].ChainID = 1337

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrDuplicateChain)
		assert.ErrorContains(t, err, "1337")
	})

	t.Run("requires at least one chain", func(t *testing.T) {
		cfg := validConfig()
		cfg.Chains = nil

		assert.ErrorIs(t, cfg.Validate(), validator.ErrValidationFailed)
	})

	t.Run("rejects a zero retry budget", func(t *testing.T) {
		cfg := validConfig()
		cfg.MaxRetries = 0

		err := cfg.Validate()
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "MaxRetries")
	})
}

func TestConfig_KeyFor(t *testing.T) {
	chain := Chain{Name: "one", ChainID: 1337}

	t.Run("prefers the chain private key", func(t *testing.T) {
		cfg := validConfig()
		c := chain
		c.PrivateKey = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
		c.KeyID = "ignored"

		assert.Equal(t, Key{Material: c.PrivateKey}, cfg.KeyFor(c))
	})

	t.Run("uses the chain key id over the process key", func(t *testing.T) {
		c := chain
		c.KeyID = "chain-key"

		assert.Equal(t, Key{ID: "chain-key"}, validConfig().KeyFor(c))
	})

	t.Run("falls back to the process key", func(t *testing.T) {
		assert.Equal(t, Key{Material: devKey}, validConfig().KeyFor(chain))
	})

	t.Run("reads the process key from the store when it has an id", func(t *testing.T) {
		cfg := validConfig()
		cfg.SigningKeyID = "relayer"

		assert.Equal(t, Key{ID: "relayer"}, cfg.KeyFor(chain))
	})
}

func TestConfig_SecretStoreConfig(t *testing.T) {
	t.Run("seeds the local store with the process key", func(t *testing.T) {
		cfg := validConfig()
		cfg.SigningKeyID = "relayer"

		ss := cfg.SecretStoreConfig()
		assert.Equal(t, secretstore.BackendLocal, ss.Backend)
		assert.Equal(t, map[string]string{"relayer": devKey}, ss.Seed)
	})

	t.Run("never seeds remote stores", func(t *testing.T) {
		cfg := validConfig()
		cfg.SigningKeyID = "relayer"
		cfg.SecretStore = secretstore.BackendVault
		cfg.Vault = Vault{Address: "https://vault:8200", Token: "t", Mount: "kv", Prefix: "keys", Timeout: time.Second}
		cfg.AWS = AWS{Region: "eu-west-1", Prefix: "p/", KMSKeyID: "alias/relayer"}

		ss := cfg.SecretStoreConfig()
		assert.Nil(t, ss.Seed)
		assert.Equal(t, "https://vault:8200", ss.Vault.Address)
		assert.Equal(t, "kv", ss.Vault.Mount)
		assert.Equal(t, time.Second, ss.Vault.Timeout)
		assert.Equal(t, "eu-west-1", ss.AWS.Region)
		assert.Equal(t, "alias/relayer", ss.AWS.KMSKeyID)
	})
}
