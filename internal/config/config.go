// Package config reads the relayer settings from the environment and the
// chain list from a yaml file.
//
// Environment variables carry the RELAYER_ prefix, so the retry delay is read
// from RELAYER_RETRY_DELAY and the Vault address from RELAYER_VAULT_ADDRESS.
// The chain file path comes from RELAYER_CHAINS_FILE.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/bridgerelay/internal/infra/secretstore"
	"github.com/gabapcia/bridgerelay/internal/infra/secretstore/aws"
	"github.com/gabapcia/bridgerelay/internal/infra/secretstore/vault"
	"github.com/gabapcia/bridgerelay/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "RELAYER"

var (
	// ErrDuplicateChain is returned when two chains share a chain id.
	ErrDuplicateChain = errors.New("duplicate chain id")

	// ErrNoSigningKey is returned when a chain has no key to sign with.
	ErrNoSigningKey = errors.New("no signing key configured")
)

type Vault struct {
	Address   string        `envconfig:"ADDRESS" validate:"omitempty,url"`
	Token     string        `envconfig:"TOKEN"`
	Namespace string        `envconfig:"NAMESPACE"`
	Mount     string        `envconfig:"MOUNT" default:"secret"`
	Prefix    string        `envconfig:"PREFIX" default:"relayer/keys"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

type AWS struct {
	Region   string `envconfig:"REGION"`
	Prefix   string `envconfig:"PREFIX" default:"relayer/keys/"`
	KMSKeyID string `envconfig:"KMS_KEY_ID"`
}

// Redis holds the watermark store settings. An empty Addr keeps watermarks
// in memory only.
type Redis struct {
	Addr     string `envconfig:"ADDR"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" validate:"gte=0"`
}

// Chain is one entry of the chain file.
type Chain struct {
	Name          string `yaml:"name" validate:"required"`
	ChainID       uint64 `yaml:"chainId" validate:"required"`
	RPCURL        string `yaml:"rpcUrl" validate:"required,url"`
	BridgeAddress string `yaml:"bridgeAddress" validate:"required,eth_addr"`
	StartBlock    uint64 `yaml:"startBlock"`

	// KeyID and PrivateKey override the process wide signing key.
	KeyID      string `yaml:"keyId,omitempty"`
	PrivateKey string `yaml:"privateKey,omitempty" validate:"omitempty,privkey"`
}

func (c Chain) Bridge() common.Address {
	return common.HexToAddress(c.BridgeAddress)
}

type chainFile struct {
	Chains []Chain `yaml:"chains" validate:"required,min=1,dive"`
}

type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"bridgerelay" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED"`

	ChainsFile string `envconfig:"CHAINS_FILE" default:"chains.yaml"`

	RetryDelay         time.Duration `envconfig:"RETRY_DELAY" default:"5s" validate:"gt=0"`
	MaxRetries         int           `envconfig:"MAX_RETRIES" default:"3" validate:"gte=1"`
	ProcessingInterval time.Duration `envconfig:"PROCESSING_INTERVAL" default:"2s" validate:"gt=0"`
	CleanupInterval    time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1h" validate:"gt=0"`
	CompletedRetention time.Duration `envconfig:"COMPLETED_RETENTION" default:"1h" validate:"gte=0"`
	SubmissionTimeout  time.Duration `envconfig:"SUBMISSION_TIMEOUT" default:"2m" validate:"gt=0"`
	Workers            int           `envconfig:"WORKERS" default:"1" validate:"gte=1"`

	PollInterval     time.Duration `envconfig:"POLL_INTERVAL" default:"4s" validate:"gt=0"`
	RPCTimeout       time.Duration `envconfig:"RPC_TIMEOUT" default:"30s" validate:"gt=0"`
	CatchUpBatchSize uint64        `envconfig:"CATCHUP_BATCH_SIZE" default:"2000" validate:"gt=0"`

	SigningKey   string `envconfig:"SIGNING_KEY" validate:"omitempty,privkey"`
	SigningKeyID string `envconfig:"SIGNING_KEY_ID"`

	SecretStore string `envconfig:"SECRET_STORE" default:"local" validate:"oneof=local vault aws"`
	Vault       Vault  `envconfig:"VAULT"`
	AWS         AWS    `envconfig:"AWS"`

	Redis       Redis  `envconfig:"REDIS"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	Chains []Chain `ignored:"true" validate:"min=1,dive"`
}

// Load reads the environment, then the chain file it points at, and
// validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	chains, err := LoadChains(cfg.ChainsFile)
	if err != nil {
		return Config{}, err
	}
	cfg.Chains = chains

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadChains reads and validates the chain file at path. Unknown keys are
// rejected.
func LoadChains(path string) ([]Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chain file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file chainFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse chain file %s: %w", path, err)
	}

	if err := validator.Validate(file); err != nil {
		return nil, fmt.Errorf("chain file %s: %w", path, err)
	}

	return file.Chains, nil
}

// Validate checks the settings and that every chain can be signed for.
func (c Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	seen := make(map[uint64]string, len(c.Chains))
	for _, chain := range c.Chains {
		if other, ok := seen[chain.ChainID]; ok {
			return fmt.Errorf("%w: %d used by %q and %q", ErrDuplicateChain, chain.ChainID, other, chain.Name)
		}
		seen[chain.ChainID] = chain.Name

		if key := c.KeyFor(chain); key.Material == "" && key.ID == "" {
			return fmt.Errorf("%w: chain %q", ErrNoSigningKey, chain.Name)
		}
	}

	return nil
}

// Key is where a chain's signing key comes from. Exactly one of Material and
// ID is set for a configured chain.
type Key struct {
	Material string
	ID       string
}

// KeyFor resolves the signing key of chain. Chain overrides win over the
// process wide key, and raw key material wins over a secret store id.
func (c Config) KeyFor(chain Chain) Key {
	switch {
	case chain.PrivateKey != "":
		return Key{Material: chain.PrivateKey}
	case chain.KeyID != "":
		return Key{ID: chain.KeyID}
	case c.SigningKey != "" && c.SigningKeyID == "":
		return Key{Material: c.SigningKey}
	default:
		return Key{ID: c.SigningKeyID}
	}
}

// SecretStoreConfig maps the settings onto the secret store factory. With
// both SIGNING_KEY and SIGNING_KEY_ID set, the local backend starts with that
// key stored under that id.
func (c Config) SecretStoreConfig() secretstore.Config {
	cfg := secretstore.Config{
		Backend: c.SecretStore,
		Vault: vault.Config{
			Address:   c.Vault.Address,
			Token:     c.Vault.Token,
			Namespace: c.Vault.Namespace,
			Mount:     c.Vault.Mount,
			Prefix:    c.Vault.Prefix,
			Timeout:   c.Vault.Timeout,
		},
		AWS: aws.Config{
			Region:   c.AWS.Region,
			Prefix:   c.AWS.Prefix,
			KMSKeyID: c.AWS.KMSKeyID,
		},
	}

	if c.SecretStore == secretstore.BackendLocal && c.SigningKey != "" && c.SigningKeyID != "" {
		cfg.Seed = map[string]string{c.SigningKeyID: c.SigningKey}
	}

	return cfg
}
