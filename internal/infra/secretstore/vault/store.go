// Package vault stores signing keys in a HashiCorp Vault KV version 2 engine.
//
// Each key is a secret at <mount>/data/<prefix>/<id> holding
//
//	{"privateKey": "0x...", "createdAt": "2025-06-01T12:00:00Z"}
//
// and ids are listed from <mount>/metadata/<prefix>.
package vault

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gabapcia/bridgerelay/internal/keystore"
	httptransport "github.com/gabapcia/bridgerelay/internal/pkg/transport/http"

	vaultapi "github.com/hashicorp/vault/api"
)

// ErrMissingToken is returned by New when no token is configured.
var ErrMissingToken = errors.New("vault token is required")

const (
	fieldPrivateKey = "privateKey"
	fieldCreatedAt  = "createdAt"
)

// Config locates the KV engine and authenticates against it.
type Config struct {
	Address   string
	Token     string
	Namespace string
	Mount     string
	Prefix    string
	Timeout   time.Duration
}

type store struct {
	client *vaultapi.Client
	kv     *vaultapi.KVv2
	mount  string
	prefix string
	now    func() time.Time
}

var _ keystore.Store = (*store)(nil)

// New returns a Vault-backed store. Mount defaults to "secret" and Prefix to
// "relayer/keys".
func New(cfg Config) (keystore.Store, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	if _, err := url.ParseRequestURI(cfg.Address); err != nil {
		return nil, fmt.Errorf("invalid vault address: %w", err)
	}

	if cfg.Mount == "" {
		cfg.Mount = "secret"
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "relayer/keys"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	apiCfg := vaultapi.DefaultConfig()
	apiCfg.Address = strings.TrimRight(cfg.Address, "/")
	apiCfg.Timeout = cfg.Timeout
	apiCfg.Logger = httptransport.Logger("vault")

	client, err := vaultapi.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("create vault client: %w", err)
	}

	client.SetToken(cfg.Token)
	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}

	mount := strings.Trim(cfg.Mount, "/")
	return &store{
		client: client,
		kv:     client.KVv2(mount),
		mount:  mount,
		prefix: strings.Trim(cfg.Prefix, "/"),
		now:    time.Now,
	}, nil
}

func (s *store) secretPath(id string) string {
	return path.Join(s.prefix, id)
}

// read returns the data of the latest version of id. A missing secret, or one
// whose latest version was deleted, yields keystore.ErrKeyNotFound.
func (s *store) read(ctx context.Context, id string) (map[string]any, error) {
	secret, err := s.kv.Get(ctx, s.secretPath(id))
	if errors.Is(err, vaultapi.ErrSecretNotFound) {
		return nil, fmt.Errorf("%w: %s", keystore.ErrKeyNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("read vault secret %s: %w", id, err)
	}

	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("%w: %s", keystore.ErrKeyNotFound, id)
	}

	return secret.Data, nil
}

func (s *store) GetKey(ctx context.Context, id string) (string, error) {
	data, err := s.read(ctx, id)
	if err != nil {
		return "", err
	}

	key, _ := data[fieldPrivateKey].(string)
	if key == "" {
		return "", fmt.Errorf("%w: %s has no %s", keystore.ErrKeyNotFound, id, fieldPrivateKey)
	}

	return key, nil
}

func (s *store) StoreKey(ctx context.Context, id, key string) error {
	if err := keystore.ValidateKeyID(id); err != nil {
		return err
	}

	data := map[string]any{
		fieldPrivateKey: key,
		fieldCreatedAt:  s.now().UTC().Format(time.RFC3339),
	}

	if _, err := s.kv.Put(ctx, s.secretPath(id), data); err != nil {
		return fmt.Errorf("write vault secret %s: %w", id, err)
	}
	return nil
}

// DeleteKey removes every version of the secret along with its metadata.
func (s *store) DeleteKey(ctx context.Context, id string) error {
	if err := s.kv.DeleteMetadata(ctx, s.secretPath(id)); err != nil {
		return fmt.Errorf("delete vault secret %s: %w", id, err)
	}
	return nil
}

func (s *store) KeyExists(ctx context.Context, id string) (bool, error) {
	_, err := s.read(ctx, id)
	if errors.Is(err, keystore.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListKeys returns the ids directly under the prefix. Nested folders are
// skipped.
func (s *store) ListKeys(ctx context.Context) ([]string, error) {
	secret, err := s.client.Logical().ListWithContext(ctx, path.Join(s.mount, "metadata", s.prefix))
	if err != nil {
		return nil, fmt.Errorf("list vault secrets: %w", err)
	}

	if secret == nil || secret.Data == nil {
		return nil, nil
	}

	raw, _ := secret.Data["keys"].([]any)

	keys := make([]string, 0, len(raw))
	for _, entry := range raw {
		key, ok := entry.(string)
		if !ok || strings.HasSuffix(key, "/") {
			continue
		}
		keys = append(keys, key)
	}

	return keys, nil
}
