package aws

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/bridgerelay/internal/keystore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSecretsManager keeps secrets in memory and pages ListSecrets one
// secret at a time.
type fakeSecretsManager struct {
	mu       sync.Mutex
	secrets  map[string]string
	kmsKeys  map[string]string
	creates  int
	failWith error
}

var _ SecretsManagerAPI = (*fakeSecretsManager)(nil)

func newFake() *fakeSecretsManager {
	return &fakeSecretsManager{secrets: make(map[string]string), kmsKeys: make(map[string]string)}
}

func notFound() error {
	return &smtypes.ResourceNotFoundException{Message: aws.String("secret not found")}
}

func (f *fakeSecretsManager) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	value, ok := f.secrets[*in.SecretId]
	if !ok {
		return nil, notFound()
	}
	return &secretsmanager.GetSecretValueOutput{Name: in.SecretId, SecretString: aws.String(value)}, nil
}

func (f *fakeSecretsManager) CreateSecret(_ context.Context, in *secretsmanager.CreateSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates++
	f.secrets[*in.Name] = *in.SecretString
	if in.KmsKeyId != nil {
		f.kmsKeys[*in.Name] = *in.KmsKeyId
	}
	return &secretsmanager.CreateSecretOutput{Name: in.Name}, nil
}

func (f *fakeSecretsManager) UpdateSecret(_ context.Context, in *secretsmanager.UpdateSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.UpdateSecretOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.secrets[*in.SecretId]; !ok {
		return nil, notFound()
	}
	f.secrets[*in.SecretId] = *in.SecretString
	return &secretsmanager.UpdateSecretOutput{Name: in.SecretId}, nil
}

func (f *fakeSecretsManager) DeleteSecret(_ context.Context, in *secretsmanager.DeleteSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.DeleteSecretOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.secrets[*in.SecretId]; !ok {
		return nil, notFound()
	}
	delete(f.secrets, *in.SecretId)
	return &secretsmanager.DeleteSecretOutput{Name: in.SecretId}, nil
}

func (f *fakeSecretsManager) DescribeSecret(_ context.Context, in *secretsmanager.DescribeSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.DescribeSecretOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	if _, ok := f.secrets[*in.SecretId]; !ok {
		return nil, notFound()
	}
	return &secretsmanager.DescribeSecretOutput{Name: in.SecretId}, nil
}

func (f *fakeSecretsManager) ListSecrets(_ context.Context, in *secretsmanager.ListSecretsInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.ListSecretsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefix := ""
	if len(in.Filters) > 0 && len(in.Filters[0].Values) > 0 {
		prefix = in.Filters[0].Values[0]
	}

	var names []string
	for name := range f.secrets {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	start := 0
	if in.NextToken != nil {
		for i, name := range names {
			if name == *in.NextToken {
				start = i
				break
			}
		}
	}

	out := &secretsmanager.ListSecretsOutput{}
	if start < len(names) {
		out.SecretList = []smtypes.SecretListEntry{{Name: aws.String(names[start])}}
		if start+1 < len(names) {
			out.NextToken = aws.String(names[start+1])
		}
	}
	return out, nil
}

func newTestStore(t *testing.T, cfg Config) (*store, *fakeSecretsManager) {
	t.Helper()

	fake := newFake()
	s := NewWithClient(fake, cfg).(*store)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	return s, fake
}

func TestStore(t *testing.T) {
	t.Run("creates then updates a secret", func(t *testing.T) {
		s, fake := newTestStore(t, Config{KMSKeyID: "alias/relayer"})
		ctx := t.Context()

		require.NoError(t, s.StoreKey(ctx, "relayer", "0x01"))
		require.NoError(t, s.StoreKey(ctx, "relayer", "0x02"))
		assert.Equal(t, 1, fake.creates)
		assert.Equal(t, "alias/relayer", fake.kmsKeys["relayer/keys/relayer"])

		var stored secretValue
		require.NoError(t, json.Unmarshal([]byte(fake.secrets["relayer/keys/relayer"]), &stored))
		assert.Equal(t, "0x02", stored.PrivateKey)
		assert.Equal(t, "2025-06-01T12:00:00Z", stored.CreatedAt)

		key, err := s.GetKey(ctx, "relayer")
		require.NoError(t, err)
		assert.Equal(t, "0x02", key)
	})

	t.Run("maps missing secrets to key not found", func(t *testing.T) {
		s, _ := newTestStore(t, Config{})

		_, err := s.GetKey(t.Context(), "missing")
		assert.ErrorIs(t, err, keystore.ErrKeyNotFound)

		exists, err := s.KeyExists(t.Context(), "missing")
		require.NoError(t, err)
		assert.False(t, exists)

		assert.NoError(t, s.DeleteKey(t.Context(), "missing"))
	})

	t.Run("recognizes not found by error code", func(t *testing.T) {
		s, fake := newTestStore(t, Config{})
		fake.failWith = &smithy.GenericAPIError{Code: resourceNotFound, Message: "gone"}

		exists, err := s.KeyExists(t.Context(), "relayer")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("propagates other errors", func(t *testing.T) {
		s, fake := newTestStore(t, Config{})
		boom := errors.New("throttled")
		fake.failWith = boom

		_, err := s.GetKey(t.Context(), "relayer")
		assert.ErrorIs(t, err, boom)

		_, err = s.KeyExists(t.Context(), "relayer")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rejects secrets without a private key", func(t *testing.T) {
		s, fake := newTestStore(t, Config{})
		fake.secrets["relayer/keys/broken"] = `{"createdAt":"x"}`

		_, err := s.GetKey(t.Context(), "broken")
		assert.Error(t, err)
	})

	t.Run("lists keys across pages", func(t *testing.T) {
		s, fake := newTestStore(t, Config{Prefix: "bridge/"})
		fake.secrets["other/ignored"] = "{}"

		for _, id := range []string{"signer-b", "signer-a", "signer-c"} {
			require.NoError(t, s.StoreKey(t.Context(), id, "0x01"))
		}

		keys, err := s.ListKeys(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []string{"signer-a", "signer-b", "signer-c"}, keys)
	})

	t.Run("deletes and validates ids", func(t *testing.T) {
		s, fake := newTestStore(t, Config{})
		require.NoError(t, s.StoreKey(t.Context(), "relayer", "0x01"))

		require.NoError(t, s.DeleteKey(t.Context(), "relayer"))
		assert.Empty(t, fake.secrets)

		assert.ErrorIs(t, s.StoreKey(t.Context(), "bad/id", "0x01"), keystore.ErrInvalidKeyID)
	})
}
