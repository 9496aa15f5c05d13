// Package aws stores signing keys in AWS Secrets Manager. Each key is a
// secret named <prefix><id> whose string value is
//
//	{"privateKey": "0x...", "createdAt": "2025-06-01T12:00:00Z"}
package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/bridgerelay/internal/keystore"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
)

const resourceNotFound = "ResourceNotFoundException"

// SecretsManagerAPI is the subset of the Secrets Manager client used by the store.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	CreateSecret(ctx context.Context, in *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
	UpdateSecret(ctx context.Context, in *secretsmanager.UpdateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.UpdateSecretOutput, error)
	DeleteSecret(ctx context.Context, in *secretsmanager.DeleteSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DeleteSecretOutput, error)
	DescribeSecret(ctx context.Context, in *secretsmanager.DescribeSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DescribeSecretOutput, error)
	ListSecrets(ctx context.Context, in *secretsmanager.ListSecretsInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.ListSecretsOutput, error)
}

// Config selects the region, naming prefix and optional customer KMS key.
// Credentials come from the default AWS chain.
type Config struct {
	Region   string
	Prefix   string
	KMSKeyID string
}

type store struct {
	api      SecretsManagerAPI
	prefix   string
	kmsKeyID string
	now      func() time.Time
}

var _ keystore.Store = (*store)(nil)

type secretValue struct {
	PrivateKey string `json:"privateKey"`
	CreatedAt  string `json:"createdAt"`
}

// New loads the default AWS configuration and returns a Secrets Manager store.
func New(ctx context.Context, cfg Config) (keystore.Store, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewWithClient(secretsmanager.NewFromConfig(awsCfg), cfg), nil
}

// NewWithClient returns a store over an existing client. Prefix defaults to
// "relayer/keys/".
func NewWithClient(api SecretsManagerAPI, cfg Config) keystore.Store {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "relayer/keys/"
	}

	return &store{
		api:      api,
		prefix:   prefix,
		kmsKeyID: cfg.KMSKeyID,
		now:      time.Now,
	}
}

func (s *store) secretName(id string) string {
	return s.prefix + id
}

func isNotFound(err error) bool {
	var notFound *smtypes.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == resourceNotFound
}

func (s *store) GetKey(ctx context.Context, id string) (string, error) {
	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretName(id)),
	})
	if isNotFound(err) {
		return "", fmt.Errorf("%w: %s", keystore.ErrKeyNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("get secret %s: %w", s.secretName(id), err)
	}

	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", s.secretName(id))
	}

	var value secretValue
	if err := json.Unmarshal([]byte(*out.SecretString), &value); err != nil {
		return "", fmt.Errorf("decode secret %s: %w", s.secretName(id), err)
	}

	if value.PrivateKey == "" {
		return "", fmt.Errorf("secret %s has no privateKey field", s.secretName(id))
	}

	return value.PrivateKey, nil
}

// StoreKey updates the secret and creates it when it does not exist yet.
func (s *store) StoreKey(ctx context.Context, id, key string) error {
	if err := keystore.ValidateKeyID(id); err != nil {
		return err
	}

	raw, err := json.Marshal(secretValue{
		PrivateKey: key,
		CreatedAt:  s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	name := s.secretName(id)

	_, err = s.api.UpdateSecret(ctx, &secretsmanager.UpdateSecretInput{
		SecretId:     aws.String(name),
		SecretString: aws.String(string(raw)),
	})
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("update secret %s: %w", name, err)
	}

	in := &secretsmanager.CreateSecretInput{
		Name:         aws.String(name),
		SecretString: aws.String(string(raw)),
		Description:  aws.String("Relayer private key for " + id),
	}
	if s.kmsKeyID != "" {
		in.KmsKeyId = aws.String(s.kmsKeyID)
	}

	if _, err := s.api.CreateSecret(ctx, in); err != nil {
		return fmt.Errorf("create secret %s: %w", name, err)
	}

	return nil
}

func (s *store) DeleteKey(ctx context.Context, id string) error {
	_, err := s.api.DeleteSecret(ctx, &secretsmanager.DeleteSecretInput{
		SecretId:                   aws.String(s.secretName(id)),
		ForceDeleteWithoutRecovery: aws.Bool(true),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete secret %s: %w", s.secretName(id), err)
	}
	return nil
}

func (s *store) KeyExists(ctx context.Context, id string) (bool, error) {
	_, err := s.api.DescribeSecret(ctx, &secretsmanager.DescribeSecretInput{
		SecretId: aws.String(s.secretName(id)),
	})
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("describe secret %s: %w", s.secretName(id), err)
	}
	return true, nil
}

func (s *store) ListKeys(ctx context.Context) ([]string, error) {
	paginator := secretsmanager.NewListSecretsPaginator(s.api, &secretsmanager.ListSecretsInput{
		Filters: []smtypes.Filter{{
			Key:    smtypes.FilterNameStringTypeName,
			Values: []string{s.prefix},
		}},
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list secrets: %w", err)
		}

		for _, secret := range page.SecretList {
			if secret.Name == nil {
				continue
			}
			if id, ok := strings.CutPrefix(*secret.Name, s.prefix); ok {
				keys = append(keys, id)
			}
		}
	}

	slices.Sort(keys)
	return keys, nil
}
