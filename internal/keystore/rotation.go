package keystore

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/bridgerelay/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultKeep is how many rotated versions Prune keeps when asked for zero.
const DefaultKeep = 3

// Rotation describes the outcome of a key rotation.
type Rotation struct {
	KeyID      string
	VersionID  string
	OldAddress common.Address
	NewAddress common.Address
}

// Rotator replaces the key under an id with a freshly generated one, keeping
// each generated key under a timestamped version id. Updating the bridge
// contract's validator set is left to the operator.
type Rotator struct {
	store Store
	now   func() time.Time
}

// RotatorOption configures a Rotator.
type RotatorOption func(*Rotator)

// WithRotationClock overrides the clock used to name key versions.
func WithRotationClock(now func() time.Time) RotatorOption {
	return func(r *Rotator) {
		r.now = now
	}
}

// NewRotator returns a Rotator backed by store.
func NewRotator(store Store, opts ...RotatorOption) *Rotator {
	r := &Rotator{store: store, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// versionID names a rotated key as <id>-<unix milliseconds>.
func versionID(id string, at time.Time) string {
	return id + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}

// Rotate generates a new key for id. The current key must exist.
func (r *Rotator) Rotate(ctx context.Context, id string) (Rotation, error) {
	if err := ValidateKeyID(id); err != nil {
		return Rotation{}, err
	}

	current, err := r.store.GetKey(ctx, id)
	if err != nil {
		return Rotation{}, fmt.Errorf("load current key %s: %w", id, err)
	}

	oldKey, err := ParsePrivateKey(current)
	if err != nil {
		return Rotation{}, fmt.Errorf("parse current key %s: %w", id, err)
	}

	newKey, err := crypto.GenerateKey()
	if err != nil {
		return Rotation{}, fmt.Errorf("generate key: %w", err)
	}
	encoded := EncodePrivateKey(newKey)

	version := versionID(id, r.now())
	if err := r.store.StoreKey(ctx, version, encoded); err != nil {
		return Rotation{}, fmt.Errorf("store key version %s: %w", version, err)
	}

	if err := r.store.StoreKey(ctx, id, encoded); err != nil {
		return Rotation{}, fmt.Errorf("replace key %s: %w", id, err)
	}

	rotation := Rotation{
		KeyID:      id,
		VersionID:  version,
		OldAddress: crypto.PubkeyToAddress(oldKey.PublicKey),
		NewAddress: crypto.PubkeyToAddress(newKey.PublicKey),
	}

	logger.Info(ctx, "signing key rotated",
		"key.id", id,
		"key.version", version,
		"key.old_address", rotation.OldAddress.Hex(),
		"key.new_address", rotation.NewAddress.Hex(),
	)

	return rotation, nil
}

// History returns the rotated version ids of id, oldest first.
func (r *Rotator) History(ctx context.Context, id string) ([]string, error) {
	keys, err := r.store.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	prefix := id + "-"
	var history []string
	for _, key := range keys {
		suffix, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		if _, err := strconv.ParseInt(suffix, 10, 64); err != nil {
			continue
		}
		history = append(history, key)
	}

	slices.SortFunc(history, func(a, b string) int {
		return compareVersions(a, b, len(prefix))
	})

	return history, nil
}

func compareVersions(a, b string, prefixLen int) int {
	ta, _ := strconv.ParseInt(a[prefixLen:], 10, 64)
	tb, _ := strconv.ParseInt(b[prefixLen:], 10, 64)
	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	}
	return 0
}

// Prune deletes all but the newest keep versions of id and returns the
// deleted version ids. A keep of zero or less uses DefaultKeep.
func (r *Rotator) Prune(ctx context.Context, id string, keep int) ([]string, error) {
	if keep <= 0 {
		keep = DefaultKeep
	}

	history, err := r.History(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(history) <= keep {
		return nil, nil
	}

	stale := history[:len(history)-keep]
	for _, version := range stale {
		if err := r.store.DeleteKey(ctx, version); err != nil {
			return nil, fmt.Errorf("delete key version %s: %w", version, err)
		}
	}

	logger.Info(ctx, "pruned rotated keys", "key.id", id, "key.pruned", len(stale))
	return stale, nil
}
