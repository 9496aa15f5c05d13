package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fast(opts ...Option) Retry {
	base := []Option{
		WithDelay(time.Millisecond),
		WithMaxDelay(2 * time.Millisecond),
	}
	return New(append(base, opts...)...)
}

func TestRetry_Execute(t *testing.T) {
	t.Run("succeeds on the first attempt", func(t *testing.T) {
		calls := 0

		err := fast().Execute(t.Context(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0

		err := fast(WithAttempts(3)).Execute(t.Context(), func() error {
			calls++
			if calls < 2 {
				return errors.New("rpc unavailable")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns the last error when attempts are exhausted", func(t *testing.T) {
		calls := 0
		expected := errors.New("persistent error")

		err := fast(WithAttempts(3)).Execute(t.Context(), func() error {
			calls++
			return expected
		})

		assert.ErrorIs(t, err, expected)
		assert.Equal(t, 3, calls)
	})

	t.Run("combines every error when last-error-only is off", func(t *testing.T) {
		first := errors.New("first")
		second := errors.New("second")
		calls := 0

		err := fast(WithAttempts(2), WithLastErrorOnly(false)).Execute(t.Context(), func() error {
			calls++
			if calls == 1 {
				return first
			}
			return second
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "first")
		assert.Contains(t, err.Error(), "second")
	})

	t.Run("stops on a permanent error", func(t *testing.T) {
		calls := 0
		fatal := errors.New("bad configuration")

		err := fast(WithAttempts(5)).Execute(t.Context(), func() error {
			calls++
			return Permanent(fatal)
		})

		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("invokes the retry callback per failed attempt", func(t *testing.T) {
		var seen []uint

		_ = fast(WithAttempts(3), WithOnRetry(func(n uint, _ error) {
			seen = append(seen, n)
		})).Execute(t.Context(), func() error {
			return errors.New("boom")
		})

		require.NotEmpty(t, seen)
		assert.Equal(t, uint(0), seen[0])
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		calls := 0

		err := New(WithAttempts(0), WithDelay(20*time.Millisecond)).Execute(ctx, func() error {
			calls++
			if calls == 2 {
				cancel()
			}
			return errors.New("still failing")
		})

		assert.Error(t, err)
		assert.LessOrEqual(t, calls, 3)
	})
}
