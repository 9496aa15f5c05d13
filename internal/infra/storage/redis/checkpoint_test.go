package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/bridgerelay/internal/chainwatch"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
	closed bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeConn) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}

	val, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeConn) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}

	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestClient_Checkpoint(t *testing.T) {
	t.Run("round trips the watermark per chain", func(t *testing.T) {
		conn := newFakeConn()
		c := &client{conn: conn}

		require.NoError(t, c.SaveCheckpoint(t.Context(), 1337, 120))
		require.NoError(t, c.SaveCheckpoint(t.Context(), 1338, 7))

		block, err := c.LoadLatestCheckpoint(t.Context(), 1337)
		require.NoError(t, err)
		assert.Equal(t, uint64(120), block)

		block, err = c.LoadLatestCheckpoint(t.Context(), 1338)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), block)

		assert.Equal(t, "120", conn.values["relayer:checkpoint:1337"])
		assert.Zero(t, conn.ttls["relayer:checkpoint:1337"])
	})

	t.Run("overwrites the previous watermark", func(t *testing.T) {
		c := &client{conn: newFakeConn()}

		require.NoError(t, c.SaveCheckpoint(t.Context(), 1, 10))
		require.NoError(t, c.SaveCheckpoint(t.Context(), 1, 11))

		block, err := c.LoadLatestCheckpoint(t.Context(), 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(11), block)
	})

	t.Run("maps a missing key to ErrNoCheckpointFound", func(t *testing.T) {
		c := &client{conn: newFakeConn()}

		_, err := c.LoadLatestCheckpoint(t.Context(), 1)
		assert.ErrorIs(t, err, chainwatch.ErrNoCheckpointFound)
	})

	t.Run("rejects corrupted values", func(t *testing.T) {
		conn := newFakeConn()
		conn.values["relayer:checkpoint:1"] = "0x10"
		c := &client{conn: conn}

		_, err := c.LoadLatestCheckpoint(t.Context(), 1)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, chainwatch.ErrNoCheckpointFound)
	})

	t.Run("propagates connection errors", func(t *testing.T) {
		conn := newFakeConn()
		conn.err = errors.New("connection reset")
		c := &client{conn: conn}

		assert.ErrorIs(t, c.SaveCheckpoint(t.Context(), 1, 1), conn.err)

		_, err := c.LoadLatestCheckpoint(t.Context(), 1)
		assert.ErrorIs(t, err, conn.err)
	})

	t.Run("closes the connection", func(t *testing.T) {
		conn := newFakeConn()
		c := &client{conn: conn}

		require.NoError(t, c.Close())
		assert.True(t, conn.closed)
	})
}
