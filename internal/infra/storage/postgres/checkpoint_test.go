package postgres

import (
	"errors"
	"math"
	"testing"

	"github.com/gabapcia/bridgerelay/internal/chainwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveCheckpoint(t *testing.T) {
	t.Run("upserts the watermark of the chain", func(t *testing.T) {
		// Arrange
		db := &fakeDB{}
		s := newTestStore(db)

		// Act
		err := s.SaveCheckpoint(t.Context(), 1337, 120)

		// Assert
		require.NoError(t, err)
		require.Len(t, db.execs, 1)
		assert.Contains(t, db.execs[0].sql, "ON CONFLICT (chain_id) DO UPDATE")
		assert.Equal(t, []any{int64(1337), int64(120), fixedNow}, db.execs[0].args)
	})

	t.Run("rejects blocks past the column range", func(t *testing.T) {
		db := &fakeDB{}
		s := newTestStore(db)

		err := s.SaveCheckpoint(t.Context(), 1337, math.MaxUint64)
		assert.Error(t, err)
		assert.Empty(t, db.execs)
	})

	t.Run("wraps database errors", func(t *testing.T) {
		db := &fakeDB{execErr: errors.New("connection reset")}
		s := newTestStore(db)

		err := s.SaveCheckpoint(t.Context(), 1337, 120)
		assert.ErrorIs(t, err, db.execErr)
		assert.ErrorContains(t, err, "chain 1337")
	})
}

func TestStore_LoadLatestCheckpoint(t *testing.T) {
	t.Run("returns the stored watermark", func(t *testing.T) {
		// Arrange
		db := &fakeDB{rows: [][]any{{int64(120)}}}
		s := newTestStore(db)

		// Act
		block, err := s.LoadLatestCheckpoint(t.Context(), 1337)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(120), block)
		assert.Equal(t, []any{int64(1337)}, db.queries[0].args)
		assert.Contains(t, db.queries[0].sql, "relayer_state")
	})

	t.Run("maps no rows to ErrNoCheckpointFound", func(t *testing.T) {
		s := newTestStore(&fakeDB{})

		_, err := s.LoadLatestCheckpoint(t.Context(), 1337)
		assert.ErrorIs(t, err, chainwatch.ErrNoCheckpointFound)
	})

	t.Run("rejects negative watermarks", func(t *testing.T) {
		s := newTestStore(&fakeDB{rows: [][]any{{int64(-1)}}})

		_, err := s.LoadLatestCheckpoint(t.Context(), 1337)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, chainwatch.ErrNoCheckpointFound)
	})

	t.Run("propagates query errors", func(t *testing.T) {
		db := &fakeDB{queryErr: errors.New("timeout")}
		s := newTestStore(db)

		_, err := s.LoadLatestCheckpoint(t.Context(), 1337)
		assert.ErrorIs(t, err, db.queryErr)
	})
}
