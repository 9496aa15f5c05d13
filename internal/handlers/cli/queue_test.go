package cli

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/gabapcia/bridgerelay/internal/bridge"
	clitest "github.com/gabapcia/bridgerelay/internal/handlers/cli/mocks"
	"github.com/gabapcia/bridgerelay/internal/txqueue"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runQueue(t *testing.T, history TransactionHistory, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Writer: &buf,
		Commands: []*cli.Command{
			queueCommand(func(context.Context) (TransactionHistory, error) { return history, nil }),
		},
	}

	err := app.Run(t.Context(), append([]string{"test", "queue"}, args...))
	return buf.String(), err
}

func TestQueueCommand(t *testing.T) {
	t.Run("should print stats per status", func(t *testing.T) {
		// Arrange
		history := clitest.NewTransactionHistory(t)
		history.EXPECT().GetStats(mock.Anything).Return(txqueue.Stats{
			Total: 6, Pending: 1, Processing: 1, Completed: 2, Failed: 2, Exhausted: 1,
		}, nil).Once()

		// Act
		output, err := runQueue(t, history, "stats")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "total       6\n")
		assert.Contains(t, output, "failed      2\n")
		assert.Contains(t, output, "exhausted   1\n")
	})

	t.Run("should list a user's history", func(t *testing.T) {
		// Arrange
		user := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
		updated := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		history := clitest.NewTransactionHistory(t)
		history.EXPECT().GetByUser(mock.Anything, user, 5).Return([]txqueue.Entry{{
			ID:         "0xabc",
			Status:     txqueue.StatusFailed,
			RetryCount: 1,
			MaxRetries: 3,
			LastError:  "execution reverted",
			UpdatedAt:  updated,
			Tx: bridge.Transaction{
				User:          user,
				Amount:        big.NewInt(1000),
				SourceChainID: 1337,
				TargetChainID: 1338,
			},
		}}, nil).Once()

		// Act
		output, err := runQueue(t, history, "history", "--user", user.Hex(), "--limit", "5")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "ID")
		assert.Contains(t, output, "0xabc")
		assert.Contains(t, output, "1337->1338")
		assert.Contains(t, output, "1/3")
		assert.Contains(t, output, "2025-03-01T12:00:00Z")
		assert.Contains(t, output, "execution reverted")
	})

	t.Run("should reject a malformed user address", func(t *testing.T) {
		// Act
		_, err := runQueue(t, clitest.NewTransactionHistory(t), "history", "--user", "alice")

		// Assert
		assert.ErrorContains(t, err, "invalid user address")
	})

	t.Run("should prune with the given age", func(t *testing.T) {
		// Arrange
		history := clitest.NewTransactionHistory(t)
		history.EXPECT().CleanupOlderThan(mock.Anything, 2*time.Hour).Return(int64(4), nil).Once()

		// Act
		output, err := runQueue(t, history, "prune", "--older-than", "2h")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "removed 4 entries\n", output)
	})

	t.Run("should prune a day by default", func(t *testing.T) {
		// Arrange
		history := clitest.NewTransactionHistory(t)
		history.EXPECT().CleanupOlderThan(mock.Anything, 24*time.Hour).Return(int64(0), nil).Once()

		// Act
		_, err := runQueue(t, history, "prune")

		// Assert
		require.NoError(t, err)
	})

	t.Run("should propagate store errors", func(t *testing.T) {
		// Arrange
		expectedError := errors.New("connection refused")
		history := clitest.NewTransactionHistory(t)
		history.EXPECT().GetStats(mock.Anything).Return(txqueue.Stats{}, expectedError).Once()

		// Act
		_, err := runQueue(t, history, "stats")

		// Assert
		assert.ErrorIs(t, err, expectedError)
	})

	t.Run("should report a missing database as is", func(t *testing.T) {
		// Arrange
		app := &cli.Command{
			Commands: []*cli.Command{
				queueCommand(func(context.Context) (TransactionHistory, error) { return nil, ErrHistoryUnavailable }),
			},
		}

		// Act
		err := app.Run(t.Context(), []string{"test", "queue", "stats"})

		// Assert
		require.ErrorIs(t, err, ErrHistoryUnavailable)
		assert.NotContains(t, err.Error(), "open transaction store")
	})
}
