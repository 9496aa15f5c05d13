package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/gabapcia/bridgerelay/internal/relayer"
	relayertest "github.com/gabapcia/bridgerelay/internal/relayer/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

func relayerBuilder(svc relayer.Service) func(context.Context) (relayer.Service, error) {
	return func(context.Context) (relayer.Service, error) {
		return svc, nil
	}
}

func TestStartRelayerCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockService := relayertest.NewService(t)

		// Act
		cmd := startRelayerCommand(relayerBuilder(mockService))

		// Assert
		assert.Equal(t, "start", cmd.Name)
		assert.Equal(t, "Starts the relayer: catches up every chain, watches for lock events and settles them on the target chain.", cmd.Description)
		assert.Equal(t, "Initializes and runs the relay pipeline. Terminates gracefully on Ctrl+C or termination signals.", cmd.Usage)
		assert.Len(t, cmd.Flags, 0)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should return error when service start fails", func(t *testing.T) {
		// Arrange
		mockService := relayertest.NewService(t)
		expectedError := errors.New("catch up chain 1337: rpc unavailable")

		mockService.EXPECT().Start(mock.Anything).Return(expectedError).Once()
		// Close should not be called if Start fails

		app := &cli.Command{
			Commands: []*cli.Command{startRelayerCommand(relayerBuilder(mockService))},
		}

		// Act
		err := app.Run(t.Context(), []string{"test", "start"})

		// Assert
		assert.ErrorIs(t, err, expectedError)
	})

	t.Run("should return error when the relayer cannot be built", func(t *testing.T) {
		// Arrange
		expectedError := errors.New("dial rpc")
		build := func(context.Context) (relayer.Service, error) {
			return nil, expectedError
		}

		app := &cli.Command{
			Commands: []*cli.Command{startRelayerCommand(build)},
		}

		// Act
		err := app.Run(t.Context(), []string{"test", "start"})

		// Assert
		assert.ErrorIs(t, err, expectedError)
		assert.ErrorContains(t, err, "build relayer")
	})

	t.Run("should close the service when the context is cancelled", func(t *testing.T) {
		// Arrange
		mockService := relayertest.NewService(t)
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		mockService.EXPECT().Start(mock.Anything).Run(func(context.Context) {
			cancel()
		}).Return(nil).Once()
		mockService.EXPECT().Close().Once()

		app := &cli.Command{
			Commands: []*cli.Command{startRelayerCommand(relayerBuilder(mockService))},
		}

		// Act
		err := app.Run(ctx, []string{"test", "start"})

		// Assert
		assert.NoError(t, err)
	})
}
