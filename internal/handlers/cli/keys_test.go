package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gabapcia/bridgerelay/internal/infra/secretstore/local"
	"github.com/gabapcia/bridgerelay/internal/keystore"
	keystoretest "github.com/gabapcia/bridgerelay/internal/keystore/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const (
	devKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func runKeys(t *testing.T, store keystore.Store, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Writer: &buf,
		Commands: []*cli.Command{
			keysCommand(func(context.Context) (keystore.Store, error) { return store, nil }),
		},
	}

	err := app.Run(t.Context(), append([]string{"test", "keys"}, args...))
	return buf.String(), err
}

func TestKeysCommand(t *testing.T) {
	t.Run("should register every key subcommand", func(t *testing.T) {
		// Act
		cmd := keysCommand(nil)

		// Assert
		assert.Equal(t, "keys", cmd.Name)

		var names []string
		for _, sub := range cmd.Commands {
			names = append(names, sub.Name)
		}
		assert.Equal(t, []string{"store", "generate", "list", "exists", "delete", "rotate", "history", "prune"}, names)
	})

	t.Run("should store a key and print its address", func(t *testing.T) {
		// Arrange
		store := local.New(nil)

		// Act
		output, err := runKeys(t, store, "store", "--id", "relayer", "--key", strings.TrimPrefix(devKey, "0x"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "stored relayer ("+devAddress+")\n", output)

		stored, err := store.GetKey(t.Context(), "relayer")
		require.NoError(t, err)
		assert.Equal(t, devKey, stored)
	})

	t.Run("should reject malformed key material", func(t *testing.T) {
		// Arrange
		store := local.New(nil)

		// Act
		_, err := runKeys(t, store, "store", "--id", "relayer", "--key", "0x1234")

		// Assert
		assert.ErrorIs(t, err, keystore.ErrInvalidKey)
	})

	t.Run("should reject an invalid id", func(t *testing.T) {
		// Act
		_, err := runKeys(t, local.New(nil), "store", "--id", "a/b", "--key", devKey)

		// Assert
		assert.ErrorIs(t, err, keystore.ErrInvalidKeyID)
	})

	t.Run("should generate a key only for a free id", func(t *testing.T) {
		// Arrange
		store := local.New(map[string]string{"taken": devKey})

		// Act
		output, err := runKeys(t, store, "generate", "--id", "fresh")

		// Assert
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(output, "generated fresh (0x"))

		exists, err := store.KeyExists(t.Context(), "fresh")
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = runKeys(t, store, "generate", "--id", "taken")
		assert.ErrorContains(t, err, "already exists")
	})

	t.Run("should list, check and delete keys", func(t *testing.T) {
		// Arrange
		store := local.New(map[string]string{"b": devKey, "a": devKey})

		// Act & Assert
		output, err := runKeys(t, store, "list")
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", output)

		output, err = runKeys(t, store, "exists", "--id", "a")
		require.NoError(t, err)
		assert.Equal(t, "true\n", output)

		_, err = runKeys(t, store, "delete", "--id", "a")
		require.NoError(t, err)

		output, err = runKeys(t, store, "exists", "--id", "a")
		require.NoError(t, err)
		assert.Equal(t, "false\n", output)
	})

	t.Run("should rotate, list history and prune", func(t *testing.T) {
		// Arrange
		store := local.New(map[string]string{"relayer": devKey})

		// Act
		output, err := runKeys(t, store, "rotate", "--id", "relayer")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "rotated relayer: "+devAddress+" -> 0x")

		output, err = runKeys(t, store, "history", "--id", "relayer")
		require.NoError(t, err)
		versions := strings.Fields(output)
		require.Len(t, versions, 1)
		assert.True(t, strings.HasPrefix(versions[0], "relayer-"))

		output, err = runKeys(t, store, "prune", "--id", "relayer", "--keep", "1")
		require.NoError(t, err)
		assert.Equal(t, "pruned 0 versions\n", output)
	})

	t.Run("should propagate store errors", func(t *testing.T) {
		// Arrange
		store := keystoretest.NewStore(t)
		expectedError := errors.New("vault sealed")
		store.EXPECT().ListKeys(mock.Anything).Return(nil, expectedError).Once()

		// Act
		_, err := runKeys(t, store, "list")

		// Assert
		assert.ErrorIs(t, err, expectedError)
	})

	t.Run("should wrap a failure to open the store", func(t *testing.T) {
		// Arrange
		expectedError := errors.New("missing token")
		app := &cli.Command{
			Commands: []*cli.Command{
				keysCommand(func(context.Context) (keystore.Store, error) { return nil, expectedError }),
			},
		}

		// Act
		err := app.Run(t.Context(), []string{"test", "keys", "list"})

		// Assert
		assert.ErrorIs(t, err, expectedError)
		assert.ErrorContains(t, err, "open secret store")
	})
}
