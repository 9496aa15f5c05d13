package cli

import (
	"context"
	"errors"
	"os"

	"github.com/gabapcia/bridgerelay/internal/keystore"
	"github.com/gabapcia/bridgerelay/internal/relayer"

	"github.com/urfave/cli/v3"
)

// ErrHistoryUnavailable is returned by the queue commands when no durable
// transaction store is configured.
var ErrHistoryUnavailable = errors.New("transaction history requires a database")

// Dependencies builds the services behind each command group. Builders run
// only when a command of their group is invoked, so managing keys never needs
// a reachable chain or database.
type Dependencies struct {
	Relayer func(ctx context.Context) (relayer.Service, error)
	Keys    func(ctx context.Context) (keystore.Store, error)
	History func(ctx context.Context) (TransactionHistory, error)
}

// Run initializes and executes the relayer CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the relay pipeline until interrupted.
//   - `keys`: Manages signing keys in the configured secret store.
//   - `queue`: Inspects and prunes the persisted transaction history.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, deps Dependencies) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "bridgerelay",
		Description:           "Command-line interface for running the bridge relayer and managing its keys and queue.",
		Usage:                 "bridgerelay [command] [flags]",
		Commands: []*cli.Command{
			startRelayerCommand(deps.Relayer),
			keysCommand(deps.Keys),
			queueCommand(deps.History),
		},
	}

	return app.Run(ctx, os.Args)
}
