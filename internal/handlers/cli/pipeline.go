package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/bridgerelay/internal/relayer"

	"github.com/urfave/cli/v3"
)

// startRelayerCommand returns a CLI command that starts the relay pipeline:
// catch-up of every configured chain, live event watching and the queue
// processor.
//
// Usage example:
//
//	bridgerelay start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or its
// context is cancelled.
func startRelayerCommand(build func(ctx context.Context) (relayer.Service, error)) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the relayer: catches up every chain, watches for lock events and settles them on the target chain.",
		Usage:       "Initializes and runs the relay pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			svc, err := build(ctx)
			if err != nil {
				return fmt.Errorf("build relayer: %w", err)
			}

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}
