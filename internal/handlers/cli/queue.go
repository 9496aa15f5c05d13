package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/gabapcia/bridgerelay/internal/txqueue"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"
)

// TransactionHistory is the read and prune side of the durable queue store.
type TransactionHistory interface {
	GetStats(ctx context.Context) (txqueue.Stats, error)
	GetByUser(ctx context.Context, user common.Address, limit int) ([]txqueue.Entry, error)
	CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

type historyAction func(ctx context.Context, c *cli.Command, history TransactionHistory) error

func withHistory(build func(ctx context.Context) (TransactionHistory, error), action historyAction) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		history, err := build(ctx)
		if errors.Is(err, ErrHistoryUnavailable) {
			return err
		}
		if err != nil {
			return fmt.Errorf("open transaction store: %w", err)
		}

		return action(ctx, c, history)
	}
}

// queueCommand groups the commands that read the persisted queue.
//
// Usage example:
//
//	bridgerelay queue history --user 0xf39F... --limit 10
func queueCommand(build func(ctx context.Context) (TransactionHistory, error)) *cli.Command {
	return &cli.Command{
		Name:        "queue",
		Description: "Inspect the persisted relay queue. Requires a configured database.",
		Usage:       "Show queue statistics, per-user history and prune completed entries.",
		Commands: []*cli.Command{
			queueStatsCommand(build),
			queueHistoryCommand(build),
			queuePruneCommand(build),
		},
	}
}

func queueStatsCommand(build func(ctx context.Context) (TransactionHistory, error)) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Prints entry counts per status. Exhausted entries need manual intervention.",
		Action: withHistory(build, func(ctx context.Context, c *cli.Command, history TransactionHistory) error {
			stats, err := history.GetStats(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(out(c), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "total\t%d\n", stats.Total)
			fmt.Fprintf(w, "pending\t%d\n", stats.Pending)
			fmt.Fprintf(w, "processing\t%d\n", stats.Processing)
			fmt.Fprintf(w, "completed\t%d\n", stats.Completed)
			fmt.Fprintf(w, "failed\t%d\n", stats.Failed)
			fmt.Fprintf(w, "exhausted\t%d\n", stats.Exhausted)
			return w.Flush()
		}),
	}
}

func queueHistoryCommand(build func(ctx context.Context) (TransactionHistory, error)) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Lists the newest transfers of a user across all chains.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "User address that locked the funds",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries to list",
				Value: 20,
			},
		},
		Action: withHistory(build, func(ctx context.Context, c *cli.Command, history TransactionHistory) error {
			user := c.String("user")
			if !common.IsHexAddress(user) {
				return fmt.Errorf("invalid user address %q", user)
			}

			entries, err := history.GetByUser(ctx, common.HexToAddress(user), int(c.Int("limit")))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(out(c), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tROUTE\tAMOUNT\tATTEMPTS\tUPDATED\tERROR")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d->%d\t%s\t%d/%d\t%s\t%s\n",
					entry.ID,
					entry.Status,
					entry.Tx.SourceChainID,
					entry.Tx.TargetChainID,
					entry.Tx.Amount,
					entry.RetryCount,
					entry.MaxRetries,
					entry.UpdatedAt.UTC().Format(time.RFC3339),
					entry.LastError,
				)
			}
			return w.Flush()
		}),
	}
}

func queuePruneCommand(build func(ctx context.Context) (TransactionHistory, error)) *cli.Command {
	return &cli.Command{
		Name:  "prune",
		Usage: "Deletes completed entries last updated before the given age.",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "older-than",
				Usage: "Minimum age of the completed entries to delete",
				Value: 24 * time.Hour,
			},
		},
		Action: withHistory(build, func(ctx context.Context, c *cli.Command, history TransactionHistory) error {
			removed, err := history.CleanupOlderThan(ctx, c.Duration("older-than"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out(c), "removed %d entries\n", removed)
			return err
		}),
	}
}
