package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gabapcia/bridgerelay/internal/keystore"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli/v3"
)

type keysAction func(ctx context.Context, c *cli.Command, store keystore.Store) error

// withKeys builds the key store only once the command actually runs.
func withKeys(build func(ctx context.Context) (keystore.Store, error), action keysAction) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		store, err := build(ctx)
		if err != nil {
			return fmt.Errorf("open secret store: %w", err)
		}

		return action(ctx, c, store)
	}
}

func out(c *cli.Command) io.Writer {
	return c.Root().Writer
}

func idFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "id",
		Usage:    usage,
		Required: true,
	}
}

// keysCommand groups the signing key management commands.
//
// Usage example:
//
//	bridgerelay keys store --id relayer --key 0xac09...
//	bridgerelay keys rotate --id relayer
func keysCommand(build func(ctx context.Context) (keystore.Store, error)) *cli.Command {
	return &cli.Command{
		Name:        "keys",
		Description: "Manage the relayer signing keys held in the configured secret store.",
		Usage:       "Store, inspect, rotate and prune signing keys.",
		Commands: []*cli.Command{
			storeKeyCommand(build),
			generateKeyCommand(build),
			listKeysCommand(build),
			keyExistsCommand(build),
			deleteKeyCommand(build),
			rotateKeyCommand(build),
			keyHistoryCommand(build),
			pruneKeysCommand(build),
		},
	}
}

func storeKeyCommand(build func(ctx context.Context) (keystore.Store, error)) *cli.Command {
	return &cli.Command{
		Name:  "store",
		Usage: "Stores a hex-encoded private key under an id, replacing any existing key.",
		Flags: []cli.Flag{
			idFlag("Key id to store the key under"),
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Hex-encoded secp256k1 private key, with or without 0x",
				Required: true,
			},
		},
		Action: withKeys(build, func(ctx context.Context, c *cli.Command, store keystore.Store) error {
			id := c.String("id")
			if err := keystore.ValidateKeyID(id); err != nil {
				return err
			}

			key, err := keystore.ParsePrivateKey(c.String("key"))
			if err != nil {
				return err
			}

			if err := store.StoreKey(ctx, id, keystore.EncodePrivateKey(key)); err != nil {
				return err
			}

			_, err = fmt.Fprintf(out(c), "stored %s (%s)\n", id, crypto.PubkeyToAddress(key.PublicKey).Hex())
			return err
		}),
	}
}

func generateKeyCommand(build func(ctx context.Context) (keystore.Store, error)) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generates a new private key and stores it under an id. Fails if the id is taken.",
		Flags: []cli.Flag{
			idFlag("Key id to store the generated key under"),
		},
		Action: withKeys(build, func(ctx context.Context, c *cli.Command, store keystore.Store) error {
			id := c.String("id")
			if err := keystore.ValidateKeyID(id); err != nil {
				return err
			}

			exists, err := store.KeyExists(ctx, id)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("key %s already exists, use rotate to replace it", id)
			}

			key, err := crypto.GenerateKey()
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}

			if err := store.StoreKey(ctx, id, keystore.EncodePrivateKey(key)); err != nil {
				return err
			}

			_, err = fmt.Fprintf(out(c), "generated %s (%s)\n", id, crypto.PubkeyToAddress(key.PublicKey).Hex())
			return err
		}),
	}
}

func listKeysCommand(build func(ctx context.Context) (keystore.Store, error)) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Lists every key id in the secret store.",
		Action: withKeys(build, func(ctx context.Context, c *cli.Command, store keystore.Store) error {
			ids, err := store.ListKeys(ctx)
			if err != nil {
				return err
			}

			for _, id := range ids {
				if _, err := fmt.Fprintln(out(c), id); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func keyExistsCommand(build func(ctx context.Context) (keystore.Store, error)) *cli.Command {
	return &cli.Command{
		Name:  "exists",
		Usage: "Reports whether a key id is present.",
		Flags: []cli.Flag{
			idFlag("Key id to look up"),
		},
		Action: withKeys(build, func(ctx context.Context, c *cli.Command, store keystore.Store) error {
			exists, err := store.KeyExists(ctx, c.String("id"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out(c), exists)
			return err
		}),
	}
}

func deleteKeyCommand(build func(ctx context.Context) (keystore.Store, error)) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Deletes a key id. Deleting a missing key succeeds.",
		Flags: []cli.Flag{
			idFlag("Key id to delete"),
		},
		Action: withKeys(build, func(ctx context.Context, c *cli.Command, store keystore.Store) error {
			return store.DeleteKey(ctx, c.String("id"))
		}),
	}
}

func rotateKeyCommand(build func(ctx context.Context) (keystore.Store, error)) *cli.Command {
	return &cli.Command{
		Name:        "rotate",
		Description: "Replaces the key under an id with a new one. The bridge validator set must be updated with the new address.",
		Usage:       "Rotates the key under an id, keeping the new key as a timestamped version.",
		Flags: []cli.Flag{
			idFlag("Key id to rotate"),
		},
		Action: withKeys(build, func(ctx context.Context, c *cli.Command, store keystore.Store) error {
			rotation, err := keystore.NewRotator(store).Rotate(ctx, c.String("id"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out(c), "rotated %s: %s -> %s (version %s)\n",
				rotation.KeyID,
				rotation.OldAddress.Hex(),
				rotation.NewAddress.Hex(),
				rotation.VersionID,
			)
			return err
		}),
	}
}

func keyHistoryCommand(build func(ctx context.Context) (keystore.Store, error)) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Lists the rotated versions of a key id, oldest first.",
		Flags: []cli.Flag{
			idFlag("Key id whose versions to list"),
		},
		Action: withKeys(build, func(ctx context.Context, c *cli.Command, store keystore.Store) error {
			versions, err := keystore.NewRotator(store).History(ctx, c.String("id"))
			if err != nil {
				return err
			}

			for _, version := range versions {
				if _, err := fmt.Fprintln(out(c), version); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func pruneKeysCommand(build func(ctx context.Context) (keystore.Store, error)) *cli.Command {
	return &cli.Command{
		Name:  "prune",
		Usage: "Deletes all but the newest rotated versions of a key id.",
		Flags: []cli.Flag{
			idFlag("Key id whose versions to prune"),
			&cli.IntFlag{
				Name:  "keep",
				Usage: "Number of versions to keep",
				Value: keystore.DefaultKeep,
			},
		},
		Action: withKeys(build, func(ctx context.Context, c *cli.Command, store keystore.Store) error {
			pruned, err := keystore.NewRotator(store).Prune(ctx, c.String("id"), int(c.Int("keep")))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out(c), "pruned %d versions\n", len(pruned))
			return err
		}),
	}
}
