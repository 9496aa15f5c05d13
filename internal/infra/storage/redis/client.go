// Package redis stores chain watermarks in Redis.
package redis

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// conn is the subset of *redis.Client the store uses.
type conn interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Close() error
}

type client struct {
	conn conn
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to addr and pings it before returning.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(err, conn.Close())
	}

	return &client{
		conn: conn,
	}, nil
}
