package txqueue

import "time"

type config struct {
	now          func() time.Time
	repo         Repository
	writeTimeout time.Duration
}

// Option configures a queue created by New.
type Option func(*config)

// WithRepository persists queue snapshots to repo. Without it the queue is
// memory only.
func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithClock overrides the time source used for timestamps and backoff.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithWriteTimeout bounds each repository write. Default: 5s.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) {
		c.writeTimeout = d
	}
}
