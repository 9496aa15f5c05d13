package queueproc

import (
	"errors"
	"time"
)

var (
	// ErrNoSigner fails an attempt whose source chain has no signer.
	ErrNoSigner = errors.New("no signer for chain")

	// ErrNoSubmitter fails an attempt whose target chain has no submitter.
	ErrNoSubmitter = errors.New("no submitter for chain")
)

type config struct {
	retryDelay         time.Duration
	processingInterval time.Duration
	cleanupInterval    time.Duration
	retention          time.Duration
	submissionTimeout  time.Duration
	workers            int
	pruner             Pruner
}

func defaultConfig() config {
	return config{
		retryDelay:         5 * time.Second,
		processingInterval: 2 * time.Second,
		cleanupInterval:    time.Hour,
		retention:          time.Hour,
		submissionTimeout:  2 * time.Minute,
		workers:            1,
	}
}

type Option func(*config)

// WithRetryDelay sets the backoff base of failed attempts. Default: 5s.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		c.retryDelay = d
	}
}

// WithProcessingInterval sets the processing tick. Default: 2s.
func WithProcessingInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.processingInterval = d
		}
	}
}

// WithCleanupInterval sets the cleanup tick. Default: 1h.
func WithCleanupInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.cleanupInterval = d
		}
	}
}

// WithRetention sets how long completed entries are kept. Default: 1h.
func WithRetention(d time.Duration) Option {
	return func(c *config) {
		c.retention = d
	}
}

// WithSubmissionTimeout bounds a single attempt, signing included. Default: 2m.
func WithSubmissionTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.submissionTimeout = d
		}
	}
}

// WithWorkers sets how many attempts may run at once. Default: 1.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithPruner also sweeps completed entries from durable storage on every
// cleanup tick.
func WithPruner(p Pruner) Option {
	return func(c *config) {
		c.pruner = p
	}
}
