// Package http builds retrying HTTP clients on top of HashiCorp's
// retryablehttp. The same client type backs the EVM JSON-RPC connections
// through StandardClient, and its logger backs the Vault client.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/bridgerelay/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	component    string
}

// Option configures NewClient.
type Option func(*config)

// NewClient returns a retryablehttp.Client configured with opts.
//
// Defaults: 5s per-request timeout, 1s to 5s backoff, 2 retries, no request
// logging.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	if cfg.component != "" {
		client.Logger = Logger(cfg.component)
	}

	return client
}

// NewStandardClient is NewClient exposed as a plain *http.Client, for APIs
// such as go-ethereum's rpc package that accept only the standard type.
func NewStandardClient(opts ...Option) *http.Client {
	return NewClient(opts...).StandardClient()
}

// WithTimeout sets the maximum duration of a single request attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithLogging routes retryablehttp's request and retry logs to the global
// logger, tagged with component.
func WithLogging(component string) Option {
	return func(c *config) {
		c.component = component
	}
}

// Logger returns a retryablehttp.LeveledLogger writing to the global logger,
// for clients that build their own retryablehttp.Client such as Vault's.
func Logger(component string) retryablehttp.LeveledLogger {
	return leveledLogger{component: component}
}

// leveledLogger adapts the logger package to retryablehttp.LeveledLogger.
// retryablehttp does not pass a context, so trace fields are unavailable.
type leveledLogger struct {
	component string
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) kv(keysAndValues []any) []any {
	return append([]any{"http.component", l.component}, keysAndValues...)
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Error(context.Background(), msg, l.kv(keysAndValues)...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, l.kv(keysAndValues)...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, l.kv(keysAndValues)...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(context.Background(), msg, l.kv(keysAndValues)...)
}
