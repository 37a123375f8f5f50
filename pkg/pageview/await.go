package pageview

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	// DefaultPollInterval matches how often browsers are polled for the
	// load event end timestamp.
	DefaultPollInterval = 25 * time.Millisecond

	// DefaultMaxAttempts bounds polling to about ten seconds.
	DefaultMaxAttempts = 400
)

// ReadyFunc reports whether the data a page view needs is available.
type ReadyFunc func(ctx context.Context) bool

// AwaitOption configures Await.
type AwaitOption func(*awaitConfig)

type awaitConfig struct {
	interval    time.Duration
	maxAttempts uint64
}

// WithPollInterval sets the delay between polls. Non-positive values are ignored.
func WithPollInterval(d time.Duration) AwaitOption {
	return func(c *awaitConfig) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithMaxAttempts sets how many times ready is called before giving up.
func WithMaxAttempts(n int) AwaitOption {
	return func(c *awaitConfig) {
		if n > 0 {
			c.maxAttempts = uint64(n)
		}
	}
}

// Await polls ready until it returns true. It returns the number of polls
// made and ErrNotReady when the attempts run out, or the context error when
// ctx is done first.
func Await(ctx context.Context, ready ReadyFunc, opts ...AwaitOption) (int, error) {
	cfg := awaitConfig{interval: DefaultPollInterval, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}

	attempts := 0
	backoff := retry.WithMaxRetries(cfg.maxAttempts-1, retry.NewConstant(cfg.interval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		if ready(ctx) {
			return nil
		}
		return retry.RetryableError(ErrNotReady)
	})

	return attempts, err
}
