// Package retry is an opt-in exponential backoff helper for fallible remote
// calls. Nothing retries implicitly; callers wrap the calls they want.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

const (
	DefaultRetries   = 3
	DefaultBaseDelay = 300 * time.Millisecond
)

type config struct {
	retries   uint64
	baseDelay time.Duration
	maxDelay  time.Duration
}

type Option func(*config)

// WithRetries sets how many times op is retried after the first failure
func WithRetries(n uint64) Option {
	return func(cfg *config) {
		cfg.retries = n
	}
}

// WithBaseDelay sets the wait before the first retry; it doubles afterwards
func WithBaseDelay(d time.Duration) Option {
	return func(cfg *config) {
		cfg.baseDelay = d
	}
}

func WithMaxDelay(d time.Duration) Option {
	return func(cfg *config) {
		cfg.maxDelay = d
	}
}

// Do runs op until it succeeds, the retries are exhausted or ctx is done.
// The last error of op is returned.
func Do(ctx context.Context, op func(ctx context.Context) error, options ...Option) error {
	cfg := &config{
		retries:   DefaultRetries,
		baseDelay: DefaultBaseDelay,
		maxDelay:  time.Minute,
	}
	for _, opt := range options {
		opt(cfg)
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = cfg.baseDelay
	expo.Multiplier = 2
	expo.RandomizationFactor = 0
	expo.MaxInterval = cfg.maxDelay
	expo.MaxElapsedTime = 0
	expo.Reset()

	b := backoff.WithContext(backoff.WithMaxRetries(expo, cfg.retries), ctx)

	var lastErr error
	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		lastErr = op(ctx)
		return lastErr
	}, b, func(err error, wait time.Duration) {
		logging.From(ctx).Warn("retrying after failure",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	})
	if err == nil {
		return nil
	}

	if lastErr == nil {
		lastErr = err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return goerr.Wrap(ctxErr, "retry canceled", goerr.V("attempt", attempt), goerr.V("lastError", lastErr))
	}
	return lastErr
}
