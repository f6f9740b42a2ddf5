package store

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/common"
)

const (
	defaultMaxRetries   = 3
	defaultInitialDelay = 200 * time.Millisecond
	defaultMaxDelay     = 2 * time.Second
)

type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// Retrying retries transient store failures with exponential backoff. It
// never outlives the caller's context.
type Retrying struct {
	next   Store
	config RetryConfig
}

func NewRetrying(next Store, config RetryConfig) *Retrying {
	if config.MaxRetries <= 0 {
		config.MaxRetries = defaultMaxRetries
	}
	if config.InitialDelay <= 0 {
		config.InitialDelay = defaultInitialDelay
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = defaultMaxDelay
	}
	return &Retrying{next: next, config: config}
}

func (r *Retrying) Anchor(ctx context.Context, data []byte) (string, error) {
	return retry(ctx, r, "anchor", func() (string, error) {
		return r.next.Anchor(ctx, data)
	})
}

func (r *Retrying) Resolve(ctx context.Context, contentID string) ([]byte, error) {
	return retry(ctx, r, "resolve", func() ([]byte, error) {
		return r.next.Resolve(ctx, contentID)
	})
}

func retry[T any](ctx context.Context, r *Retrying, op string, fn func() (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.config.InitialDelay
	b.MaxInterval = r.config.MaxDelay

	operation := func() (T, error) {
		v, err := fn()
		if err != nil && !errors.Is(err, common.ErrStoreUnavailable) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	v, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(r.config.MaxRetries+1)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.WithError(err).WithField("retry_in", next).Warn("[STORE] Retrying ", op)
		}),
	)
	if err != nil && ctx.Err() != nil && !errors.Is(err, common.ErrStoreUnavailable) && !errors.Is(err, common.ErrNotFound) {
		return v, unavailable(op, err)
	}
	return v, err
}
