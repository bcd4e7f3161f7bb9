// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package location

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry wraps a Provider with bounded exponential backoff. The signing
// pipeline itself never retries; this wrapper is the one place where a
// transient lookup failure may be retried, and only up to maxAttempts total
// attempts.
type Retry struct {
	Provider    Provider
	MaxAttempts uint64
}

// WithRetry wraps p so that a failed lookup is retried with exponential
// backoff, at most maxAttempts attempts in total. maxAttempts of 0 or 1
// disables retrying.
func WithRetry(p Provider, maxAttempts uint64) Provider {
	if maxAttempts <= 1 {
		return p
	}

	return &Retry{Provider: p, MaxAttempts: maxAttempts}
}

// CurrentLocation implements Provider.
func (r *Retry) CurrentLocation(ctx context.Context) (Coordinate, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxInterval = 2 * time.Second

	var wrapped backoff.BackOff = backoff.WithMaxRetries(policy, r.MaxAttempts-1)
	wrapped = backoff.WithContext(wrapped, ctx)

	return backoff.RetryWithData(func() (Coordinate, error) {
		return r.Provider.CurrentLocation(ctx)
	}, wrapped)
}
