package asyncx

import (
	"context"
	"time"
)

// Policy controls RetryWithBackoff.
type Policy struct {
	// Attempts is the total number of calls, values below 1 mean one call
	Attempts int
	// Delay before the second attempt, doubled after each further failure
	Delay time.Duration
	// Retryable decides whether an error is worth another attempt. Nil retries everything.
	Retryable func(error) bool
}

// Retry calls fn up to attempts times without waiting between calls.
func Retry(ctx context.Context, attempts int, fn func(context.Context) error) error {
	return RetryWithBackoff(ctx, Policy{Attempts: attempts}, fn)
}

// RetryWithBackoff calls fn until it succeeds, the policy gives up or ctx is done.
// The last error from fn is returned.
func RetryWithBackoff(ctx context.Context, p Policy, fn func(context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.Delay

	var err error
	for i := 0; i < attempts; i++ {
		if cerr := ctx.Err(); cerr != nil {
			if err != nil {
				return err
			}
			return cerr
		}

		if err = fn(ctx); err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}

		if i < attempts-1 && delay > 0 {
			select {
			case <-ctx.Done():
				return err
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return err
}
