// Package asyncx holds the retry helpers used around calls to external
// services. Every helper honours context cancellation between attempts.
//
//	err := asyncx.RetryWithBackoff(ctx, asyncx.Policy{Attempts: 3, Delay: 100 * time.Millisecond},
//	    func(ctx context.Context) error {
//	        return provider.SendEmail(ctx, msg)
//	    })
package asyncx
