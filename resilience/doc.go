// Package resilience retries transient failures of fallible producers.
//
//	cfg := resilience.DefaultRetryConfig()
//	cfg.MaxAttempts = 5
//	it := source.FromFallible(ctx, "listing", pages, source.WithRetry(cfg))
package resilience
