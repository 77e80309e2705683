// Package observability provides OpenTelemetry metrics for itkit adapters.
//
// Metrics count producer pulls, cross-slot fallbacks and conditional-consume
// restores so that lookahead behaviour can be inspected in production.
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("ingest"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("itkit"))
//	p := peekable.New(src, peekable.WithMetrics(metrics))
package observability
