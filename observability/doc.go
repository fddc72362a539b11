// Package observability provides OpenTelemetry metrics integration for
// pipeline and analysis instrumentation.
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("winnow"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("winnow"))
//	metrics.RecordRunEnd(ctx, "daily-report", "ok", duration)
package observability
