// Package pipeline chains analyzers into an ordered list and threads a
// container through them via generic dispatch.
//
// Each Run is tagged with a UUID run ID in the logs and counted through the
// globally registered OpenTelemetry meter. A pipeline that reaches a step
// with a terminal container fails with TERMINAL_CONTAINER.
//
//	p := pipeline.New("per-host-load",
//	    analysis.FieldAtMost("load", 5),
//	    analysis.GroupByField("host"),
//	    analysis.SumField("load"),
//	)
//	result, err := p.Run(analysis.NewSequence(records))
package pipeline
