package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/winnowlabs/winnow/errors"
	"github.com/winnowlabs/winnow/logger"
	"github.com/winnowlabs/winnow/observability"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

var (
	metricsOnce sync.Once
	metrics     *observability.Metrics
)

// runMetrics resolves the shared run/analyze instruments against whatever
// meter provider is globally registered. Without SDK bootstrap
// (observability.InitMeter) they resolve to no-op instruments.
func runMetrics() *observability.Metrics {
	metricsOnce.Do(func() {
		m, err := observability.NewMetrics(observability.Meter("github.com/winnowlabs/winnow/pipeline"))
		if err != nil {
			logger.WithComponent("pipeline").WithError(err).Warn("pipeline metrics unavailable")
			return
		}
		metrics = m
	})
	return metrics
}

// recordFailure closes out a failed run: the failing step, the error code,
// and the run itself.
func (p *Pipeline) recordFailure(ctx context.Context, m *observability.Metrics, kind string, err error, start time.Time) {
	if m == nil {
		return
	}
	m.RecordAnalyze(ctx, p.name, kind, statusError)
	m.RecordError(ctx, string(errors.CodeOf(err)), "pipeline")
	m.RecordRunEnd(ctx, p.name, statusError, time.Since(start))
}
