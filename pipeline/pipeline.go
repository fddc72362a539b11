package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/winnowlabs/winnow/analysis"
	"github.com/winnowlabs/winnow/errors"
	"github.com/winnowlabs/winnow/logger"
)

// Pipeline is a named, ordered list of analyzers. Running it threads a
// container through generic dispatch, each step's output becoming the next
// step's input. The pipeline never needs to know which concrete container
// state it is holding.
type Pipeline struct {
	name  string
	steps []analysis.Analyzer
}

// New creates a pipeline with the given analyzers, applied in order.
func New(name string, analyzers ...analysis.Analyzer) *Pipeline {
	return &Pipeline{
		name:  name,
		steps: analyzers,
	}
}

// Add appends analyzers to the pipeline and returns the receiver.
func (p *Pipeline) Add(analyzers ...analysis.Analyzer) *Pipeline {
	p.steps = append(p.steps, analyzers...)
	return p
}

// Name returns the pipeline's identifier.
func (p *Pipeline) Name() string { return p.name }

// Len returns the number of steps.
func (p *Pipeline) Len() int { return len(p.steps) }

// Run applies every analyzer in order to the container and returns the
// final result. Each run gets a fresh run ID for log correlation. A step
// whose input no longer accepts analysis fails with TERMINAL_CONTAINER;
// any step error aborts the run.
func (p *Pipeline) Run(c analysis.Container) (analysis.Container, error) {
	runID := uuid.NewString()
	log := logger.WithComponent("pipeline").WithFields(logger.Fields(
		logger.FieldPipeline, p.name,
		logger.FieldRunID, runID,
	))
	log.Debug("starting run", logger.Fields("steps", len(p.steps)))

	ctx := context.Background()
	m := runMetrics()
	if m != nil {
		m.RecordRunStart(ctx)
	}

	start := time.Now()
	cur := c
	for i, a := range p.steps {
		kind := string(a.Kind())
		analyzable, ok := cur.(analysis.Analyzable)
		if !ok {
			err := errors.TerminalContainer(kind).WithDetail("step", i)
			p.recordFailure(ctx, m, kind, err, start)
			log.WithError(err).Error("step received a terminal container",
				logger.Fields(logger.FieldStep, i, logger.FieldOperation, kind))
			return nil, err
		}
		out, err := analyzable.Analyze(a)
		if err != nil {
			p.recordFailure(ctx, m, kind, err, start)
			log.WithError(err).Error("step failed",
				logger.Fields(logger.FieldStep, i, logger.FieldOperation, kind))
			return nil, err
		}
		if m != nil {
			m.RecordAnalyze(ctx, p.name, kind, statusOK)
		}
		log.Debug("step completed",
			logger.Fields(logger.FieldStep, i, logger.FieldOperation, kind))
		cur = out
	}

	if m != nil {
		m.RecordRunEnd(ctx, p.name, statusOK, time.Since(start))
	}
	log.Info("run completed", logger.DurationFields("run", time.Since(start)))
	return cur, nil
}
