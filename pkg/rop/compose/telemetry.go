package compose

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/flowless/pkg/rop/logger"
)

// Span and metric names.
const (
	SpanPipeline      = "flowless.pipeline"
	MetricInvocations = "flowless.pipeline.invocations"
	AttrSteps         = "flowless.steps"
	AttrMode          = "flowless.mode"
	AttrOutcome       = "flowless.outcome"
	AttrInvocationID  = "flowless.invocation_id"
)

const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
)

func newCounter(m metric.Meter) metric.Int64Counter {
	counter, err := m.Int64Counter(MetricInvocations,
		metric.WithDescription("Number of finished pipeline invocations."),
		metric.WithUnit("{invocation}"))
	if err != nil {
		logger.WithComponent("compose").WithError(err).Debug("invocation counter unavailable, metrics disabled",
			logger.Fields("metric", MetricInvocations))
		return nil
	}
	return counter
}

// startSpan opens the invocation span. The invocation id is only minted
// when something records it.
func (c *Composer) startSpan(steps int, debug bool) (context.Context, trace.Span, string) {
	ctx, span := c.tracer.Start(context.Background(), SpanPipeline)

	var id string
	if span.IsRecording() || debug {
		id = uuid.NewString()
	}
	if span.IsRecording() {
		span.SetAttributes(
			attribute.Int(AttrSteps, steps),
			attribute.String(AttrInvocationID, id),
		)
	}
	return ctx, span, id
}

func (c *Composer) endSpan(ctx context.Context, span trace.Span, mode string, err error) {
	outcome := outcomeSucceeded
	if err != nil {
		outcome = outcomeFailed
	}

	if c.invocations != nil {
		c.invocations.Add(ctx, 1, metric.WithAttributes(
			attribute.String(AttrMode, mode),
			attribute.String(AttrOutcome, outcome),
		))
	}

	if !span.IsRecording() {
		span.End()
		return
	}
	span.SetAttributes(attribute.String(AttrMode, mode))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
