package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricBuilds        = "leafgen.builds"
	metricSymbols       = "leafgen.symbols"
	metricBuildDuration = "leafgen.build.duration"

	attrOutcome = "outcome"
	attrClass   = "class"
)

// Build outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeMismatch = "mismatch"
	OutcomeError    = "error"
)

// durationBucketBoundaries covers sub-millisecond in-memory builds up to
// slow loads from large git histories.
var durationBucketBoundaries = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// BuildMetrics holds the instruments recorded for each table build.
type BuildMetrics struct {
	builds   metric.Int64Counter
	symbols  metric.Int64Counter
	duration metric.Float64Histogram
}

// NewBuildMetrics creates the build instruments from the given meter.
func NewBuildMetrics(mt metric.Meter) (*BuildMetrics, error) {
	builds, err := mt.Int64Counter(metricBuilds,
		metric.WithDescription("Table builds by outcome"),
		metric.WithUnit("{build}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricBuilds, err)
	}

	symbols, err := mt.Int64Counter(metricSymbols,
		metric.WithDescription("Classified table slots by class"),
		metric.WithUnit("{symbol}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSymbols, err)
	}

	duration, err := mt.Float64Histogram(metricBuildDuration,
		metric.WithDescription("Time spent loading inputs and building the table"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricBuildDuration, err)
	}

	return &BuildMetrics{
		builds:   builds,
		symbols:  symbols,
		duration: duration,
	}, nil
}

// RecordBuild records one finished build.
func (bm *BuildMetrics) RecordBuild(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String(attrOutcome, outcome))

	bm.builds.Add(ctx, 1, attrs)
	bm.duration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordSymbols records the per-class slot counts of a successful build.
func (bm *BuildMetrics) RecordSymbols(ctx context.Context, leaf, structural int) {
	bm.symbols.Add(ctx, int64(leaf), metric.WithAttributes(attribute.String(attrClass, "leaf")))
	bm.symbols.Add(ctx, int64(structural), metric.WithAttributes(attribute.String(attrClass, "structural")))
}
