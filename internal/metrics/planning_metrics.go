package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("planning-metrics")

// PlanningMetrics provides metrics collection for solution generation and
// the solution feed.
type PlanningMetrics struct {
	solutionsGeneratedCounter   metric.Int64Counter
	generationDurationHistogram metric.Float64Histogram
	estimatesPreviewedCounter   metric.Int64Counter
	feedSubscribersGauge        metric.Int64UpDownCounter
}

// NewPlanningMetrics creates a new planning metrics collector
func NewPlanningMetrics() (*PlanningMetrics, error) {
	solutionsGeneratedCounter, err := meter.Int64Counter(
		"space_planner.solutions.generated",
		metric.WithDescription("Total number of layout solutions generated"),
		metric.WithUnit("{solution}"),
	)
	if err != nil {
		return nil, err
	}

	generationDurationHistogram, err := meter.Float64Histogram(
		"space_planner.solution.generation_duration",
		metric.WithDescription("Duration of solution generation in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	estimatesPreviewedCounter, err := meter.Int64Counter(
		"space_planner.estimates.previewed",
		metric.WithDescription("Total number of stateless estimate previews served"),
		metric.WithUnit("{estimate}"),
	)
	if err != nil {
		return nil, err
	}

	feedSubscribersGauge, err := meter.Int64UpDownCounter(
		"space_planner.feed.subscribers",
		metric.WithDescription("Number of currently connected solution feed subscribers"),
		metric.WithUnit("{subscriber}"),
	)
	if err != nil {
		return nil, err
	}

	return &PlanningMetrics{
		solutionsGeneratedCounter:   solutionsGeneratedCounter,
		generationDurationHistogram: generationDurationHistogram,
		estimatesPreviewedCounter:   estimatesPreviewedCounter,
		feedSubscribersGauge:        feedSubscribersGauge,
	}, nil
}

// RecordSolutionGenerated records one generated solution with its outcome
func (pm *PlanningMetrics) RecordSolutionGenerated(ctx context.Context, feasible bool, score int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.Bool("solution.feasible", feasible),
		attribute.Int("solution.score", score),
	)
	pm.solutionsGeneratedCounter.Add(ctx, 1, attrs)
	pm.generationDurationHistogram.Record(ctx, duration.Seconds(), attrs)
}

// RecordEstimatePreviewed records one stateless estimate preview
func (pm *PlanningMetrics) RecordEstimatePreviewed(ctx context.Context, areaKnown bool) {
	pm.estimatesPreviewedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.Bool("estimate.area_known", areaKnown),
		),
	)
}

// FeedSubscriberConnected records a new feed subscriber
func (pm *PlanningMetrics) FeedSubscriberConnected(ctx context.Context) {
	pm.feedSubscribersGauge.Add(ctx, 1)
}

// FeedSubscriberDisconnected records a departed feed subscriber
func (pm *PlanningMetrics) FeedSubscriberDisconnected(ctx context.Context) {
	pm.feedSubscribersGauge.Add(ctx, -1)
}
