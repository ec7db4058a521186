// Package metrics holds the Prometheus collectors for scorecard evaluation
// and the HTTP service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dotcommander/fitcheck/internal/types"
)

// Metrics is a set of collectors bound to one registry.
type Metrics struct {
	registry *prometheus.Registry

	ScorecardsEvaluated *prometheus.CounterVec
	FitCategories       *prometheus.CounterVec
	MissingMeasurements *prometheus.CounterVec
	EvaluationDuration  *prometheus.HistogramVec

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers every collector, plus the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ScorecardsEvaluated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fitcheck_scorecards_evaluated_total",
				Help: "Total number of scorecards evaluated",
			},
			[]string{"garment_type"},
		),

		FitCategories: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fitcheck_fit_categories_total",
				Help: "Fit categories assigned, by measurement",
			},
			[]string{"measurement", "category"},
		),

		MissingMeasurements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fitcheck_missing_measurements_total",
				Help: "Measurements that could not be scored",
			},
			[]string{"measurement"},
		),

		EvaluationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fitcheck_evaluation_duration_seconds",
				Help:    "Duration of scorecard evaluation in seconds",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
			},
			[]string{"operation"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fitcheck_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fitcheck_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Registry returns the registry the collectors are bound to.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveScorecards records the outcome of one evaluation call.
func (m *Metrics) ObserveScorecards(operation string, elapsed time.Duration, results ...types.ScorecardResult) {
	m.EvaluationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	for _, r := range results {
		m.ScorecardsEvaluated.WithLabelValues(r.GarmentType).Inc()
		for _, row := range r.Measurements {
			m.FitCategories.WithLabelValues(row.MeasurementName, row.FitCategory.Category).Inc()
		}
		for _, mm := range r.MissingMeasurements {
			m.MissingMeasurements.WithLabelValues(mm.Name).Inc()
		}
	}
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
