package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of job processing in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AdSetsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adsynth_ad_sets_generated_total",
			Help: "Ad sets generated, by market and cache outcome",
		},
		[]string{"market", "source"},
	)

	HooksEnhanced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adsynth_hooks_enhanced_total",
			Help: "Hooks that scored below the enhancement threshold",
		},
		[]string{"market"},
	)

	BrandSafetyViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adsynth_brand_safety_violations_total",
			Help: "Brand-safety violations found, by brand kit",
		},
		[]string{"kit_id"},
	)
)

// ObserveJob records the outcome of one job. An empty errorCode means success.
func ObserveJob(taskType string, started time.Time, errorCode string) {
	WorkerJobDuration.WithLabelValues(taskType).Observe(time.Since(started).Seconds())
	if errorCode == "" {
		WorkerJobsCompleted.WithLabelValues(taskType).Inc()
		return
	}
	WorkerJobsFailed.WithLabelValues(taskType, errorCode).Inc()
}

// TrackActive bumps the active-jobs gauge and returns the matching decrement.
func TrackActive(taskType string) func() {
	g := WorkerJobsActive.WithLabelValues(taskType)
	g.Inc()
	return g.Dec
}
