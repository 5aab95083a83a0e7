package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	analysisCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_created_total",
		Help: "Total analyses created.",
	})
	analysisFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_failed_total",
		Help: "Total analysis creations that failed to persist.",
	})
	togglesAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confidence_toggles_total",
		Help: "Total skill confidence toggles applied.",
	})
	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Time spent running the analysis pipeline.",
		Buckets: prometheus.DefBuckets,
	})
)

// IncAnalysisCreated increments the created counter.
func IncAnalysisCreated() {
	analysisCreatedTotal.Inc()
}

// IncAnalysisFailed increments the failed counter.
func IncAnalysisFailed() {
	analysisFailedTotal.Inc()
}

// IncToggleApplied increments the toggle counter.
func IncToggleApplied() {
	togglesAppliedTotal.Inc()
}

// ObserveAnalysisDuration records one pipeline run duration.
func ObserveAnalysisDuration(d time.Duration) {
	analysisDuration.Observe(d.Seconds())
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
