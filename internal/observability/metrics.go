package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the engine.
type Metrics struct {
	RefreshCycles   *prometheus.CounterVec // labels: trigger={api,geolocation,schedule}, outcome={success,failure,discarded}
	RefreshDuration prometheus.Histogram

	SuggestionLookups prometheus.Counter
	FavoriteMutations *prometheus.CounterVec // labels: action={add,remove,reorder}

	AlertsPublished  *prometheus.CounterVec // labels: kind={info,warning,error}
	AlertsForwarded  prometheus.Counter
	HistoryAppendErr prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		RefreshCycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "abohawa",
			Name:      "refresh_cycles_total",
			Help:      "Weather refresh cycles by trigger and outcome.",
		}, []string{"trigger", "outcome"}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "abohawa",
			Name:      "refresh_duration_seconds",
			Help:      "Duration of a complete five-endpoint refresh cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SuggestionLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "abohawa",
			Name:      "suggestion_lookups_total",
			Help:      "Location suggestion requests served.",
		}),
		FavoriteMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "abohawa",
			Name:      "favorite_mutations_total",
			Help:      "Favorite set mutations by action.",
		}, []string{"action"}),
		AlertsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "abohawa",
			Name:      "alerts_published_total",
			Help:      "Alert events published on the bus by kind.",
		}, []string{"kind"}),
		AlertsForwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "abohawa",
			Name:      "alerts_forwarded_total",
			Help:      "Warning alerts forwarded to the notification queue.",
		}),
		HistoryAppendErr: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "abohawa",
			Name:      "history_append_errors_total",
			Help:      "Best-effort history appends that failed.",
		}),
	}
}

// NewMetrics creates the engine metrics and registers them with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RefreshCycles,
		m.RefreshDuration,
		m.SuggestionLookups,
		m.FavoriteMutations,
		m.AlertsPublished,
		m.AlertsForwarded,
		m.HistoryAppendErr,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so parallel tests never
// hit "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
