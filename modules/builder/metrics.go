package builder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render sources used as metric labels and log attributes.
const (
	SourceForm = "form"
	SourceAPI  = "api"
)

// Metrics tracks rendered documents.
type Metrics struct {
	renders  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration prometheus.Histogram
	size     prometheus.Histogram
}

// NewMetrics registers the builder collectors with reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mailforge",
			Subsystem: "builder",
			Name:      "renders_total",
			Help:      "Rendered email documents",
		}, []string{"source"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mailforge",
			Subsystem: "builder",
			Name:      "render_errors_total",
			Help:      "Requests that did not produce a document",
		}, []string{"source"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mailforge",
			Subsystem: "builder",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering and storing a document",
			Buckets:   prometheus.DefBuckets,
		}),
		size: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mailforge",
			Subsystem: "builder",
			Name:      "document_bytes",
			Help:      "Size of rendered documents",
			Buckets:   prometheus.ExponentialBuckets(4<<10, 2, 10),
		}),
	}
}

func (m *Metrics) rendered(source string, took time.Duration, bytes int) {
	m.renders.WithLabelValues(source).Inc()
	m.duration.Observe(took.Seconds())
	m.size.Observe(float64(bytes))
}

func (m *Metrics) failed(source string) {
	m.failures.WithLabelValues(source).Inc()
}
