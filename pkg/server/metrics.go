package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates Prometheus collectors for the server.
type Metrics struct {
	SessionsActive prometheus.Gauge
	SessionsTotal  prometheus.Counter
	OpsSent        prometheus.Counter
	FramesSent     prometheus.Counter
	EventsReceived prometheus.Counter
	EventsDropped  prometheus.Counter
	EventDuration  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "loom",
			Subsystem: "server",
			Name:      "sessions_active",
			Help:      "Number of currently connected sessions.",
		}),
		SessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "server",
			Name:      "sessions_total",
			Help:      "Total number of sessions ever created.",
		}),
		OpsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "server",
			Name:      "ops_sent_total",
			Help:      "Total host-tree mutations streamed to clients.",
		}),
		FramesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "server",
			Name:      "frames_sent_total",
			Help:      "Total protocol frames written to clients.",
		}),
		EventsReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "server",
			Name:      "events_received_total",
			Help:      "Total user events received from clients.",
		}),
		EventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "server",
			Name:      "events_dropped_total",
			Help:      "Events dropped because a session queue was full.",
		}),
		EventDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "loom",
			Subsystem: "server",
			Name:      "event_duration_seconds",
			Help:      "Time spent handling one user event, including re-render.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
