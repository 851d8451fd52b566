package httpauth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus instrumentation for a Transport.
type metrics struct {
	// lookups counts credential lookups by result: exact, default,
	// miss, or skipped (no host / Authorization already set).
	lookups *prometheus.CounterVec

	// authenticated counts requests that left with injected credentials.
	authenticated prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "netrc",
			Name:      "lookups_total",
			Help:      "Credential lookups by match result.",
		}, []string{"result"}),
		authenticated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "netrc",
			Name:      "authenticated_requests_total",
			Help:      "Outgoing requests sent with netrc credentials attached.",
		}),
	}
}
