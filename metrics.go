package docsite

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters exported by a running inspector.
// Labels are bounded: results and match outcomes only, never paths.
type Metrics struct {
	Loads          *prometheus.CounterVec
	SidebarLookups *prometheus.CounterVec
	Snapshots      prometheus.Counter
}

// NewMetrics registers the docsite counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Loads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "docsite_config_loads_total",
			Help: "Total number of site config loads, by result (ok, invalid, error).",
		}, []string{"result"}),
		SidebarLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "docsite_sidebar_lookups_total",
			Help: "Total number of sidebar resolutions, by outcome (matched, unmatched).",
		}, []string{"outcome"}),
		Snapshots: f.NewCounter(prometheus.CounterOpts{
			Name: "docsite_snapshots_recorded_total",
			Help: "Total number of new config snapshots written to the store.",
		}),
	}
}

func (m *Metrics) observeLoad(err error) {
	if m == nil {
		return
	}
	m.Loads.WithLabelValues(loadResult(err)).Inc()
}

func (m *Metrics) observeLookup(matched bool) {
	if m == nil {
		return
	}
	outcome := "unmatched"
	if matched {
		outcome = "matched"
	}
	m.SidebarLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeSnapshot() {
	if m == nil {
		return
	}
	m.Snapshots.Inc()
}
