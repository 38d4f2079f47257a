package router

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the optional navigation collectors of a Router.
// A nil *metrics records nothing.
type metrics struct {
	registerer  prometheus.Registerer
	activations *prometheus.CounterVec
	pops        prometheus.Counter
	resets      prometheus.Counter
	depth       prometheus.Gauge
	pending     prometheus.Gauge
}

const (
	activationImmediate = "immediate"
	activationStaged    = "staged"
)

func newMetrics(reg prometheus.Registerer, routerID string) *metrics {
	if reg == nil {
		return nil
	}

	labels := prometheus.Labels{"router": routerID}
	m := &metrics{
		registerer: reg,
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "helmsman",
			Name:        "activations_total",
			Help:        "Route activations applied, by whether the step was immediate or staged.",
			ConstLabels: labels,
		}, []string{"kind"}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "helmsman",
			Name:        "pops_total",
			Help:        "Pop operations applied.",
			ConstLabels: labels,
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "helmsman",
			Name:        "resets_total",
			Help:        "Reset operations applied.",
			ConstLabels: labels,
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "helmsman",
			Name:        "route_depth",
			Help:        "Number of segments in the current route.",
			ConstLabels: labels,
		}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "helmsman",
			Name:        "staged_pending",
			Help:        "Staged activation continuations waiting to fire.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(m.collectors()...)
	return m
}

func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.activations, m.pops, m.resets, m.depth, m.pending}
}

// unregister removes the router's series from the registerer.
func (m *metrics) unregister() {
	if m == nil {
		return
	}
	for _, c := range m.collectors() {
		m.registerer.Unregister(c)
	}
}

func (m *metrics) activated(kind string, depth int) {
	if m == nil {
		return
	}
	m.activations.WithLabelValues(kind).Inc()
	m.depth.Set(float64(depth))
}

func (m *metrics) popped(depth int) {
	if m == nil {
		return
	}
	m.pops.Inc()
	m.depth.Set(float64(depth))
}

func (m *metrics) reset() {
	if m == nil {
		return
	}
	m.resets.Inc()
	m.depth.Set(0)
}

func (m *metrics) setPending(n int32) {
	if m == nil {
		return
	}
	m.pending.Set(float64(n))
}
