package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var tickBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// Metrics records lifecycle counters. A nil *Metrics records nothing.
type Metrics struct {
	teamsActive          prometheus.Gauge
	terminations         *prometheus.CounterVec
	notifications        *prometheus.CounterVec
	joinDecisions        *prometheus.CounterVec
	tickDuration         prometheus.Histogram
	provisioningFailures prometheus.Counter
}

// NewMetrics creates the lifecycle collectors and registers them with reg.
// Collectors already registered (tests, repeated wiring) are reused.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		teamsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "teamlife",
			Name:      "teams_active",
			Help:      "Number of teams currently registered",
		}),
		terminations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "teamlife",
			Name:      "team_terminations_total",
			Help:      "Team terminations by reason",
		}, []string{"reason"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "teamlife",
			Name:      "notifications_total",
			Help:      "Notification attempts by kind and outcome",
		}, []string{"kind", "outcome"}),
		joinDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "teamlife",
			Name:      "join_decisions_total",
			Help:      "Join request resolutions",
		}, []string{"decision"}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "teamlife",
			Name:      "scheduler_tick_duration_seconds",
			Help:      "Duration of milestone scheduler ticks",
			Buckets:   tickBuckets,
		}),
		provisioningFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "teamlife",
			Name:      "provisioning_failures_total",
			Help:      "Failed teardown hook invocations",
		}),
	}
	if reg == nil {
		return m
	}

	m.teamsActive = register(reg, m.teamsActive)
	m.terminations = register(reg, m.terminations)
	m.notifications = register(reg, m.notifications)
	m.joinDecisions = register(reg, m.joinDecisions)
	m.tickDuration = register(reg, m.tickDuration)
	m.provisioningFailures = register(reg, m.provisioningFailures)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

func (m *Metrics) setTeams(n int) {
	if m == nil {
		return
	}
	m.teamsActive.Set(float64(n))
}

func (m *Metrics) terminated(reason string) {
	if m == nil {
		return
	}
	m.terminations.WithLabelValues(reason).Inc()
}

func (m *Metrics) notification(kind EventKind, outcome string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(string(kind), outcome).Inc()
}

func (m *Metrics) joinDecision(decision string) {
	if m == nil {
		return
	}
	m.joinDecisions.WithLabelValues(decision).Inc()
}

func (m *Metrics) observeTick(d time.Duration) {
	if m == nil {
		return
	}
	m.tickDuration.Observe(d.Seconds())
}

func (m *Metrics) provisioningFailed() {
	if m == nil {
		return
	}
	m.provisioningFailures.Inc()
}
