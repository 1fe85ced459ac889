package testkit

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/on-the-ground/behavior_testkit/testkit/effect"
)

// Metrics counts what kits record. Kits sharing a registerer share the
// counters. A nil *Metrics counts nothing.
type Metrics struct {
	effects     *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// NewMetrics registers the kit counters with reg, reusing counters that an
// earlier call already registered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	effects, err := registerCounterVec(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "testkit_effects_recorded_total",
			Help: "Effects recorded by behaviors under test",
		},
		[]string{"kind"},
	))
	if err != nil {
		return nil, err
	}

	transitions, err := registerCounterVec(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "testkit_transitions_total",
			Help: "Behavior transitions driven by test kits",
		},
		[]string{"trigger", "outcome"}, // start | message | signal, alive | stopped | failed
	))
	if err != nil {
		return nil, err
	}

	return &Metrics{effects: effects, transitions: transitions}, nil
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func (m *Metrics) effectRecorded(kind effect.Kind) {
	if m == nil {
		return
	}
	m.effects.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) transition(trigger, outcome string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(trigger, outcome).Inc()
}
