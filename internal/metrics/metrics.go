// Package metrics exposes Prometheus instrumentation for the HTTP service.
// The engine itself stays free of I/O and instrumentation; the API layer
// records here around each simulation call.
package metrics

import (
	"errors"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for simulation traffic.
type Metrics struct {
	simulationsTotal   *prom.CounterVec
	simulationDuration *prom.HistogramVec
}

// NewMetrics creates and registers the simulation collectors. A nil registerer
// means the default one. Re-registering an identical collector (tests sharing
// the default registry) reuses the existing one instead of failing.
func NewMetrics(reg prom.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	simulations := prom.NewCounterVec(prom.CounterOpts{
		Namespace: "schedsim",
		Name:      "simulations_total",
		Help:      "Total number of scheduling simulations served.",
	}, []string{"algorithm"})
	duration := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "schedsim",
		Name:      "simulation_duration_seconds",
		Help:      "Scheduling simulation duration in seconds.",
		Buckets:   prom.DefBuckets,
	}, []string{"algorithm"})

	var err error
	if simulations, err = registerCounterVec(reg, simulations); err != nil {
		return nil, err
	}
	if duration, err = registerHistogramVec(reg, duration); err != nil {
		return nil, err
	}

	return &Metrics{simulationsTotal: simulations, simulationDuration: duration}, nil
}

// ObserveSimulation records one completed simulation for an algorithm.
func (m *Metrics) ObserveSimulation(algorithm string, elapsed time.Duration) {
	m.simulationsTotal.WithLabelValues(algorithm).Inc()
	m.simulationDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// SimulationsTotal exposes the counter for test assertions.
func (m *Metrics) SimulationsTotal() *prom.CounterVec {
	return m.simulationsTotal
}

func registerCounterVec(reg prom.Registerer, c *prom.CounterVec) (*prom.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var already prom.AlreadyRegisteredError
		if errors.As(err, &already) {
			return already.ExistingCollector.(*prom.CounterVec), nil
		}
		return nil, err
	}
	return c, nil
}

func registerHistogramVec(reg prom.Registerer, h *prom.HistogramVec) (*prom.HistogramVec, error) {
	if err := reg.Register(h); err != nil {
		var already prom.AlreadyRegisteredError
		if errors.As(err, &already) {
			return already.ExistingCollector.(*prom.HistogramVec), nil
		}
		return nil, err
	}
	return h, nil
}
