// Package status is the metrics facade for the interaction core.
// Components register and cache metric pointers during construction and
// write to them from their update paths; the presentation layer samples
// them from its own loop, hence the atomic storage.
//
// Key convention: "<component>.<metric>", e.g. "tracker.active",
// "pool.active", "pool.missed", "score.value", "ability.charge".
package status

import "sync/atomic"

// Registry is the central metrics facade
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
