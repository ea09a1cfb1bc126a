package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
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

// IntSnapshot copies every integer metric
func (r *Registry) IntSnapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}

// Lines renders every metric as "key value" in sorted key order per type
func (r *Registry) Lines() []string {
	var lines []string
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		lines = append(lines, formatLine(key, ptr.Load()))
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		lines = append(lines, formatLine(key, ptr.Get()))
	})
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		lines = append(lines, formatLine(key, ptr.Load()))
	})
	return lines
}
