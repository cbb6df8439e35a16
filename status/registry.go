package status

import (
	"math"
	"sync/atomic"
)

// Registry is the diagnostics facade for this subsystem. All failure
// modes recover locally (see the numerical guards in physics and the
// transport system); counters here are the only externally visible
// trace that a fallback fired.
//
// Well-known keys:
//
//	transport.nonfinite_fallbacks — transforms rejected before render
//	gravity.skipped_wells         — malformed obstacles skipped in a scan
//	gravity.refreshes             — field cache rebuilds
//	grid.vertices_sampled         — vertices distorted last frame
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// AtomicFloat provides atomic float64 operations using bit conversion.
// Zero value is ready to use (represents 0.0).
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores a float64 value atomically
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the float64 value atomically
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add atomically adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
