package metrics

import (
	"fmt"
	"sync"
)

// Registry owns the set of registered metric families. It is an
// explicit value: construct one with New (which installs the default
// process and runtime collectors) or NewEmpty, and hand it to the
// components that record or expose metrics.
type Registry struct {
	mtx      sync.RWMutex
	families map[string]*Family
	order    []*Family // registration order, for deterministic rendering
}

// New returns a registry with the default process and Go runtime
// collector families installed. Their values are not captured eagerly:
// each holds a callback evaluated once per render.
func New() *Registry {
	r := NewEmpty()
	registerProcessCollectors(r)
	registerRuntimeCollectors(r)
	return r
}

// NewEmpty returns a registry without any default families. It is
// mainly useful in tests and for fully custom collector setups.
func NewEmpty() *Registry {
	return &Registry{families: make(map[string]*Family)}
}

// Register adds a family for the given descriptor. Registering the same
// descriptor twice is idempotent and returns the existing family, so
// repeated initialization is safe. A different descriptor under an
// already-registered name fails with ErrDuplicateMetric.
func (r *Registry) Register(desc Desc) (*Family, error) {
	return r.register(desc, nil)
}

// register publishes a family under the registry lock. The collect
// callback, when non-nil, is installed on the family before it becomes
// visible to renders, so no caller can observe a half-built dynamic
// family. Zero-label families get their single series created eagerly,
// so a registered metric shows up in the exposition before first use.
func (r *Registry) register(desc Desc, fn func() (float64, error)) (*Family, error) {
	desc = desc.normalize()
	if err := desc.validate(); err != nil {
		return nil, err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	if existing, ok := r.families[desc.Name]; ok {
		if existing.desc.equal(desc) {
			// Idempotent re-registration keeps the original callback.
			return existing, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrDuplicateMetric, desc.Name)
	}
	f := newFamily(desc)
	f.collect = fn
	if len(desc.LabelNames) == 0 {
		if _, err := f.GetOrCreate(); err != nil {
			return nil, err
		}
	}
	r.families[desc.Name] = f
	r.order = append(r.order, f)
	return f, nil
}

// MustRegister works as Register but panics on error. Registration
// failures are configuration defects, fatal at startup.
func (r *Registry) MustRegister(desc Desc) *Family {
	f, err := r.Register(desc)
	if err != nil {
		panic(err)
	}
	return f
}

// RegisterFunc adds a dynamic zero-label family whose single series
// value is produced by fn, invoked once per render immediately before
// the value is read. The descriptor must be a counter or gauge with no
// label names. A failing callback skips only its own family during
// rendering; the rest of the registry still renders.
func (r *Registry) RegisterFunc(desc Desc, fn func() (float64, error)) (*Family, error) {
	if len(desc.LabelNames) > 0 {
		return nil, fmt.Errorf("%w: dynamic family %s cannot have labels", ErrInvalidDescriptor, desc.Name)
	}
	if desc.Type == HistogramType {
		return nil, fmt.Errorf("%w: dynamic family %s cannot be a histogram", ErrInvalidDescriptor, desc.Name)
	}
	return r.register(desc, fn)
}

// Families returns the registered families in registration order. The
// order is stable for the lifetime of the process, which keeps the
// rendered exposition deterministic. The traversal is a fresh snapshot
// on every call.
func (r *Registry) Families() []*Family {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return append([]*Family(nil), r.order...)
}
