package metrics

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// Series is one metric instance for a concrete label-value tuple. It is
// created lazily by its Family on first access and lives for the rest
// of the process; there is no eviction.
//
// Counter and gauge state is updated with atomic operations. Histogram
// state is guarded by a per-series mutex so that sum, count, and the
// cumulative bucket counts always move together.
type Series struct {
	// valBits holds the float64 bits of a counter or gauge value, and
	// valInt the integral fast path of a counter. They must stay first
	// in the struct to keep 64-bit alignment for atomic access.
	valBits uint64
	valInt  uint64

	typ         Type
	labelValues []string

	// histogram state, guarded by mu. bucketCounts is cumulative and one
	// longer than upperBounds; the last slot is the implicit +Inf bucket
	// and equals count.
	mu           sync.Mutex
	upperBounds  []float64
	bucketCounts []uint64
	sum          float64
	count        uint64
}

func newSeries(desc Desc, labelValues []string) *Series {
	s := &Series{
		typ:         desc.Type,
		labelValues: append(make([]string, 0, len(labelValues)), labelValues...),
	}
	if desc.Type == HistogramType {
		s.upperBounds = desc.Buckets
		s.bucketCounts = make([]uint64, len(desc.Buckets)+1)
	}
	return s
}

// LabelValues returns a copy of the label-value tuple identifying this
// series within its family.
func (s *Series) LabelValues() []string {
	return append([]string(nil), s.labelValues...)
}

// Add adds delta to a counter. It fails with ErrInvalidOperation on a
// negative delta (counters are non-decreasing by contract) or when the
// series is not a counter.
func (s *Series) Add(delta float64) error {
	if s.typ != CounterType {
		return fmt.Errorf("%w: add on %s series", ErrInvalidOperation, s.typ)
	}
	if delta < 0 || math.IsNaN(delta) {
		return fmt.Errorf("%w: counter cannot decrease in value", ErrInvalidOperation)
	}
	// Integral deltas take the cheap atomic-integer path; the leftovers
	// go through a CAS loop on the float bits.
	if ival := uint64(delta); float64(ival) == delta {
		atomic.AddUint64(&s.valInt, ival)
		return nil
	}
	s.casAdd(delta)
	return nil
}

// Inc increments a counter or gauge by 1.
func (s *Series) Inc() error {
	switch s.typ {
	case CounterType:
		atomic.AddUint64(&s.valInt, 1)
		return nil
	case GaugeType:
		s.casAdd(1)
		return nil
	default:
		return fmt.Errorf("%w: inc on %s series", ErrInvalidOperation, s.typ)
	}
}

// Dec decrements a gauge by 1. Counters cannot decrease.
func (s *Series) Dec() error {
	if s.typ != GaugeType {
		return fmt.Errorf("%w: dec on %s series", ErrInvalidOperation, s.typ)
	}
	s.casAdd(-1)
	return nil
}

// Set overwrites a gauge value unconditionally.
func (s *Series) Set(v float64) error {
	if s.typ != GaugeType {
		return fmt.Errorf("%w: set on %s series", ErrInvalidOperation, s.typ)
	}
	atomic.StoreUint64(&s.valBits, math.Float64bits(v))
	return nil
}

// Observe records v in a histogram: sum, count, and every cumulative
// bucket whose upper bound is >= v (the implicit +Inf bucket included)
// are updated under the series lock, so concurrent observers never lose
// updates and readers see a consistent per-series snapshot.
func (s *Series) Observe(v float64) error {
	if s.typ != HistogramType {
		return fmt.Errorf("%w: observe on %s series", ErrInvalidOperation, s.typ)
	}
	if math.IsNaN(v) {
		return fmt.Errorf("%w: cannot observe NaN", ErrInvalidOperation)
	}

	s.mu.Lock()
	s.sum += v
	s.count++
	for i, bound := range s.upperBounds {
		if v <= bound {
			s.bucketCounts[i]++
		}
	}
	s.bucketCounts[len(s.upperBounds)]++ // +Inf receives every observation
	s.mu.Unlock()
	return nil
}

// Value returns the current value of a counter or gauge.
func (s *Series) Value() float64 {
	switch s.typ {
	case CounterType:
		fval := math.Float64frombits(atomic.LoadUint64(&s.valBits))
		return fval + float64(atomic.LoadUint64(&s.valInt))
	default:
		return math.Float64frombits(atomic.LoadUint64(&s.valBits))
	}
}

// HistogramSnapshot is a consistent point-in-time view of one histogram
// series. Counts are cumulative; the last entry is the +Inf bucket and
// equals Count.
type HistogramSnapshot struct {
	UpperBounds []float64
	Counts      []uint64
	Sum         float64
	Count       uint64
}

// Histogram returns a snapshot of a histogram series. It fails with
// ErrInvalidOperation for counters and gauges.
func (s *Series) Histogram() (HistogramSnapshot, error) {
	if s.typ != HistogramType {
		return HistogramSnapshot{}, fmt.Errorf("%w: histogram snapshot of %s series", ErrInvalidOperation, s.typ)
	}
	s.mu.Lock()
	snap := HistogramSnapshot{
		UpperBounds: s.upperBounds,
		Counts:      append([]uint64(nil), s.bucketCounts...),
		Sum:         s.sum,
		Count:       s.count,
	}
	s.mu.Unlock()
	return snap, nil
}

// casAdd adds delta to the float bits with a compare-and-swap loop.
func (s *Series) casAdd(delta float64) {
	for {
		oldBits := atomic.LoadUint64(&s.valBits)
		newBits := math.Float64bits(math.Float64frombits(oldBits) + delta)
		if atomic.CompareAndSwapUint64(&s.valBits, oldBits, newBits) {
			return
		}
	}
}

// setDirect stores v without the per-type checks. It backs the dynamic
// families whose value comes from a refresh callback at render time.
func (s *Series) setDirect(v float64) {
	atomic.StoreUint64(&s.valBits, math.Float64bits(v))
	atomic.StoreUint64(&s.valInt, 0)
}
