package metrics

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// separatorByte cannot occur in valid UTF-8 label values, which makes
// the hashed concatenation of a label tuple unambiguous.
const separatorByte byte = 0xff

// Family owns one descriptor and the set of series partitioned by label
// values. Series are created lazily on first access; a given label
// tuple maps to exactly one Series for the lifetime of the process,
// even under concurrent first access.
type Family struct {
	desc Desc

	mtx    sync.RWMutex
	series map[uint64][]*Series // hash of label tuple -> collision bucket
	order  []*Series            // insertion order, for deterministic rendering

	// collect, when set, makes this a dynamic family: it is invoked
	// exactly once per render, immediately before the value is read.
	collect func() (float64, error)
}

func newFamily(desc Desc) *Family {
	return &Family{
		desc:   desc,
		series: make(map[uint64][]*Series),
	}
}

// Desc returns the family's descriptor.
func (f *Family) Desc() Desc { return f.desc }

// GetOrCreate returns the series for the given label values, creating
// it on first use. It fails with ErrLabelArity when the number of
// values does not match the descriptor's label names. Repeated calls
// with an equal tuple return the same *Series.
func (f *Family) GetOrCreate(labelValues ...string) (*Series, error) {
	if len(labelValues) != len(f.desc.LabelNames) {
		return nil, fmt.Errorf("%w: %s expects %d label values, got %d",
			ErrLabelArity, f.desc.Name, len(f.desc.LabelNames), len(labelValues))
	}

	h := hashLabelValues(labelValues)

	f.mtx.RLock()
	s := findSeries(f.series[h], labelValues)
	f.mtx.RUnlock()
	if s != nil {
		return s, nil
	}

	f.mtx.Lock()
	defer f.mtx.Unlock()
	// Re-check under the write lock so a tuple raced by two callers
	// still yields a single series.
	if s := findSeries(f.series[h], labelValues); s != nil {
		return s, nil
	}
	s = newSeries(f.desc, labelValues)
	f.series[h] = append(f.series[h], s)
	f.order = append(f.order, s)
	return s, nil
}

// With works as GetOrCreate but panics on a label arity mismatch. Not
// returning an error allows shortcuts like
//
//	requests.With("GET", "/data", "200").Inc()
func (f *Family) With(labelValues ...string) *Series {
	s, err := f.GetOrCreate(labelValues...)
	if err != nil {
		panic(err)
	}
	return s
}

// Series returns the family's series in creation order.
func (f *Family) Series() []*Series {
	f.mtx.RLock()
	defer f.mtx.RUnlock()
	return append([]*Series(nil), f.order...)
}

func findSeries(bucket []*Series, labelValues []string) *Series {
	for _, s := range bucket {
		if equalTuples(s.labelValues, labelValues) {
			return s
		}
	}
	return nil
}

func equalTuples(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hashLabelValues(labelValues []string) uint64 {
	var d xxhash.Digest
	d.Reset()
	sep := [1]byte{separatorByte}
	for _, v := range labelValues {
		_, _ = d.WriteString(v)
		_, _ = d.Write(sep[:])
	}
	return d.Sum64()
}
