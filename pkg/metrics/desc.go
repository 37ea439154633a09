package metrics

import (
	"fmt"
	"math"
	"strings"
)

// Type identifies the kind of a metric. It is a closed set: accumulator
// operations dispatch on it with an exhaustive switch.
type Type int

const (
	// CounterType is a monotonically non-decreasing value.
	CounterType Type = iota
	// GaugeType is an arbitrary value that can go up and down or be set.
	GaugeType
	// HistogramType tracks a distribution as cumulative bucket counts
	// plus a sum and a total count of observations.
	HistogramType
)

// String returns the exposition-format name of the type.
func (t Type) String() string {
	switch t {
	case CounterType:
		return "counter"
	case GaugeType:
		return "gauge"
	case HistogramType:
		return "histogram"
	default:
		return "untyped"
	}
}

// bucketLabel is reserved for the upper bound of histogram buckets
// ("le" -> "less or equal").
const bucketLabel = "le"

// Desc is the immutable identity of a metric family: its name, type,
// help text, and ordered label names. For histograms it also carries
// the bucket upper bounds, fixed at registration time. The implicit
// +Inf bucket always exists and must not be listed.
type Desc struct {
	Name       string
	Type       Type
	Help       string
	LabelNames []string

	// Buckets are the strictly ascending histogram bucket upper bounds.
	// Only valid for HistogramType.
	Buckets []float64
}

// validate checks the descriptor against the exposition-format token
// rules and the per-type constraints.
func (d Desc) validate() error {
	if !isValidName(d.Name) {
		return fmt.Errorf("%w: invalid metric name %q", ErrInvalidDescriptor, d.Name)
	}
	switch d.Type {
	case CounterType, GaugeType, HistogramType:
	default:
		return fmt.Errorf("%w: unknown metric type for %q", ErrInvalidDescriptor, d.Name)
	}

	seen := make(map[string]struct{}, len(d.LabelNames))
	for _, name := range d.LabelNames {
		if !isValidName(name) || strings.HasPrefix(name, "__") {
			return fmt.Errorf("%w: invalid label name %q on %q", ErrInvalidDescriptor, name, d.Name)
		}
		if d.Type == HistogramType && name == bucketLabel {
			return fmt.Errorf("%w: label %q is reserved for histogram buckets", ErrInvalidDescriptor, bucketLabel)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate label name %q on %q", ErrInvalidDescriptor, name, d.Name)
		}
		seen[name] = struct{}{}
	}

	if d.Type != HistogramType && len(d.Buckets) > 0 {
		return fmt.Errorf("%w: buckets set on non-histogram %q", ErrInvalidDescriptor, d.Name)
	}
	for i, b := range d.Buckets {
		if math.IsNaN(b) {
			return fmt.Errorf("%w: NaN bucket bound on %q", ErrInvalidDescriptor, d.Name)
		}
		if i > 0 && b <= d.Buckets[i-1] {
			return fmt.Errorf("%w: bucket bounds on %q must be strictly ascending", ErrInvalidDescriptor, d.Name)
		}
	}
	return nil
}

// normalize returns a copy of the descriptor with a trailing +Inf
// bucket stripped. The +Inf bucket is implicit and always present.
func (d Desc) normalize() Desc {
	if n := len(d.Buckets); n > 0 && math.IsInf(d.Buckets[n-1], +1) {
		d.Buckets = d.Buckets[:n-1]
	}
	return d
}

// equal reports whether two descriptors are identical in every field.
// Registering the same descriptor twice is allowed and idempotent;
// registering a different one under the same name is an error.
func (d Desc) equal(other Desc) bool {
	if d.Name != other.Name || d.Type != other.Type || d.Help != other.Help {
		return false
	}
	if len(d.LabelNames) != len(other.LabelNames) || len(d.Buckets) != len(other.Buckets) {
		return false
	}
	for i := range d.LabelNames {
		if d.LabelNames[i] != other.LabelNames[i] {
			return false
		}
	}
	for i := range d.Buckets {
		if d.Buckets[i] != other.Buckets[i] {
			return false
		}
	}
	return true
}

// isValidName reports whether s is a valid metric or label name:
// letters, digits, and underscores, not starting with a digit.
func isValidName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// DefBuckets are default histogram buckets for measuring the response
// time of a network service, in seconds.
var DefBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LinearBuckets creates count buckets, each width wide, where the lowest
// bucket has an upper bound of start. The final +Inf bucket is not
// counted and not included in the returned slice.
//
// The function panics if count is zero or negative.
func LinearBuckets(start, width float64, count int) []float64 {
	if count < 1 {
		panic("LinearBuckets needs a positive count")
	}
	buckets := make([]float64, count)
	for i := range buckets {
		buckets[i] = start
		start += width
	}
	return buckets
}

// ExponentialBuckets creates count buckets, where the lowest bucket has
// an upper bound of start and each following bucket's upper bound is
// factor times the previous one. The final +Inf bucket is not counted
// and not included in the returned slice.
//
// The function panics if count is zero or negative, if start is not
// positive, or if factor is not greater than 1.
func ExponentialBuckets(start, factor float64, count int) []float64 {
	if count < 1 {
		panic("ExponentialBuckets needs a positive count")
	}
	if start <= 0 {
		panic("ExponentialBuckets needs a positive start value")
	}
	if factor <= 1 {
		panic("ExponentialBuckets needs a factor greater than 1")
	}
	buckets := make([]float64, count)
	for i := range buckets {
		buckets[i] = start
		start *= factor
	}
	return buckets
}
