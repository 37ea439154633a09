package metrics

import "errors"

// Sentinel errors for metric operations. All of them indicate a
// programming or configuration defect, not a transient condition, so
// callers should surface them instead of retrying.
var (
	// ErrLabelArity indicates that the number of label values passed to a
	// family does not match the number of label names in its descriptor.
	ErrLabelArity = errors.New("label values do not match descriptor arity")

	// ErrInvalidOperation indicates that an accumulator operation was
	// applied to a series of the wrong type, a counter was decremented,
	// or a NaN value was observed.
	ErrInvalidOperation = errors.New("operation not valid for metric type")

	// ErrDuplicateMetric indicates that a metric name is already
	// registered with a different descriptor.
	ErrDuplicateMetric = errors.New("metric already registered with a different descriptor")

	// ErrInvalidDescriptor indicates that a descriptor failed validation
	// at registration time.
	ErrInvalidDescriptor = errors.New("invalid metric descriptor")
)
