package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescValidate(t *testing.T) {
	tests := []struct {
		name    string
		desc    Desc
		wantErr bool
	}{
		{
			name: "valid counter",
			desc: Desc{Name: "http_requests_total", Type: CounterType, Help: "Total HTTP requests",
				LabelNames: []string{"method", "endpoint", "http_status"}},
		},
		{
			name: "valid gauge without labels",
			desc: Desc{Name: "inprogress_requests", Type: GaugeType, Help: "In-progress HTTP requests"},
		},
		{
			name: "valid histogram",
			desc: Desc{Name: "db_query_duration_seconds", Type: HistogramType, Help: "Query duration",
				LabelNames: []string{"operation"}, Buckets: []float64{0.05, 0.5, 2.0}},
		},
		{
			name:    "name starting with digit",
			desc:    Desc{Name: "1_requests", Type: CounterType},
			wantErr: true,
		},
		{
			name:    "name with invalid character",
			desc:    Desc{Name: "http-requests", Type: CounterType},
			wantErr: true,
		},
		{
			name:    "empty name",
			desc:    Desc{Name: "", Type: CounterType},
			wantErr: true,
		},
		{
			name:    "duplicate label names",
			desc:    Desc{Name: "x_total", Type: CounterType, LabelNames: []string{"a", "a"}},
			wantErr: true,
		},
		{
			name:    "reserved label prefix",
			desc:    Desc{Name: "x_total", Type: CounterType, LabelNames: []string{"__name__"}},
			wantErr: true,
		},
		{
			name:    "le label on histogram",
			desc:    Desc{Name: "x_seconds", Type: HistogramType, LabelNames: []string{"le"}},
			wantErr: true,
		},
		{
			name:    "buckets on counter",
			desc:    Desc{Name: "x_total", Type: CounterType, Buckets: []float64{1}},
			wantErr: true,
		},
		{
			name:    "non-ascending buckets",
			desc:    Desc{Name: "x_seconds", Type: HistogramType, Buckets: []float64{1, 0.5}},
			wantErr: true,
		},
		{
			name:    "NaN bucket bound",
			desc:    Desc{Name: "x_seconds", Type: HistogramType, Buckets: []float64{math.NaN()}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDescriptor)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDescNormalizeStripsTrailingInf(t *testing.T) {
	d := Desc{Name: "x_seconds", Type: HistogramType, Buckets: []float64{0.05, 0.5, 2.0, math.Inf(+1)}}
	n := d.normalize()
	assert.Equal(t, []float64{0.05, 0.5, 2.0}, n.Buckets)
	require.NoError(t, n.validate())
}

func TestLinearBuckets(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 5}, LinearBuckets(1, 2, 3))
	assert.Panics(t, func() { LinearBuckets(1, 2, 0) })
}

func TestExponentialBuckets(t *testing.T) {
	assert.Equal(t, []float64{0.001, 0.002, 0.004, 0.008}, ExponentialBuckets(0.001, 2, 4))
	assert.Panics(t, func() { ExponentialBuckets(0, 2, 3) })
	assert.Panics(t, func() { ExponentialBuckets(1, 1, 3) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "counter", CounterType.String())
	assert.Equal(t, "gauge", GaugeType.String())
	assert.Equal(t, "histogram", HistogramType.String())
}
