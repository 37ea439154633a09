package appmetrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datapulse/pkg/metrics"
)

func TestObservePoolRendersGauges(t *testing.T) {
	reg := metrics.NewEmpty()

	err := ObservePool(reg, func() (PoolStats, error) {
		return PoolStats{CheckedOut: 2, Idle: 3, Waiters: 1}, nil
	})
	require.NoError(t, err)

	out := string(reg.RenderBytes())
	assert.Contains(t, out, "db_pool_checked_out_connections 2\n")
	assert.Contains(t, out, "db_pool_idle_connections 3\n")
	assert.Contains(t, out, "db_pool_waiters 1\n")
}

func TestObservePoolFailureDoesNotBreakRender(t *testing.T) {
	reg := metrics.NewEmpty()
	app := MustNew(reg)
	app.RecordHTTPRequest("GET", "/data", "200", 0)

	err := ObservePool(reg, func() (PoolStats, error) {
		return PoolStats{}, errors.New("pool unavailable")
	})
	require.NoError(t, err)

	out := string(reg.RenderBytes())
	assert.NotContains(t, out, "db_pool_checked_out_connections")
	assert.Contains(t, out, `http_requests_total{method="GET",endpoint="/data",http_status="200"} 1`)
}

func TestParsePoolStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		want    PoolStats
		wantErr bool
	}{
		{
			name:   "well formed",
			status: "checked_out=2 idle=3 waiters=0",
			want:   PoolStats{CheckedOut: 2, Idle: 3, Waiters: 0},
		},
		{
			name:   "extra unknown fields tolerated",
			status: "size=5 checked_out=1 idle=4 waiters=2 overflow=0",
			want:   PoolStats{CheckedOut: 1, Idle: 4, Waiters: 2},
		},
		{
			name:    "missing field",
			status:  "checked_out=2 idle=3",
			wantErr: true,
		},
		{
			name:    "non-numeric value",
			status:  "checked_out=two idle=3 waiters=0",
			wantErr: true,
		},
		{
			name:    "malformed field",
			status:  "checked_out 2 idle=3 waiters=0",
			wantErr: true,
		},
		{
			name:    "empty",
			status:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoolStatus(tt.status)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
