package db

import (
	"context"
	"database/sql"
	"time"

	appmetrics "datapulse/internal/observability/metrics"
)

// Querier is the subset of *sql.DB the repositories depend on. Both the
// raw pool and the instrumented wrapper satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InstrumentedDB wraps a connection pool with query-lifecycle metrics.
// Every query records its elapsed time and operation keyword via
// AppMetrics.RecordQuery; statements without a recognized keyword are
// silently left out of the metrics.
type InstrumentedDB struct {
	inner   Querier
	metrics *appmetrics.AppMetrics
}

// Instrument wraps q so each query is timed and recorded on m.
func Instrument(q Querier, m *appmetrics.AppMetrics) *InstrumentedDB {
	return &InstrumentedDB{inner: q, metrics: m}
}

// QueryContext runs a query through the underlying pool and records its
// duration.
func (d *InstrumentedDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.inner.QueryContext(ctx, query, args...)
	d.metrics.RecordQuery(query, time.Since(start))
	return rows, err
}

// QueryRowContext runs a single-row query and records its duration.
// The row's Scan error surfaces at the call site, as with *sql.DB.
func (d *InstrumentedDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := d.inner.QueryRowContext(ctx, query, args...)
	d.metrics.RecordQuery(query, time.Since(start))
	return row
}

// ExecContext runs a statement and records its duration.
func (d *InstrumentedDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := d.inner.ExecContext(ctx, query, args...)
	d.metrics.RecordQuery(query, time.Since(start))
	return res, err
}

// PoolStats returns a metrics callback reading a point-in-time view of
// the pool. database/sql exposes the number of waits as a cumulative
// counter, which backs the waiters gauge.
func PoolStats(database *sql.DB) appmetrics.PoolStatsFunc {
	return func() (appmetrics.PoolStats, error) {
		stats := database.Stats()
		return appmetrics.PoolStats{
			CheckedOut: stats.InUse,
			Idle:       stats.Idle,
			Waiters:    int(stats.WaitCount),
		}, nil
	}
}
