package appmetrics

import (
	"strings"
	"time"

	"datapulse/pkg/metrics"
)

// AppMetrics bundles every metric family the service records. Construct
// it once with New and share it between the HTTP middleware and the
// database layer.
type AppMetrics struct {
	// HTTPRequestsTotal counts HTTP requests by method, endpoint, and status.
	HTTPRequestsTotal *metrics.Family

	// HTTPRequestDuration measures request latency in seconds.
	HTTPRequestDuration *metrics.Family

	// InProgressRequests tracks requests currently being served.
	InProgressRequests *metrics.Family

	// DBQueriesTotal counts database queries by operation keyword.
	DBQueriesTotal *metrics.Family

	// DBQueryDuration measures query latency in seconds by operation.
	DBQueryDuration *metrics.Family
}

// New registers the application metric families on reg and returns the
// bundle. Registration is idempotent, so calling New twice against the
// same registry is safe.
func New(reg *metrics.Registry) (*AppMetrics, error) {
	a := &AppMetrics{}
	var err error

	a.HTTPRequestsTotal, err = reg.Register(metrics.Desc{
		Name:       "http_requests_total",
		Type:       metrics.CounterType,
		Help:       "Total HTTP requests",
		LabelNames: []string{"method", "endpoint", "http_status"},
	})
	if err != nil {
		return nil, err
	}

	a.HTTPRequestDuration, err = reg.Register(metrics.Desc{
		Name:       "http_request_duration_seconds",
		Type:       metrics.HistogramType,
		Help:       "HTTP request latency",
		LabelNames: []string{"method", "endpoint", "http_status"},
		Buckets:    []float64{0.1, 0.3, 0.5, 1, 3, 5},
	})
	if err != nil {
		return nil, err
	}

	a.InProgressRequests, err = reg.Register(metrics.Desc{
		Name: "inprogress_requests",
		Type: metrics.GaugeType,
		Help: "In-progress HTTP requests",
	})
	if err != nil {
		return nil, err
	}

	a.DBQueriesTotal, err = reg.Register(metrics.Desc{
		Name:       "db_queries_total",
		Type:       metrics.CounterType,
		Help:       "Total database queries",
		LabelNames: []string{"operation"},
	})
	if err != nil {
		return nil, err
	}

	a.DBQueryDuration, err = reg.Register(metrics.Desc{
		Name:       "db_query_duration_seconds",
		Type:       metrics.HistogramType,
		Help:       "Database query duration in seconds",
		LabelNames: []string{"operation"},
		Buckets:    metrics.ExponentialBuckets(0.001, 2, 10),
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

// MustNew works as New but panics on error. Metric registration
// failures are configuration defects, fatal at startup.
func MustNew(reg *metrics.Registry) *AppMetrics {
	a, err := New(reg)
	if err != nil {
		panic(err)
	}
	return a
}

// RequestStarted increments the in-progress gauge. Call it when a
// request enters the handler chain, paired with RequestFinished.
func (a *AppMetrics) RequestStarted() {
	_ = a.InProgressRequests.With().Inc()
}

// RequestFinished decrements the in-progress gauge.
func (a *AppMetrics) RequestFinished() {
	_ = a.InProgressRequests.With().Dec()
}

// RecordHTTPRequest records one completed request: the labeled counter
// increment and the latency observation.
func (a *AppMetrics) RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	_ = a.HTTPRequestsTotal.With(method, endpoint, status).Add(1)
	_ = a.HTTPRequestDuration.With(method, endpoint, status).Observe(duration.Seconds())
}

// RecordQuery records one completed database query. The operation label
// is the first whitespace-delimited token of the SQL text, lower-cased.
// Statements other than select, insert, update, and delete are silently
// ignored; that is policy, not an error.
func (a *AppMetrics) RecordQuery(sql string, duration time.Duration) {
	op, ok := QueryOperation(sql)
	if !ok {
		return
	}
	_ = a.DBQueriesTotal.With(op).Add(1)
	_ = a.DBQueryDuration.With(op).Observe(duration.Seconds())
}

// QueryOperation extracts the operation keyword from a SQL statement.
// It returns false for statements that are not recorded.
func QueryOperation(sql string) (string, bool) {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "", false
	}
	op := strings.ToLower(fields[0])
	switch op {
	case "select", "insert", "update", "delete":
		return op, true
	default:
		return "", false
	}
}
