// Package appmetrics defines the application's metric set: HTTP request
// metrics, database query metrics, and connection pool gauges, all
// registered against an explicitly constructed metrics.Registry.
//
// The registry is built in main and handed to the HTTP middleware and
// the database instrumentation; nothing here relies on process-global
// state.
//
// Example usage:
//
//	reg := metrics.New()
//	app, err := appmetrics.New(reg)
//	if err != nil { ... }
//
//	app.RecordHTTPRequest("GET", "/data", "200", time.Since(start))
//	app.RecordQuery("SELECT * FROM user_data", elapsed)
package appmetrics
