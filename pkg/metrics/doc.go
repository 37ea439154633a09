// Package metrics implements a minimal in-process metrics registry with
// counters, gauges, and histograms, rendered in the Prometheus text
// exposition format (version 0.0.4).
//
// A Registry is an explicit value constructed by the application and
// passed to whatever needs to record or expose metrics; there is no
// package-level default registry. Series creation is lazy and safe for
// concurrent use, and steady-state updates use atomic operations or a
// per-series lock so the hot path stays cheap.
//
// Typical wiring:
//
//	reg := metrics.New()
//	requests := reg.MustRegister(metrics.Desc{
//		Name:       "http_requests_total",
//		Type:       metrics.CounterType,
//		Help:       "Total HTTP requests",
//		LabelNames: []string{"method", "endpoint", "http_status"},
//	})
//	requests.With("GET", "/data", "200").Inc()
//	_ = reg.Render(w)
package metrics
