// Package observability centralizes the service's observability
// infrastructure.
//
// Subpackages:
//   - logging: structured logging helpers built on slog
//   - metrics: application metric families and recorders built on the
//     pkg/metrics registry
//
// Example usage:
//
//	import (
//	    "datapulse/internal/observability/logging"
//	    appmetrics "datapulse/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//	}
package observability
