// Package pathutil provides URL path helpers for routing and metrics.
// Path normalization maps ID-carrying paths onto a fixed set of
// templates so metric labels stay bounded.
package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at init so normalization stays cheap on the hot path.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/data/\d+$`), template: "/data/:id"},
}

// NormalizePath maps dynamic URL paths onto templates so the endpoint
// metric label has bounded cardinality. Paths with numeric IDs become
// their template form; static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/data/123")   // "/data/:id"
//	NormalizePath("/data")       // "/data" (unchanged)
//	NormalizePath("/health")     // "/health" (unchanged)
//	NormalizePath("/data/5?x=1") // "/data/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
