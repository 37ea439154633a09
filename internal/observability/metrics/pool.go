package appmetrics

import (
	"fmt"
	"strconv"
	"strings"

	"datapulse/pkg/metrics"
)

// PoolStats is a point-in-time view of the database connection pool.
type PoolStats struct {
	CheckedOut int // connections currently handed out
	Idle       int // open connections waiting in the pool
	Waiters    int // acquisitions that had to wait for a connection
}

// PoolStatsFunc supplies current pool statistics. The database layer
// provides one backed by sql.DB.Stats.
type PoolStatsFunc func() (PoolStats, error)

// ObservePool registers the three pool gauges as dynamic families on
// reg, each reading statsFn at render time. A statsFn failure skips the
// affected gauges for that scrape; the rest of the registry still
// renders.
func ObservePool(reg *metrics.Registry, statsFn PoolStatsFunc) error {
	gauges := []struct {
		name string
		help string
		get  func(PoolStats) int
	}{
		{"db_pool_checked_out_connections", "Database connections currently checked out of the pool",
			func(s PoolStats) int { return s.CheckedOut }},
		{"db_pool_idle_connections", "Idle database connections held by the pool",
			func(s PoolStats) int { return s.Idle }},
		{"db_pool_waiters", "Connection acquisitions that waited for a free connection",
			func(s PoolStats) int { return s.Waiters }},
	}

	for _, g := range gauges {
		get := g.get
		_, err := reg.RegisterFunc(metrics.Desc{
			Name: g.name,
			Type: metrics.GaugeType,
			Help: g.help,
		}, func() (float64, error) {
			stats, err := statsFn()
			if err != nil {
				return 0, err
			}
			return float64(get(stats)), nil
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", g.name, err)
		}
	}
	return nil
}

// ParsePoolStatus parses a textual pool status of the shape
//
//	checked_out=2 idle=3 waiters=0
//
// as reported by external pool managers. A status string that does not
// match the expected shape returns an error; callers are expected to
// skip the pool gauge update and proceed, never to fail the render
// path over it.
func ParsePoolStatus(status string) (PoolStats, error) {
	var (
		stats PoolStats
		seen  = make(map[string]bool, 3)
	)
	for _, field := range strings.Fields(status) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return PoolStats{}, fmt.Errorf("malformed pool status field %q", field)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return PoolStats{}, fmt.Errorf("pool status field %q: %w", field, err)
		}
		switch key {
		case "checked_out":
			stats.CheckedOut = n
		case "idle":
			stats.Idle = n
		case "waiters":
			stats.Waiters = n
		default:
			continue // unknown fields are tolerated
		}
		seen[key] = true
	}
	if len(seen) < 3 {
		return PoolStats{}, fmt.Errorf("pool status %q missing required fields", status)
	}
	return stats, nil
}
