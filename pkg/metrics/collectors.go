package metrics

import (
	"runtime"

	"github.com/prometheus/procfs"
)

// registerProcessCollectors installs the process-level families backed
// by /proc. On platforms without procfs the families are silently
// skipped, mirroring how exporters degrade there.
func registerProcessCollectors(r *Registry) {
	if _, err := procfs.Self(); err != nil {
		return
	}

	mustRegisterFunc(r, Desc{
		Name: "process_cpu_seconds_total",
		Type: CounterType,
		Help: "Total user and system CPU time spent in seconds.",
	}, func() (float64, error) {
		stat, err := selfStat()
		if err != nil {
			return 0, err
		}
		return stat.CPUTime(), nil
	})

	mustRegisterFunc(r, Desc{
		Name: "process_resident_memory_bytes",
		Type: GaugeType,
		Help: "Resident memory size in bytes.",
	}, func() (float64, error) {
		stat, err := selfStat()
		if err != nil {
			return 0, err
		}
		return float64(stat.ResidentMemory()), nil
	})

	mustRegisterFunc(r, Desc{
		Name: "process_virtual_memory_bytes",
		Type: GaugeType,
		Help: "Virtual memory size in bytes.",
	}, func() (float64, error) {
		stat, err := selfStat()
		if err != nil {
			return 0, err
		}
		return float64(stat.VirtualMemory()), nil
	})

	mustRegisterFunc(r, Desc{
		Name: "process_open_fds",
		Type: GaugeType,
		Help: "Number of open file descriptors.",
	}, func() (float64, error) {
		p, err := procfs.Self()
		if err != nil {
			return 0, err
		}
		fds, err := p.FileDescriptorsLen()
		if err != nil {
			return 0, err
		}
		return float64(fds), nil
	})

	mustRegisterFunc(r, Desc{
		Name: "process_max_fds",
		Type: GaugeType,
		Help: "Maximum number of open file descriptors.",
	}, func() (float64, error) {
		p, err := procfs.Self()
		if err != nil {
			return 0, err
		}
		limits, err := p.Limits()
		if err != nil {
			return 0, err
		}
		return float64(limits.OpenFiles), nil
	})

	mustRegisterFunc(r, Desc{
		Name: "process_start_time_seconds",
		Type: GaugeType,
		Help: "Start time of the process since unix epoch in seconds.",
	}, func() (float64, error) {
		stat, err := selfStat()
		if err != nil {
			return 0, err
		}
		return stat.StartTime()
	})
}

// registerRuntimeCollectors installs the Go runtime GC families.
func registerRuntimeCollectors(r *Registry) {
	mustRegisterFunc(r, Desc{
		Name: "go_gc_collections_total",
		Type: CounterType,
		Help: "Total number of completed garbage collection cycles.",
	}, func() (float64, error) {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return float64(ms.NumGC), nil
	})

	mustRegisterFunc(r, Desc{
		Name: "go_gc_objects_freed_total",
		Type: CounterType,
		Help: "Total number of heap objects freed by the garbage collector.",
	}, func() (float64, error) {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return float64(ms.Frees), nil
	})
}

func selfStat() (procfs.ProcStat, error) {
	p, err := procfs.Self()
	if err != nil {
		return procfs.ProcStat{}, err
	}
	return p.Stat()
}

func mustRegisterFunc(r *Registry, desc Desc, fn func() (float64, error)) {
	if _, err := r.RegisterFunc(desc, fn); err != nil {
		panic(err)
	}
}
