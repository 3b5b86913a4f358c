package internal

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats collects self metrics for the inspect dashboard.
// Best-effort: fields stay at zero when the process probe fails.
func ProcessStats() map[string]any {
	stats := map[string]any{
		"Goroutines": runtime.NumGoroutine(),
		"Time":       time.Now().Format(time.RFC822),
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["AllocMemMb"] = memStats.Alloc / 1024 / 1024
	stats["NumGC"] = memStats.NumGC

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return stats
	}
	if rss, err := p.MemoryInfo(); err == nil {
		stats["RssMb"] = rss.RSS / 1024 / 1024
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats["CpuPercent"] = cpu
	}
	return stats
}
