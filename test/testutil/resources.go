package testutil

import (
	"fmt"
	"runtime"
	"sync"
	"time"
)

// ResourceMonitor samples heap usage and goroutine counts while sessions run.
type ResourceMonitor struct {
	samples []ResourceSample
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
}

// ResourceSample captures resource usage at a point in time.
type ResourceSample struct {
	Timestamp      time.Time
	HeapMB         float64
	GoroutineCount int
}

// ResourceReport compares the first and last sample of a monitoring period.
type ResourceReport struct {
	StartHeapMB     float64
	EndHeapMB       float64
	PeakHeapMB      float64
	StartGoroutines int
	EndGoroutines   int
	PeakGoroutines  int
	Samples         int
	Duration        time.Duration
}

// NewResourceMonitor creates a monitor and takes the baseline sample.
//
// Example:
//
//	monitor := testutil.NewResourceMonitor()
//	monitor.Start(100 * time.Millisecond)
//	// ... run sessions ...
//	report := monitor.Stop()
//	require.LessOrEqual(t, report.GoroutineGrowth(), 2, report.Summary())
func NewResourceMonitor() *ResourceMonitor {
	rm := &ResourceMonitor{done: make(chan struct{})}
	rm.sample()

	return rm
}

// Start samples at the given interval until Stop is called.
func (rm *ResourceMonitor) Start(interval time.Duration) {
	rm.wg.Go(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-rm.done:
				return
			case <-ticker.C:
				rm.sample()
			}
		}
	})
}

// Stop ends sampling and returns the report.
//
// A garbage collection runs before the final sample so finished sessions are not
// counted as retained heap.
func (rm *ResourceMonitor) Stop() ResourceReport {
	close(rm.done)
	rm.wg.Wait()

	runtime.GC()
	rm.sample()

	rm.mu.Lock()
	defer rm.mu.Unlock()

	first := rm.samples[0]
	last := rm.samples[len(rm.samples)-1]
	report := ResourceReport{
		StartHeapMB:     first.HeapMB,
		EndHeapMB:       last.HeapMB,
		StartGoroutines: first.GoroutineCount,
		EndGoroutines:   last.GoroutineCount,
		Samples:         len(rm.samples),
		Duration:        last.Timestamp.Sub(first.Timestamp),
	}
	for _, s := range rm.samples {
		report.PeakHeapMB = max(report.PeakHeapMB, s.HeapMB)
		report.PeakGoroutines = max(report.PeakGoroutines, s.GoroutineCount)
	}

	return report
}

func (rm *ResourceMonitor) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	s := ResourceSample{
		Timestamp:      time.Now(),
		HeapMB:         float64(m.HeapAlloc) / 1024 / 1024,
		GoroutineCount: runtime.NumGoroutine(),
	}

	rm.mu.Lock()
	rm.samples = append(rm.samples, s)
	rm.mu.Unlock()
}

// GoroutineGrowth returns how many more goroutines exist at the end than at the start.
func (rr ResourceReport) GoroutineGrowth() int {
	return rr.EndGoroutines - rr.StartGoroutines
}

// HeapGrowthMB returns the retained heap growth over the period.
func (rr ResourceReport) HeapGrowthMB() float64 {
	return rr.EndHeapMB - rr.StartHeapMB
}

// Summary returns a one-line human-readable report.
func (rr ResourceReport) Summary() string {
	return fmt.Sprintf(
		"Heap: %.2f → %.2f MB (peak %.2f), Goroutines: %d → %d (peak %d), Duration: %v, Samples: %d",
		rr.StartHeapMB, rr.EndHeapMB, rr.PeakHeapMB,
		rr.StartGoroutines, rr.EndGoroutines, rr.PeakGoroutines,
		rr.Duration, rr.Samples,
	)
}
