package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, frame time, and memory statistics for performance
// monitoring. Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	maxFrame       time.Duration
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	now := time.Now()
	return &Profiler{
		lastTime:       now,
		lastFrame:      now,
		updateInterval: time.Second,
	}
}

// SetUpdateInterval changes how often Tick logs statistics.
// Intervals <= 0 are ignored.
//
// Parameters:
//   - interval: the logging interval
func (p *Profiler) SetUpdateInterval(interval time.Duration) {
	if interval > 0 {
		p.updateInterval = interval
	}
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, worst frame time, heap usage, allocation rate,
// GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	currentTime := time.Now()

	p.frameCount++
	if frame := currentTime.Sub(p.lastFrame); frame > p.maxFrame {
		p.maxFrame = frame
	}
	p.lastFrame = currentTime

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	avgFrameMs := elapsed.Seconds() * 1000 / float64(p.frameCount)
	maxFrameMs := float64(p.maxFrame.Nanoseconds()) / 1e6

	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	// Calculate allocation rate (MB/sec)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// Calculate GC pause stats (last pause and max recent pause)
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Frame: %.2f ms avg, %.2f ms max | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, avgFrameMs, maxFrameMs, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.frameCount = 0
	p.maxFrame = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
