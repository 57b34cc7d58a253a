package profiler

import (
	"log"
	"runtime"
	"sort"
	"sync"
	"time"
)

// SectionStats accumulates timing for one named section across Begin/End pairs.
type SectionStats struct {
	// Count is the number of completed Begin/End pairs.
	Count int

	// Total is the summed duration across all completed pairs.
	Total time.Duration

	// Max is the longest single duration observed.
	Max time.Duration
}

// Profiler tracks frame rate, memory statistics, and named section timings for
// performance monitoring. Frame stats go to the log at a configurable interval
// via Tick; section timings accumulate until Report is called.
type Profiler struct {
	mu             *sync.Mutex
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	starts         map[string]time.Time
	sections       map[string]*SectionStats
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		mu:             &sync.Mutex{},
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		starts:         make(map[string]time.Time),
		sections:       make(map[string]*SectionStats),
	}
}

// Begin marks the start of a named section. Each Begin must be paired with an
// End for the same name; a second Begin before the End restarts the section.
//
// Parameters:
//   - section: the section name
func (p *Profiler) Begin(section string) {
	p.mu.Lock()
	p.starts[section] = time.Now()
	p.mu.Unlock()
}

// End completes a named section started with Begin and accumulates its elapsed
// time. An End without a matching Begin is ignored.
//
// Parameters:
//   - section: the section name
func (p *Profiler) End(section string) {
	now := time.Now()
	p.mu.Lock()
	defer p.mu.Unlock()
	start, ok := p.starts[section]
	if !ok {
		return
	}
	delete(p.starts, section)
	stats, ok := p.sections[section]
	if !ok {
		stats = &SectionStats{}
		p.sections[section] = stats
	}
	elapsed := now.Sub(start)
	stats.Count++
	stats.Total += elapsed
	if elapsed > stats.Max {
		stats.Max = elapsed
	}
}

// Sections returns a copy of the accumulated section statistics.
//
// Returns:
//   - map[string]SectionStats: accumulated stats keyed by section name
func (p *Profiler) Sections() map[string]SectionStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]SectionStats, len(p.sections))
	for name, stats := range p.sections {
		out[name] = *stats
	}
	return out
}

// Report logs the accumulated section timings in name order and resets them.
// Sections with no completed pairs are omitted.
func (p *Profiler) Report() {
	p.mu.Lock()
	names := make([]string, 0, len(p.sections))
	for name := range p.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		stats := p.sections[name]
		avg := stats.Total / time.Duration(stats.Count)
		log.Printf("[Profiler] %s: calls=%d total=%v avg=%v max=%v",
			name, stats.Count, stats.Total, avg, stats.Max)
	}
	p.sections = make(map[string]*SectionStats)
	p.mu.Unlock()
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed >= p.updateInterval {
		fps := float64(p.frameCount) / elapsed.Seconds()

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

			// Find max pause since last tick
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

		log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

		p.frameCount = 0
		p.lastTime = currentTime
		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
		return true
	}

	return false
}
