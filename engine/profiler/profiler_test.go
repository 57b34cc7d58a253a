package profiler

import (
	"io"
	"log"
	"os"
	"testing"
	"time"
)

// silenceLog redirects the standard logger for the duration of a test so
// Report and Tick output does not clutter the test log.
func silenceLog(t *testing.T) {
	t.Helper()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

// TestProfilerSections tests that Begin/End pairs accumulate count, total and
// max for a section.
func TestProfilerSections(t *testing.T) {
	p := NewProfiler()

	for range 2 {
		p.Begin("stage.transform")
		time.Sleep(time.Millisecond)
		p.End("stage.transform")
	}

	stats, ok := p.Sections()["stage.transform"]
	if !ok {
		t.Fatalf("Sections() missing %q", "stage.transform")
	}
	if stats.Count != 2 {
		t.Errorf("Count = %d, want 2", stats.Count)
	}
	if stats.Total < 2*time.Millisecond {
		t.Errorf("Total = %v, want at least 2ms", stats.Total)
	}
	if stats.Max <= 0 || stats.Max > stats.Total {
		t.Errorf("Max = %v, want within (0, %v]", stats.Max, stats.Total)
	}
}

// TestProfilerMultipleSections tests that sections accumulate independently.
func TestProfilerMultipleSections(t *testing.T) {
	p := NewProfiler()

	p.Begin("a")
	p.End("a")
	p.Begin("b")
	p.End("b")
	p.Begin("a")
	p.End("a")

	sections := p.Sections()
	if got := sections["a"].Count; got != 2 {
		t.Errorf("Count for %q = %d, want 2", "a", got)
	}
	if got := sections["b"].Count; got != 1 {
		t.Errorf("Count for %q = %d, want 1", "b", got)
	}
}

// TestProfilerEndWithoutBegin tests that an unmatched End is ignored.
func TestProfilerEndWithoutBegin(t *testing.T) {
	p := NewProfiler()

	p.End("orphan")
	if got := len(p.Sections()); got != 0 {
		t.Errorf("Sections() after an unmatched End has %d entries, want 0", got)
	}

	p.Begin("paired")
	p.End("paired")
	p.End("paired")
	if got := p.Sections()["paired"].Count; got != 1 {
		t.Errorf("Count after a duplicate End = %d, want 1", got)
	}
}

// TestProfilerBeginRestarts tests that a second Begin before the End restarts
// the section instead of recording two pairs.
func TestProfilerBeginRestarts(t *testing.T) {
	p := NewProfiler()

	p.Begin("restarted")
	p.Begin("restarted")
	p.End("restarted")

	if got := p.Sections()["restarted"].Count; got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}

// TestProfilerSectionsCopy tests that mutating the returned map does not
// affect the profiler's own accumulation.
func TestProfilerSectionsCopy(t *testing.T) {
	p := NewProfiler()
	p.Begin("a")
	p.End("a")

	first := p.Sections()
	first["a"] = SectionStats{Count: 99}
	delete(first, "a")

	if got := p.Sections()["a"].Count; got != 1 {
		t.Errorf("Count after mutating a copy = %d, want 1", got)
	}
}

// TestProfilerReportResets tests that Report clears accumulated sections and
// lets a fresh accumulation start over.
func TestProfilerReportResets(t *testing.T) {
	silenceLog(t)
	p := NewProfiler()
	p.Begin("a")
	p.End("a")

	p.Report()
	if got := len(p.Sections()); got != 0 {
		t.Errorf("Sections() after Report has %d entries, want 0", got)
	}

	p.Begin("a")
	p.End("a")
	if got := p.Sections()["a"].Count; got != 1 {
		t.Errorf("Count after Report and one new pair = %d, want 1", got)
	}
}

// TestProfilerTick tests that frame stats are withheld until the update
// interval elapses.
func TestProfilerTick(t *testing.T) {
	silenceLog(t)
	p := NewProfiler()

	if p.Tick() {
		t.Errorf("Tick() before the update interval = true, want false")
	}

	time.Sleep(1100 * time.Millisecond)
	if !p.Tick() {
		t.Errorf("Tick() after the update interval = false, want true")
	}
	if p.Tick() {
		t.Errorf("Tick() immediately after logging = true, want false")
	}
}
