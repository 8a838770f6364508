// Package profiling collects wall-clock timings of pipeline stages.
// It is applied as a wrapper at stage call boundaries; the stages
// themselves never touch it. Collection is off unless requested via
// the EQUIREC_PROFILE environment variable or Enable.
package profiling

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Entry is a single recorded measurement.
type Entry struct {
	Name     string
	Duration time.Duration
	When     time.Time
}

// OpStats summarizes all measurements of one operation.
type OpStats struct {
	Count int
	Total time.Duration
	Mean  time.Duration
	Min   time.Duration
	Max   time.Duration
}

var global = struct {
	mu      sync.Mutex
	enabled bool
	entries []Entry
}{enabled: envEnabled()}

func envEnabled() bool {
	switch strings.ToLower(os.Getenv("EQUIREC_PROFILE")) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// Enabled reports whether measurements are being recorded.
func Enabled() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.enabled
}

// Enable turns collection on or off at runtime (CLI -profile flag,
// tests).
func Enable(on bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.enabled = on
}

// Reset discards all recorded entries.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.entries = nil
}

// Track starts timing the named operation and returns the stop
// function, meant to be deferred or called at the end of the stage:
//
//	stop := profiling.Track("remap")
//	...
//	stop()
//
// When collection is disabled the returned function is a no-op.
func Track(name string) func() {
	global.mu.Lock()
	on := global.enabled
	global.mu.Unlock()
	if !on {
		return func() {}
	}
	start := time.Now()
	return func() {
		d := time.Since(start)
		global.mu.Lock()
		if global.enabled {
			global.entries = append(global.entries, Entry{Name: name, Duration: d, When: time.Now()})
		}
		global.mu.Unlock()
	}
}

// Get returns the statistics for one operation name.
func Get(name string) OpStats {
	global.mu.Lock()
	defer global.mu.Unlock()

	var s OpStats
	for _, e := range global.entries {
		if e.Name != name {
			continue
		}
		if s.Count == 0 || e.Duration < s.Min {
			s.Min = e.Duration
		}
		if e.Duration > s.Max {
			s.Max = e.Duration
		}
		s.Count++
		s.Total += e.Duration
	}
	if s.Count > 0 {
		s.Mean = s.Total / time.Duration(s.Count)
	}
	return s
}

// All returns statistics for every recorded operation.
func All() map[string]OpStats {
	global.mu.Lock()
	names := make(map[string]bool, len(global.entries))
	for _, e := range global.entries {
		names[e.Name] = true
	}
	global.mu.Unlock()

	out := make(map[string]OpStats, len(names))
	for name := range names {
		out[name] = Get(name)
	}
	return out
}

// Summary formats all recorded statistics for human consumption.
func Summary() string {
	all := All()
	if len(all) == 0 {
		return "No profiling data collected."
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Profiling Summary\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	for _, name := range names {
		s := all[name]
		fmt.Fprintf(&b, "%s:\n", name)
		fmt.Fprintf(&b, "  Count: %d\n", s.Count)
		fmt.Fprintf(&b, "  Total: %v\n", s.Total)
		fmt.Fprintf(&b, "  Mean:  %v\n", s.Mean)
		fmt.Fprintf(&b, "  Min:   %v\n", s.Min)
		fmt.Fprintf(&b, "  Max:   %v\n", s.Max)
	}
	b.WriteString(strings.Repeat("=", 60))
	return b.String()
}
