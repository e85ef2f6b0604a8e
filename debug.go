package canopy

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and scene metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime   time.Duration
	commandCount int
	objectCount  int
	layer        int
}

// debugLog prints frame stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	debugLogf("update: %v | commands: %d | objects: %d | layer: %d",
		stats.updateTime, stats.commandCount, stats.objectCount, stats.layer)
}

func debugLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[canopy] "+format+"\n", args...)
}

// debugWarn prints a warning about a call the engine answered with a default.
func debugWarn(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[canopy] warning: "+format+"\n", args...)
}
