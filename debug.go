package arix

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and instance metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime    time.Duration
	submitTime    time.Duration
	instanceCount int
	morph         float64
}

// debugLog prints timing and instance stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[arix] update: %v | submit: %v | total: %v\n",
		stats.updateTime, stats.submitTime, stats.updateTime+stats.submitTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[arix] instances: %d | morph: %.3f | t: %.2fs\n",
		stats.instanceCount, stats.morph, s.elapsed)
}
