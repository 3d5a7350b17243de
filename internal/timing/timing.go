// Package timing collects labeled wall-clock measurements across a run.
package timing

import (
	"sync"
	"time"
)

// Sample is one labeled measurement.
type Sample struct {
	Label   string
	Elapsed time.Duration
}

// Collector accumulates samples in arrival order. The zero value is ready to
// use and safe for concurrent callers.
type Collector struct {
	mu      sync.Mutex
	samples []Sample
}

// Track records the time elapsed since start under the given label.
func (c *Collector) Track(start time.Time, label string) {
	elapsed := time.Since(start)
	c.mu.Lock()
	c.samples = append(c.samples, Sample{Label: label, Elapsed: elapsed})
	c.mu.Unlock()
}

// Drain returns the collected samples and clears the collector.
func (c *Collector) Drain() []Sample {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Sample, len(c.samples))
	copy(out, c.samples)
	c.samples = nil
	return out
}
