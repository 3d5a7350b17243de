package timing

import (
	"sync"
	"testing"
	"time"
)

func TestTrackAndDrain(t *testing.T) {
	var c Collector
	start := time.Now().Add(-time.Millisecond)
	c.Track(start, "first")
	c.Track(time.Now(), "second")

	samples := c.Drain()
	if len(samples) != 2 {
		t.Fatalf("samples: got %d, want 2", len(samples))
	}
	if samples[0].Label != "first" || samples[1].Label != "second" {
		t.Fatalf("labels out of order: %+v", samples)
	}
	if samples[0].Elapsed < time.Millisecond {
		t.Fatalf("elapsed too small: %v", samples[0].Elapsed)
	}
	if again := c.Drain(); len(again) != 0 {
		t.Fatalf("drain did not clear: %d samples left", len(again))
	}
}

func TestConcurrentTrack(t *testing.T) {
	var c Collector
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Track(time.Now(), "worker")
			}
		}()
	}
	wg.Wait()
	if got := len(c.Drain()); got != 800 {
		t.Fatalf("samples: got %d, want 800", got)
	}
}
