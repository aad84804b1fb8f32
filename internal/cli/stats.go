package cli

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// runStats counts scan, cache and autofix events of one command run. It is
// registered as the observability hooks and summarized at debug level when
// the command finishes.
type runStats struct {
	scanned     atomic.Int64
	scanTime    atomic.Int64 // nanoseconds
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	cacheWrites atomic.Int64
	fixSteps    atomic.Int64
}

func (s *runStats) OnScanStart(context.Context, int) {}

func (s *runStats) OnScanComplete(_ context.Context, mods int, d time.Duration, _ error) {
	s.scanned.Add(int64(mods))
	s.scanTime.Add(int64(d))
}

func (s *runStats) OnFixStep(context.Context, string, string) {
	s.fixSteps.Add(1)
}

func (s *runStats) OnFixComplete(context.Context, int, int, time.Duration, error) {}

func (s *runStats) OnCacheHit(context.Context, string)  { s.cacheHits.Add(1) }
func (s *runStats) OnCacheMiss(context.Context, string) { s.cacheMisses.Add(1) }

func (s *runStats) OnCacheSet(context.Context, string, int) {
	s.cacheWrites.Add(1)
}

// summary returns a one-line report, or "" when nothing was recorded.
func (s *runStats) summary() string {
	if s.scanned.Load() == 0 && s.fixSteps.Load() == 0 {
		return ""
	}
	return fmt.Sprintf("%d mods scanned in %s, cache %d hits / %d misses / %d writes, %d fix steps",
		s.scanned.Load(), time.Duration(s.scanTime.Load()).Round(time.Millisecond),
		s.cacheHits.Load(), s.cacheMisses.Load(), s.cacheWrites.Load(), s.fixSteps.Load())
}
