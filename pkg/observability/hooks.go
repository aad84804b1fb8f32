// Package observability provides hooks for metrics and logging.
//
// The loaders and the CLI emit events through package-level hooks without
// depending on a metrics backend. The defaults do nothing; a binary
// registers its own implementations at startup:
//
//	func main() {
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scan().OnScanStart(ctx, len(dirs))
//	// ... read About.xml files ...
//	observability.Scan().OnScanComplete(ctx, mods, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Scan Hooks
// =============================================================================

// ScanHooks receives events from the mod folder scanner.
type ScanHooks interface {
	// OnScanStart is called before the first folder is read.
	OnScanStart(ctx context.Context, folders int)

	// OnScanComplete is called with the number of usable mods found.
	OnScanComplete(ctx context.Context, mods int, duration time.Duration, err error)
}

// =============================================================================
// Fix Hooks
// =============================================================================

// FixHooks receives events from the autofix loop.
type FixHooks interface {
	// OnFixStep records one repair; relation and action are display names.
	OnFixStep(ctx context.Context, relation, action string)

	// OnFixComplete records the end of a run and the issues left.
	OnFixComplete(ctx context.Context, steps, remaining int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScanHooks is a no-op implementation of ScanHooks.
type NoopScanHooks struct{}

func (NoopScanHooks) OnScanStart(context.Context, int)                          {}
func (NoopScanHooks) OnScanComplete(context.Context, int, time.Duration, error) {}

// NoopFixHooks is a no-op implementation of FixHooks.
type NoopFixHooks struct{}

func (NoopFixHooks) OnFixStep(context.Context, string, string)                     {}
func (NoopFixHooks) OnFixComplete(context.Context, int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scanHooks  ScanHooks  = NoopScanHooks{}
	fixHooks   FixHooks   = NoopFixHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetScanHooks registers custom scan hooks. Nil is ignored.
func SetScanHooks(h ScanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scanHooks = h
	}
}

// SetFixHooks registers custom autofix hooks. Nil is ignored.
func SetFixHooks(h FixHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fixHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Scan returns the registered scan hooks.
func Scan() ScanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scanHooks
}

// Fix returns the registered autofix hooks.
func Fix() FixHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fixHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scanHooks = NoopScanHooks{}
	fixHooks = NoopFixHooks{}
	cacheHooks = NoopCacheHooks{}
}
