package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopScanHooks{}
	s.OnScanStart(ctx, 3)
	s.OnScanComplete(ctx, 120, time.Second, nil)

	f := NoopFixHooks{}
	f.OnFixStep(ctx, "after", "moved target")
	f.OnFixComplete(ctx, 10, 0, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "about")
	c.OnCacheMiss(ctx, "about")
	c.OnCacheSet(ctx, "about", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Scan().(NoopScanHooks); !ok {
		t.Error("Scan() should return NoopScanHooks by default")
	}
	if _, ok := Fix().(NoopFixHooks); !ok {
		t.Error("Fix() should return NoopFixHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customScan := &testScanHooks{}
	SetScanHooks(customScan)
	if Scan() != customScan {
		t.Error("SetScanHooks should set custom hooks")
	}

	customFix := &testFixHooks{}
	SetFixHooks(customFix)
	if Fix() != customFix {
		t.Error("SetFixHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Scan().(NoopScanHooks); !ok {
		t.Error("Reset() should restore NoopScanHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testFixHooks{}
	SetFixHooks(custom)
	SetFixHooks(nil)

	if Fix() != custom {
		t.Error("SetFixHooks(nil) should be ignored")
	}
}

// Test implementations
type testScanHooks struct{ NoopScanHooks }
type testFixHooks struct{ NoopFixHooks }
type testCacheHooks struct{ NoopCacheHooks }
