package rate_limiter

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(rps float64, burst int) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)}
	l := New(rps, burst)
	l.now = clock.Now
	return l, clock
}

func TestAllow_BurstThenRefill(t *testing.T) {
	l, clock := newTestLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d within burst was rejected", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Fatalf("expected request beyond burst to be rejected")
	}

	clock.Advance(time.Second)
	if !l.Allow("10.0.0.1") {
		t.Errorf("expected a token after one second")
	}
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, 1)

	if !l.Allow("10.0.0.1") {
		t.Fatalf("first client rejected")
	}
	if !l.Allow("10.0.0.2") {
		t.Errorf("second client should have its own bucket")
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 tracked clients, got %d", l.Len())
	}
}

func TestEvictIdle(t *testing.T) {
	l, clock := newTestLimiter(1, 1)

	l.GetVisitor("old")
	clock.Advance(10 * time.Minute)
	l.GetVisitor("fresh")

	if n := l.EvictIdle(DefaultIdleTTL); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if l.Len() != 1 {
		t.Errorf("expected only the fresh client to remain, got %d", l.Len())
	}
}

func TestCleanupAllVisitors(t *testing.T) {
	l, _ := newTestLimiter(1, 1)
	l.GetVisitor("a")
	l.GetVisitor("b")

	l.CleanupAllVisitors()

	if l.Len() != 0 {
		t.Errorf("expected no clients, got %d", l.Len())
	}
}

func TestStartVisitorCleanupLoop_StopsOnCancel(t *testing.T) {
	l := New(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.StartVisitorCleanupLoop(ctx, time.Millisecond, time.Hour)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop after cancel")
	}
}
