package sched

import (
	"testing"
	"time"
)

func TestAfterFuncFiresOnce(t *testing.T) {
	l := New()
	calls := 0
	h := l.AfterFunc(100*time.Millisecond, func() { calls++ })

	if !h.Active() {
		t.Fatal("new timer should be active")
	}

	l.Advance(99 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("timer fired early after 99ms, calls = %d", calls)
	}

	l.Advance(1 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("timer should fire at 100ms, calls = %d", calls)
	}
	if h.Active() {
		t.Error("fired one-shot timer should no longer be active")
	}

	l.Advance(time.Second)
	if calls != 1 {
		t.Errorf("one-shot timer fired again, calls = %d", calls)
	}
}

func TestAfterFuncZeroDelay(t *testing.T) {
	l := New()
	fired := false
	l.AfterFunc(0, func() { fired = true })

	l.Advance(0)
	if !fired {
		t.Error("zero-delay timer should fire on Advance(0)")
	}
}

func TestNowDuringCallback(t *testing.T) {
	l := New()
	var seen time.Duration
	l.AfterFunc(30*time.Millisecond, func() { seen = l.Now() })

	l.Advance(100 * time.Millisecond)
	if seen != 30*time.Millisecond {
		t.Errorf("Now() inside callback = %v, expected 30ms", seen)
	}
	if l.Now() != 100*time.Millisecond {
		t.Errorf("Now() after Advance = %v, expected 100ms", l.Now())
	}
}

func TestTimersFireInDueOrder(t *testing.T) {
	l := New()
	var order []string
	l.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	l.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	l.AfterFunc(20*time.Millisecond, func() { order = append(order, "b1") })
	l.AfterFunc(20*time.Millisecond, func() { order = append(order, "b2") })

	if n := l.Advance(time.Second); n != 4 {
		t.Errorf("Advance returned %d, expected 4", n)
	}

	want := []string{"a", "b1", "b2", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, expected %v", order, want)
		}
	}
}

func TestSelfReschedulingTimer(t *testing.T) {
	l := New()
	calls := 0
	var fire func()
	fire = func() {
		calls++
		l.AfterFunc(10*time.Millisecond, fire)
	}
	l.AfterFunc(10*time.Millisecond, fire)

	l.Advance(100 * time.Millisecond)
	if calls != 10 {
		t.Errorf("self-rescheduling timer fired %d times in 100ms, expected 10", calls)
	}
}

func TestEveryRepeatsUntilCancelled(t *testing.T) {
	l := New()
	calls := 0
	h := l.Every(20*time.Millisecond, func() { calls++ })

	l.Advance(100 * time.Millisecond)
	if calls != 5 {
		t.Fatalf("Every(20ms) fired %d times in 100ms, expected 5", calls)
	}
	if !h.Active() {
		t.Fatal("interval timer should stay active")
	}

	h.Cancel()
	l.Advance(100 * time.Millisecond)
	if calls != 5 {
		t.Errorf("cancelled interval timer kept firing, calls = %d", calls)
	}
	if h.Active() {
		t.Error("cancelled interval timer reports active")
	}
}

func TestEveryCancelFromInside(t *testing.T) {
	l := New()
	calls := 0
	var h Handle
	h = l.Every(20*time.Millisecond, func() {
		calls++
		if calls == 3 {
			h.Cancel()
		}
	})

	l.Advance(time.Second)
	if calls != 3 {
		t.Errorf("interval timer should stop after cancelling itself on call 3, calls = %d", calls)
	}
	if l.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, expected 0", l.PendingTimers())
	}
}

func TestEveryNonPositiveInterval(t *testing.T) {
	l := New()
	calls := 0
	l.Every(0, func() { calls++ })

	l.Advance(5 * time.Millisecond)
	if calls != 5 {
		t.Errorf("Every(0) should tick each millisecond, calls = %d", calls)
	}
}

func TestZeroHandle(t *testing.T) {
	var h Handle
	h.Cancel() // must not panic
	if h.Active() {
		t.Error("zero handle should not be active")
	}
}

func TestFrameBatches(t *testing.T) {
	l := New()
	frames := 0
	var loop func()
	loop = func() {
		frames++
		l.RequestFrame(loop)
	}
	l.RequestFrame(loop)

	if l.PendingFrames() != 1 {
		t.Fatalf("PendingFrames() = %d, expected 1", l.PendingFrames())
	}

	for i := 0; i < 3; i++ {
		if n := l.Frame(); n != 1 {
			t.Fatalf("Frame() ran %d callbacks, expected 1", n)
		}
	}
	if frames != 3 {
		t.Errorf("frames = %d, expected 3 (one per Frame call)", frames)
	}
	if l.PendingFrames() != 1 {
		t.Errorf("re-requested frame should be pending, got %d", l.PendingFrames())
	}
}

func TestFrameCancel(t *testing.T) {
	l := New()
	ran := false
	h := l.RequestFrame(func() { ran = true })
	h.Cancel()

	if l.PendingFrames() != 0 {
		t.Errorf("PendingFrames() = %d after cancel, expected 0", l.PendingFrames())
	}
	if n := l.Frame(); n != 0 || ran {
		t.Errorf("cancelled frame ran (n=%d, ran=%v)", n, ran)
	}
}

func TestFrameHandleDoneAfterRun(t *testing.T) {
	l := New()
	h := l.RequestFrame(func() {})
	l.Frame()
	if h.Active() {
		t.Error("frame handle should be inactive after the frame ran")
	}
}

func TestPendingTimersSkipsCancelled(t *testing.T) {
	l := New()
	a := l.AfterFunc(time.Second, func() {})
	l.AfterFunc(time.Second, func() {})
	a.Cancel()

	if got := l.PendingTimers(); got != 1 {
		t.Errorf("PendingTimers() = %d, expected 1", got)
	}
}

func TestAdvanceNegative(t *testing.T) {
	l := New()
	l.Advance(10 * time.Millisecond)
	l.Advance(-5 * time.Millisecond)
	if l.Now() != 10*time.Millisecond {
		t.Errorf("negative Advance moved time to %v", l.Now())
	}
}
