// Package sched provides a cooperative, single-threaded scheduler with a
// per-frame callback queue and millisecond timers on a virtual clock.
//
// Nothing runs on its own: the host advances time with Advance and flushes
// the frame queue with Frame. Every callback runs to completion before the
// next one starts, so callers never need locks. A Loop must only be used
// from one goroutine.
package sched

import (
	"container/heap"
	"time"
)

// task is one scheduled callback.
type task struct {
	fn        func()
	due       time.Duration // Virtual time at which the task fires
	interval  time.Duration // Repeat interval; 0 for one-shot timers and frames
	seq       uint64        // Scheduling order, breaks ties between equal due times
	cancelled bool
	done      bool
	index     int // Position in the timer heap, -1 when not queued
}

// Handle cancels a pending frame request or timer.
// The zero Handle is valid and refers to nothing.
type Handle struct {
	t *task
}

// Cancel stops the callback from firing. It is idempotent, safe on the
// zero Handle, and may be called from inside the callback itself.
func (h Handle) Cancel() {
	if h.t != nil {
		h.t.cancelled = true
	}
}

// Active reports whether the callback is still pending.
func (h Handle) Active() bool {
	return h.t != nil && !h.t.cancelled && !h.t.done
}

// Loop is a virtual-time scheduler. The zero value is not usable; call New.
type Loop struct {
	now    time.Duration
	seq    uint64
	timers timerHeap
	frames []*task
}

// New creates an empty loop at virtual time zero.
func New() *Loop {
	return &Loop{}
}

// Now returns the current virtual time.
func (l *Loop) Now() time.Duration {
	return l.now
}

// RequestFrame queues fn for the next Frame call.
func (l *Loop) RequestFrame(fn func()) Handle {
	t := &task{fn: fn, seq: l.nextSeq(), index: -1}
	l.frames = append(l.frames, t)
	return Handle{t: t}
}

// AfterFunc schedules fn to run once after d of virtual time.
// Negative durations are treated as zero.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	return l.schedule(max(d, 0), 0, fn)
}

// Every schedules fn to run every d of virtual time until cancelled.
// Non-positive intervals are raised to one millisecond so Advance terminates.
func (l *Loop) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	return l.schedule(d, d, fn)
}

func (l *Loop) schedule(d, interval time.Duration, fn func()) Handle {
	t := &task{
		fn:       fn,
		due:      l.now + d,
		interval: interval,
		seq:      l.nextSeq(),
	}
	heap.Push(&l.timers, t)
	return Handle{t: t}
}

func (l *Loop) nextSeq() uint64 {
	l.seq++
	return l.seq
}

// Advance moves virtual time forward by d, firing every timer that comes
// due in order. While a timer runs, Now reports its due time. Timers
// scheduled by a callback fire within the same call if they come due
// before the target time. Returns the number of callbacks run.
func (l *Loop) Advance(d time.Duration) int {
	target := l.now + max(d, 0)
	fired := 0

	for l.timers.Len() > 0 {
		next := l.timers[0]
		if next.cancelled {
			heap.Pop(&l.timers)
			continue
		}
		if next.due > target {
			break
		}

		heap.Pop(&l.timers)
		l.now = next.due
		next.fn()
		fired++

		if next.interval > 0 && !next.cancelled {
			next.due += next.interval
			next.seq = l.nextSeq()
			heap.Push(&l.timers, next)
		} else {
			next.done = true
		}
	}

	l.now = target
	return fired
}

// Frame runs the frame callbacks queued before this call, in request order.
// Callbacks requested while the batch runs are kept for the next Frame.
// Returns the number of callbacks run.
func (l *Loop) Frame() int {
	batch := l.frames
	l.frames = nil

	ran := 0
	for _, t := range batch {
		if t.cancelled {
			continue
		}
		t.done = true
		t.fn()
		ran++
	}
	return ran
}

// PendingFrames returns the number of live frame requests.
func (l *Loop) PendingFrames() int {
	n := 0
	for _, t := range l.frames {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// PendingTimers returns the number of live timers.
func (l *Loop) PendingTimers() int {
	n := 0
	for _, t := range l.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// timerHeap orders tasks by due time, then by scheduling order.
type timerHeap []*task

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
