// Package clock provides the timer and frame facility the balloon simulation
// runs on. Time is virtual: it only moves when the host loop calls Advance,
// so the same code runs under ebiten, the headless ticker and tests.
package clock

import (
	"slices"
	"time"
)

// Handle is a pending callback that can be cancelled.
type Handle interface {
	// Cancel stops the callback from running. It reports whether the
	// callback was still pending.
	Cancel() bool
}

// Scheduler is what the simulation needs from its host: coarse one-shot
// timers and a display-synchronized next-frame callback.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Handle
	RequestFrame(fn func()) Handle
}

type entry struct {
	loop     *FrameLoop
	fn       func()
	deadline time.Duration
	seq      uint64
	frame    bool
	done     bool
}

func (e *entry) Cancel() bool {
	if e.done {
		return false
	}
	e.done = true
	e.loop.remove(e)
	return true
}

// FrameLoop is a single-threaded Scheduler driven by Advance. Each call to
// Advance is one display frame. Not safe for concurrent use.
type FrameLoop struct {
	now    time.Duration
	frame  uint64
	seq    uint64
	timers []*entry // sorted by deadline, then seq
	frames []*entry
}

// NewFrameLoop returns a loop at virtual time zero.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// AfterFunc schedules fn to run once the loop has advanced d past now.
func (l *FrameLoop) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	l.seq++
	e := &entry{loop: l, fn: fn, deadline: l.now + d, seq: l.seq}
	i, _ := slices.BinarySearchFunc(l.timers, e, compareTimers)
	l.timers = slices.Insert(l.timers, i, e)
	return e
}

// RequestFrame schedules fn to run on the next Advance. Callbacks requested
// while a frame is running are deferred to the following frame.
func (l *FrameLoop) RequestFrame(fn func()) Handle {
	l.seq++
	e := &entry{loop: l, fn: fn, seq: l.seq, frame: true}
	l.frames = append(l.frames, e)
	return e
}

// Advance moves virtual time forward by dt, fires every due timer in
// deadline order and then runs the frame callbacks that were pending when
// the frame started.
func (l *FrameLoop) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	l.now += dt

	for len(l.timers) > 0 && l.timers[0].deadline <= l.now {
		e := l.timers[0]
		l.timers = l.timers[1:]
		e.done = true
		e.fn()
	}

	batch := l.frames
	l.frames = nil
	l.frame++
	for _, e := range batch {
		// A callback earlier in the batch may have cancelled this one.
		if e.done {
			continue
		}
		e.done = true
		e.fn()
	}
}

// Now returns the elapsed virtual time.
func (l *FrameLoop) Now() time.Duration {
	return l.now
}

// Frame returns how many frames have been run.
func (l *FrameLoop) Frame() uint64 {
	return l.frame
}

// Pending returns the number of timers and frame callbacks still waiting.
func (l *FrameLoop) Pending() int {
	return len(l.timers) + len(l.frames)
}

func (l *FrameLoop) remove(e *entry) {
	if e.frame {
		l.frames = slices.DeleteFunc(l.frames, func(x *entry) bool { return x == e })
		return
	}
	l.timers = slices.DeleteFunc(l.timers, func(x *entry) bool { return x == e })
}

func compareTimers(a, b *entry) int {
	switch {
	case a.deadline < b.deadline:
		return -1
	case a.deadline > b.deadline:
		return 1
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}
