package clock

import (
	"testing"
	"time"
)

func TestAfterFuncFiresInDeadlineOrder(t *testing.T) {
	l := NewFrameLoop()
	var got []int

	l.AfterFunc(300*time.Millisecond, func() { got = append(got, 3) })
	l.AfterFunc(100*time.Millisecond, func() { got = append(got, 1) })
	l.AfterFunc(200*time.Millisecond, func() { got = append(got, 2) })
	l.AfterFunc(100*time.Millisecond, func() { got = append(got, 11) })

	l.Advance(150 * time.Millisecond)
	if len(got) != 2 || got[0] != 1 || got[1] != 11 {
		t.Fatalf("after 150ms fired %v, want [1 11]", got)
	}

	l.Advance(time.Second)
	want := []int{1, 11, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fired %v, want %v", got, want)
		}
	}
	if l.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", l.Pending())
	}
}

func TestCancelPreventsTimer(t *testing.T) {
	l := NewFrameLoop()
	fired := false
	h := l.AfterFunc(time.Second, func() { fired = true })

	if !h.Cancel() {
		t.Fatal("first Cancel should report pending")
	}
	if h.Cancel() {
		t.Fatal("second Cancel should report not pending")
	}

	l.Advance(2 * time.Second)
	if fired {
		t.Fatal("cancelled timer fired")
	}
	if l.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", l.Pending())
	}
}

func TestRequestFrameRunsOncePerAdvance(t *testing.T) {
	l := NewFrameLoop()
	count := 0
	var tick func()
	tick = func() {
		count++
		l.RequestFrame(tick)
	}
	l.RequestFrame(tick)

	for i := 0; i < 5; i++ {
		l.Advance(time.Second / 60)
	}
	if count != 5 {
		t.Fatalf("frame callback ran %d times over 5 frames, want 5", count)
	}
	if l.Frame() != 5 {
		t.Fatalf("Frame() = %d, want 5", l.Frame())
	}
	if l.Pending() != 1 {
		t.Fatalf("pending = %d, want the re-requested frame", l.Pending())
	}
}

func TestCancelFrameFromEarlierCallback(t *testing.T) {
	l := NewFrameLoop()
	ran := false
	var second Handle
	l.RequestFrame(func() { second.Cancel() })
	second = l.RequestFrame(func() { ran = true })

	l.Advance(0)
	if ran {
		t.Fatal("frame callback cancelled earlier in the same frame still ran")
	}
}

func TestTimerScheduledDuringAdvanceWithZeroDelay(t *testing.T) {
	l := NewFrameLoop()
	var order []string
	l.AfterFunc(10*time.Millisecond, func() {
		order = append(order, "outer")
		l.AfterFunc(0, func() { order = append(order, "inner") })
	})

	l.Advance(10 * time.Millisecond)
	if len(order) != 2 || order[1] != "inner" {
		t.Fatalf("order = %v, want [outer inner]", order)
	}
}

func TestTimersRunBeforeFrames(t *testing.T) {
	l := NewFrameLoop()
	var order []string
	l.RequestFrame(func() { order = append(order, "frame") })
	l.AfterFunc(0, func() { order = append(order, "timer") })

	l.Advance(time.Millisecond)
	if len(order) != 2 || order[0] != "timer" || order[1] != "frame" {
		t.Fatalf("order = %v, want [timer frame]", order)
	}
}
