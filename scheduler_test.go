package pageflip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestManualSchedulerStep(t *testing.T) {
	var sched ManualScheduler
	var calls []string
	sched.Schedule(func() { calls = append(calls, "a") }, time.Second)
	sched.Schedule(func() { calls = append(calls, "b") }, time.Millisecond)

	sched.Step()
	sched.StepN(2)
	want := []string{"a", "b", "a", "b", "a", "b"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestManualSchedulerAdvance(t *testing.T) {
	var sched ManualScheduler
	n := 0
	sched.Schedule(func() { n++ }, 10*time.Millisecond)

	tests := []struct {
		d    time.Duration
		want int
	}{
		{5 * time.Millisecond, 0},
		{5 * time.Millisecond, 1},
		{25 * time.Millisecond, 3},
		{5 * time.Millisecond, 4},
		{0, 4},
	}
	for i, tt := range tests {
		sched.Advance(tt.d)
		if n != tt.want {
			t.Fatalf("step %d: Advance(%v) total calls = %d, want %d", i, tt.d, n, tt.want)
		}
	}
}

func TestManualSchedulerAdvanceSkipsZeroInterval(t *testing.T) {
	var sched ManualScheduler
	n := 0
	sched.Schedule(func() { n++ }, 0)
	sched.Advance(time.Second)
	if n != 0 {
		t.Errorf("calls = %d, want 0", n)
	}
}

func TestBookStartAdvancesAtTickRate(t *testing.T) {
	b, _ := newTestBook(t, 2, nil)
	var r Recorder
	var sched ManualScheduler
	b.Start(&r, &sched)

	sched.Advance(time.Second)
	if got := r.Count(OpClear); got != 60 {
		t.Errorf("frames in one second = %d, want 60", got)
	}
}

func TestLoopRunsTicksAndEvents(t *testing.T) {
	loop := NewLoop(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := 0
	loop.Schedule(func() {
		ticks++
		if ticks == 3 {
			loop.Post(cancel)
		}
	}, time.Millisecond)

	var order []string
	loop.Post(func() { order = append(order, "event") })

	err := loop.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if ticks < 3 {
		t.Errorf("ticks = %d, want at least 3", ticks)
	}
	if diff := cmp.Diff([]string{"event"}, order); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestLoopDrivesBook(t *testing.T) {
	b, _ := newTestBook(t, 3, nil)
	b.Flip(0).Target = -1

	loop := NewLoop(1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var r Recorder
	b.Start(&r, loop)
	loop.Schedule(func() {
		if b.Flip(0).Progress <= -0.997 {
			cancel()
		}
	}, time.Millisecond)
	loop.Post(func() {
		b.PointerMove(screenX(300), 120)
	})

	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if got := b.Pointer(); got.X != 300 {
		t.Errorf("posted move not applied: pointer x = %v", got.X)
	}
	if r.Count(OpClear) < 20 {
		t.Errorf("only %d frames ran", r.Count(OpClear))
	}
}
