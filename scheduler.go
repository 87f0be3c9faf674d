package pageflip

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Scheduler calls fn repeatedly, every interval, for as long as it runs.
type Scheduler interface {
	Schedule(fn func(), interval time.Duration)
}

// ManualScheduler runs scheduled callbacks only when told to. It makes
// frame sequences deterministic in tests and offline renders.
type ManualScheduler struct {
	tasks []manualTask
}

type manualTask struct {
	fn       func()
	interval time.Duration
	elapsed  time.Duration
}

// Schedule registers fn.
func (m *ManualScheduler) Schedule(fn func(), interval time.Duration) {
	m.tasks = append(m.tasks, manualTask{fn: fn, interval: interval})
}

// Step runs every registered callback once, in registration order.
func (m *ManualScheduler) Step() {
	for i := range m.tasks {
		m.tasks[i].fn()
	}
}

// StepN calls Step n times.
func (m *ManualScheduler) StepN(n int) {
	for range n {
		m.Step()
	}
}

// Advance moves simulated time forward by d, running each callback once for
// every whole interval that elapses. Remainders carry over to the next call.
func (m *ManualScheduler) Advance(d time.Duration) {
	for i := range m.tasks {
		t := &m.tasks[i]
		if t.interval <= 0 {
			continue
		}
		t.elapsed += d
		for t.elapsed >= t.interval {
			t.elapsed -= t.interval
			t.fn()
		}
	}
}

// Loop is a single-goroutine event loop. Scheduled callbacks and posted
// events all run on the goroutine that called Run, one at a time and each to
// completion, so the state they share needs no locking.
type Loop struct {
	tasks  []manualTask
	events chan func()
}

// NewLoop creates a loop whose event queue holds up to backlog pending
// events before Post blocks.
func NewLoop(backlog int) *Loop {
	return &Loop{events: make(chan func(), backlog)}
}

// Schedule registers fn to run every interval once Run starts. It must be
// called before Run.
func (l *Loop) Schedule(fn func(), interval time.Duration) {
	l.tasks = append(l.tasks, manualTask{fn: fn, interval: interval})
}

// Post queues fn to run on the loop goroutine. Safe for concurrent use.
func (l *Loop) Post(fn func()) {
	l.events <- fn
}

// Run dispatches ticks and posted events until ctx is done, then returns
// ctx's error.
func (l *Loop) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	ticks := make(chan int)

	for i, t := range l.tasks {
		g.Go(func() error {
			tk := time.NewTicker(t.interval)
			defer tk.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-tk.C:
					select {
					case ticks <- i:
					case <-ctx.Done():
						return nil
					}
				}
			}
		})
	}

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case i := <-ticks:
				l.tasks[i].fn()
			case fn := <-l.events:
				fn()
			}
		}
	})
	return g.Wait()
}
