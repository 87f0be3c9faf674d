package pageflip

import (
	"fmt"
	"time"
)

// Book owns the flips of a set of pages, the cursor of the page that is
// open, and the last pointer position. All of its methods must be called
// from one goroutine; pointer handlers and frames interleave but never
// overlap.
type Book struct {
	cfg     Config
	flips   []*Flip
	current int

	origin  Vec2
	pointer pointerState

	paintBuf      []int
	injectQueue   []syntheticPointerEvent
	snapshotQueue []string
	script        *Script
}

// NewBook creates one flip per page, all resting on the right, and stacks
// the pages so the first lies on top. It fails with ErrNoPages for an empty
// page list and with ErrInvalidConfig for a bad config or a nil page.
func NewBook(pages []PageSurface, cfg Config) (*Book, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	b := &Book{
		cfg:      cfg,
		flips:    make([]*Flip, len(pages)),
		paintBuf: make([]int, 0, len(pages)),
	}
	for i, p := range pages {
		if p == nil {
			return nil, fmt.Errorf("%w: page %d is nil", ErrInvalidConfig, i)
		}
		p.SetZIndex(len(pages) - i)
		b.flips[i] = newFlip(p)
	}
	return b, nil
}

// Config returns the book's configuration.
func (b *Book) Config() Config {
	return b.cfg
}

// Len returns the number of flips.
func (b *Book) Len() int {
	return len(b.flips)
}

// Flip returns the flip at index i.
func (b *Book) Flip(i int) *Flip {
	return b.flips[i]
}

// Flips returns every flip in index order. The returned slice MUST NOT be mutated.
func (b *Book) Flips() []*Flip {
	return b.flips
}

// CurrentPage returns the index of the boundary the book is open to, in
// [0, Len()].
func (b *Book) CurrentPage() int {
	return b.current
}

// SetCurrentPage moves the cursor without animating. Flips before page are
// put at rest on the left, the rest on the right.
func (b *Book) SetCurrentPage(page int) {
	page = min(max(page, 0), len(b.flips))
	b.current = page
	for i, f := range b.flips {
		rest := 1.0
		if i < page {
			rest = -1
		}
		f.Progress, f.Target, f.Dragging, f.turn = rest, rest, false, nil
	}
}

// Tick advances every flip one step and returns, in index order, the
// indices of the flips that must be painted this frame. A dragged flip first
// retargets to the pointer; a turning flip follows its tween. The returned
// slice is reused by the next call.
func (b *Book) Tick() []int {
	m := b.cfg.Motion
	dt := float32(1 / float64(m.TickRate))

	b.paintBuf = b.paintBuf[:0]
	for i, f := range b.flips {
		switch {
		case f.Dragging:
			f.SetDragTarget(b.pointer.x / b.cfg.Layout.PageWidth)
		case f.turn != nil:
			advanceTurn(f, dt)
		}
		f.Integrate(m.Smoothing)
		if f.NeedsPaint(m.SettleThreshold) {
			b.paintBuf = append(b.paintBuf, i)
		}
	}
	return b.paintBuf
}

// Frame renders one frame: it clears s, advances the simulation, and draws
// the fold of every flip still in motion, lowest index first so later flips
// overdraw earlier ones.
func (b *Book) Frame(s DrawingSurface) {
	var stats frameStats
	var t0 time.Time
	if b.cfg.Debug {
		t0 = time.Now()
	}

	if b.script != nil {
		b.script.step(b)
	}
	b.processInjectedInput()

	s.Clear()
	painted := b.Tick()

	if b.cfg.Debug {
		stats.tickTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, i := range painted {
		b.paintFlip(s, b.flips[i])
	}

	if b.cfg.Debug {
		stats.paintTime = time.Since(t0)
		stats.painted = len(painted)
		stats.flips = len(b.flips)
		b.debugLog(stats)
	}

	b.flushSnapshots(s)
}

// Start schedules Frame on s at the configured tick rate.
func (b *Book) Start(s DrawingSurface, sched Scheduler) {
	sched.Schedule(func() { b.Frame(s) }, b.cfg.Motion.Interval())
}

// paintFlip resizes the flip's page to the flat remainder and draws the
// fold relative to the book's center at the page top.
func (b *Book) paintFlip(s DrawingSurface, f *Flip) {
	l := b.cfg.Layout
	g := ComputeFold(f.Progress, l.PageWidth, b.cfg.Fold)
	f.Page.SetWidth(g.VisibleWidth())

	o := l.FoldOrigin()
	s.Save()
	s.Translate(o.X, o.Y)
	DrawFold(s, g, l.PageHeight, b.cfg.Fold)
	s.Restore()
}

// dragging returns the index of the flip being dragged, or -1.
func (b *Book) dragging() int {
	for i, f := range b.flips {
		if f.Dragging {
			return i
		}
	}
	return -1
}
