package pageflip

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TurnNext turns the page at the cursor over to the left without a drag.
// The cursor moves immediately; the flip's target follows an eased tween
// over Motion.TurnSeconds and the integrator smooths on top of it. It does
// nothing and returns false at the last page or while another drag or turn
// is in progress.
func (b *Book) TurnNext() bool {
	if b.current >= len(b.flips)-1 || b.busy() {
		return false
	}
	b.startTurn(b.flips[b.current], -1)
	b.current++
	return true
}

// TurnPrev turns the previous page back to the right. It returns false at
// the first page or while another drag or turn is in progress.
func (b *Book) TurnPrev() bool {
	if b.current == 0 || b.busy() {
		return false
	}
	b.current--
	b.startTurn(b.flips[b.current], 1)
	return true
}

// Turning reports whether any programmatic turn is still animating.
func (b *Book) Turning() bool {
	for _, f := range b.flips {
		if f.turn != nil {
			return true
		}
	}
	return false
}

func (b *Book) busy() bool {
	for _, f := range b.flips {
		if f.Dragging || f.turn != nil {
			return true
		}
	}
	return false
}

func (b *Book) startTurn(f *Flip, to float64) {
	f.turn = gween.New(float32(f.Target), float32(to), float32(b.cfg.Motion.TurnSeconds), ease.InOutQuad)
	Logger().Debug("pageflip: turn", "to", to, "page", b.current)
}

// advanceTurn steps f's tween by dt seconds and retargets the flip. The
// tween is dropped once it finishes, leaving the target at its end value.
func advanceTurn(f *Flip, dt float32) {
	v, done := f.turn.Update(dt)
	f.SetDragTarget(float64(v))
	if done {
		f.turn = nil
	}
}
