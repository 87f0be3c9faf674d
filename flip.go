package pageflip

import (
	"math"

	"github.com/tanema/gween"
)

// Flip is the animation state of one page-turn boundary. Progress runs from
// -1 (turned fully left) through 0 (standing vertical) to +1 (resting on the
// right). Progress is never clamped; it converges on Target, which is.
type Flip struct {
	Page     PageSurface
	Progress float64
	Target   float64
	Dragging bool

	// turn drives Target while a programmatic page turn is running.
	turn *gween.Tween
}

// newFlip returns a flip resting on the right.
func newFlip(page PageSurface) *Flip {
	return &Flip{Page: page, Progress: 1, Target: 1}
}

// SetDragTarget points the flip at ratio, clamped to [-1, 1].
func (f *Flip) SetDragTarget(ratio float64) {
	f.Target = clamp(ratio, -1, 1)
}

// Integrate moves Progress a fraction alpha of the way toward Target.
func (f *Flip) Integrate(alpha float64) {
	f.Progress += (f.Target - f.Progress) * alpha
}

// Strength is 1 - |Progress|: 1 standing vertical, 0 at either rest pose.
func (f *Flip) Strength() float64 {
	return 1 - math.Abs(f.Progress)
}

// Turning reports whether a programmatic turn is animating this flip.
func (f *Flip) Turning() bool {
	return f.turn != nil
}

// NeedsPaint reports whether the flip is still visibly moving. Flips at or
// past threshold that nobody is dragging are left alone.
func (f *Flip) NeedsPaint(threshold float64) bool {
	return f.Dragging || math.Abs(f.Progress) < threshold
}
