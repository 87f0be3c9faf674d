package pageflip

import "math"

// pointerState is the last pointer position in book-local coordinates:
// x from the book's horizontal center, y from its top edge.
type pointerState struct {
	x, y float64
	down bool
}

// SetOrigin sets the screen position of the book's top-left corner, used to
// convert screen coordinates to book-local ones.
func (b *Book) SetOrigin(x, y float64) {
	b.origin = Vec2{X: x, Y: y}
}

// Origin returns the screen position of the book's top-left corner.
func (b *Book) Origin() Vec2 {
	return b.origin
}

// Pointer returns the last pointer position in book-local coordinates.
func (b *Book) Pointer() Vec2 {
	return Vec2{X: b.pointer.x, Y: b.pointer.y}
}

// PointerMove records the pointer at the given screen coordinates. It has
// no effect on any flip until the next Tick or press.
func (b *Book) PointerMove(screenX, screenY float64) {
	b.pointer.x = screenX - b.origin.X - b.cfg.Layout.BookWidth/2
	b.pointer.y = screenY - b.origin.Y
}

// PointerDown starts dragging the flip the pointer is over, if any, and
// returns its index. A press left of center grabs the previous page, right
// of center the next one. Nothing is grabbed when the pointer is outside the
// page band, when the cursor is at the matching end of the book, or when a
// flip is already being dragged.
func (b *Book) PointerDown() (int, bool) {
	b.pointer.down = true

	l := b.cfg.Layout
	x, y := b.pointer.x, b.pointer.y
	if math.Abs(x) >= l.PageWidth {
		return -1, false
	}
	if b.cfg.Input.StrictVertical && (y <= 0 || y >= l.BookHeight) {
		return -1, false
	}
	if i := b.dragging(); i >= 0 {
		return i, false
	}

	idx := -1
	switch {
	case x < 0 && b.current > 0:
		idx = b.current - 1
	case x > 0 && b.current < len(b.flips)-1:
		idx = b.current
	}
	if idx < 0 {
		return -1, false
	}

	f := b.flips[idx]
	f.Dragging = true
	f.turn = nil
	Logger().Debug("pageflip: drag start", "flip", idx, "x", x, "page", b.current)
	return idx, true
}

// PointerUp ends any drag. A flip released left of center settles turned
// over, one released right of center settles back at rest, and the cursor
// follows according to the commit policy. Every flip's Dragging flag is
// cleared.
func (b *Book) PointerUp() {
	b.pointer.down = false

	always := b.cfg.Input.Commit == CommitAlways
	for i, f := range b.flips {
		if f.Dragging {
			if b.pointer.x < 0 {
				f.Target = -1
				if always || i == b.current {
					b.current = min(b.current+1, len(b.flips))
				}
			} else {
				f.Target = 1
				if always || i != b.current {
					b.current = max(b.current-1, 0)
				}
			}
			Logger().Debug("pageflip: drag end", "flip", i, "target", f.Target, "page", b.current)
		}
		f.Dragging = false
	}
}

// HandlePointer feeds one polled pointer sample through the press/move/
// release state machine: the position is always recorded, and a change in
// pressed state fires PointerDown or PointerUp.
func (b *Book) HandlePointer(screenX, screenY float64, pressed bool) {
	b.PointerMove(screenX, screenY)
	switch {
	case pressed && !b.pointer.down:
		b.PointerDown()
	case !pressed && b.pointer.down:
		b.PointerUp()
	}
}
