package pageflip

// PageSurface is a page panel owned by the embedding UI. The book only
// resizes it horizontally and orders it in the stack.
type PageSurface interface {
	SetWidth(w float64)
	SetZIndex(z int)
}

// DrawingSurface is a 2D immediate-mode vector target. Path operations
// accumulate into a current path that survives Fill and Stroke until the
// next BeginPath, so a shape can be filled and then outlined.
type DrawingSurface interface {
	// Clear erases the whole surface to transparent.
	Clear()

	Save()
	Restore()
	Translate(x, y float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)

	Fill(p Paint)
	Stroke(p Paint, width float64)
}

// Paint is what a fill or stroke is drawn with: a SolidPaint or a
// *LinearGradient.
type Paint interface {
	paint()
}

// SolidPaint paints a single color.
type SolidPaint struct {
	Color Color
}

func (SolidPaint) paint() {}

// Solid returns a SolidPaint of c.
func Solid(c Color) SolidPaint {
	return SolidPaint{Color: c}
}

// ColorStop is a color at an offset in [0, 1] along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// LinearGradient blends its stops along the segment (X0, Y0)-(X1, Y1),
// expressed in the coordinates current when the paint is used. Colors are
// padded beyond the first and last stop.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

func (*LinearGradient) paint() {}

// NewLinearGradient creates a gradient with no stops.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop appends a stop and returns g for chaining.
func (g *LinearGradient) AddColorStop(offset float64, c Color) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}
