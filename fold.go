package pageflip

import "math"

// Paper tones of the curled page, from its far edge to the crease.
var (
	paperLight = rgb8(0xfa, 0xfa, 0xfa)
	paperMid   = rgb8(0xee, 0xee, 0xee)
	paperDark  = rgb8(0xe2, 0xe2, 0xe2)
)

// FoldStyle holds the tuned shading constants of the fold. The values in
// DefaultFoldStyle are empirical and reproduce the reference look exactly.
type FoldStyle struct {
	// OutdentScale is how far, at mid-turn, the curled paper bulges past the
	// page's top and bottom edges.
	OutdentScale float64 `yaml:"outdentScale"`

	// ContactAlpha and ContactWidth scale the crease's hard shadow line.
	ContactAlpha float64 `yaml:"contactAlpha"`
	ContactWidth float64 `yaml:"contactWidth"`

	RightShadowAlpha float64 `yaml:"rightShadowAlpha"`
	// RightShadowFade is the gradient offset where the right shadow is
	// fully transparent.
	RightShadowFade float64 `yaml:"rightShadowFade"`
	LeftShadowAlpha float64 `yaml:"leftShadowAlpha"`

	// ShadowAlphaFloor zeroes drop-shadow opacities below it. 0 disables.
	ShadowAlphaFloor float64 `yaml:"shadowAlphaFloor"`

	OutlineAlpha float64 `yaml:"outlineAlpha"`
	OutlineWidth float64 `yaml:"outlineWidth"`
}

// DefaultFoldStyle returns the reference shading constants.
func DefaultFoldStyle() FoldStyle {
	return FoldStyle{
		OutdentScale:     20,
		ContactAlpha:     0.05,
		ContactWidth:     30,
		RightShadowAlpha: 0.2,
		RightShadowFade:  0.8,
		LeftShadowAlpha:  0.15,
		OutlineAlpha:     0.06,
		OutlineWidth:     0.5,
	}
}

// FoldGeometry is everything derived from one flip's progress that the
// shader needs. X values are relative to the book's horizontal center.
type FoldGeometry struct {
	Progress float64
	Strength float64

	// FoldWidth is the horizontal extent of the curled part of the page.
	FoldWidth float64
	// FoldX is the outer edge of the curl. The crease sits at FoldX-FoldWidth.
	FoldX float64
	// VerticalOutdent is how far the curl bulges above and below the page.
	VerticalOutdent float64

	PaperShadowWidth float64
	RightShadowWidth float64
	LeftShadowWidth  float64
}

// ComputeFold derives the fold of a page of the given width at progress p.
func ComputeFold(p, pageWidth float64, style FoldStyle) FoldGeometry {
	half := pageWidth * 0.5
	strength := 1 - math.Abs(p)
	foldWidth := half * (1 - p)
	return FoldGeometry{
		Progress:         p,
		Strength:         strength,
		FoldWidth:        foldWidth,
		FoldX:            pageWidth*p + foldWidth,
		VerticalOutdent:  style.OutdentScale * strength,
		PaperShadowWidth: half * clamp(1-p, 0, 0.5),
		RightShadowWidth: half * clamp(strength, 0, 0.5),
		LeftShadowWidth:  half * clamp(strength, 0, 0.5),
	}
}

// Crease returns the x coordinate of the fold line.
func (g FoldGeometry) Crease() float64 {
	return g.FoldX - g.FoldWidth
}

// VisibleWidth is the width the flat remainder of the page is given while
// the fold is drawn: FoldX, never negative.
func (g FoldGeometry) VisibleWidth() float64 {
	return max(g.FoldX, 0)
}

// DrawFold paints g onto s in four layers: the crease's contact shadow, the
// drop shadows either side of the curl, then the curled paper itself. The
// surface must already be translated so the origin is the book's center at
// the page's top edge.
func DrawFold(s DrawingSurface, g FoldGeometry, pageHeight float64, style FoldStyle) {
	drawContactShadow(s, g, pageHeight, style)
	drawDropShadows(s, g, pageHeight, style)
	drawPaper(s, g, pageHeight, style)
}

func drawContactShadow(s DrawingSurface, g FoldGeometry, pageHeight float64, style FoldStyle) {
	x := g.Crease()
	s.BeginPath()
	s.MoveTo(x, -g.VerticalOutdent*0.5)
	s.LineTo(x, pageHeight+g.VerticalOutdent*0.5)
	s.Stroke(Solid(Black(style.ContactAlpha*g.Strength)), style.ContactWidth*g.Strength)
}

func drawDropShadows(s DrawingSurface, g FoldGeometry, pageHeight float64, style FoldStyle) {
	right := NewLinearGradient(g.FoldX, 0, g.FoldX+g.RightShadowWidth, 0).
		AddColorStop(0, Black(style.shadowAlpha(style.RightShadowAlpha*g.Strength))).
		AddColorStop(style.RightShadowFade, Black(0))
	fillRect(s, g.FoldX, g.FoldX+g.RightShadowWidth, pageHeight, right)

	crease := g.Crease()
	left := NewLinearGradient(crease-g.LeftShadowWidth, 0, crease, 0).
		AddColorStop(0, Black(0)).
		AddColorStop(1, Black(style.shadowAlpha(style.LeftShadowAlpha*g.Strength)))
	fillRect(s, crease-g.LeftShadowWidth, crease, pageHeight, left)
}

// drawPaper fills the curled page. Its top and bottom edges are quadratic
// curves from the outer edge back to the crease, pushed out by the outdent.
func drawPaper(s DrawingSurface, g FoldGeometry, pageHeight float64, style FoldStyle) {
	x, crease, out := g.FoldX, g.Crease(), g.VerticalOutdent

	s.BeginPath()
	s.MoveTo(x, 0)
	s.LineTo(x, pageHeight)
	s.QuadTo(x, pageHeight+out*2, crease, pageHeight+out)
	s.LineTo(crease, -out)
	s.QuadTo(x, -out*2, x, 0)

	paper := NewLinearGradient(x-g.PaperShadowWidth, 0, x, 0).
		AddColorStop(0.35, paperLight).
		AddColorStop(0.73, paperMid).
		AddColorStop(0.9, paperLight).
		AddColorStop(1, paperDark)
	s.Fill(paper)
	s.Stroke(Solid(Black(style.OutlineAlpha)), style.OutlineWidth)
}

// fillRect fills the full-height band between x0 and x1.
func fillRect(s DrawingSurface, x0, x1, height float64, p Paint) {
	s.BeginPath()
	s.MoveTo(x0, 0)
	s.LineTo(x1, 0)
	s.LineTo(x1, height)
	s.LineTo(x0, height)
	s.Fill(p)
}

func (st FoldStyle) shadowAlpha(a float64) float64 {
	if a < st.ShadowAlphaFloor {
		return 0
	}
	return a
}
