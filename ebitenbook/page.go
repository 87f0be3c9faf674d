package ebitenbook

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Page is a page panel backed by an ebiten image. The book narrows it from
// the right as the fold advances; only the leftmost Width pixels are drawn.
type Page struct {
	Image *ebiten.Image

	width float64
	z     int
}

// NewPage wraps img, initially shown at its full width.
func NewPage(img *ebiten.Image) *Page {
	return &Page{Image: img, width: float64(img.Bounds().Dx())}
}

// SetWidth sets how many pixels of the page are shown.
func (p *Page) SetWidth(w float64) {
	p.width = w
}

// SetZIndex sets the stacking order. Higher values draw on top.
func (p *Page) SetZIndex(z int) {
	p.z = z
}

// Width returns the shown width.
func (p *Page) Width() float64 {
	return p.width
}

// ZIndex returns the stacking order.
func (p *Page) ZIndex() int {
	return p.z
}

// visible returns the shown part of the image, or nil if none is shown.
func (p *Page) visible() *ebiten.Image {
	b := p.Image.Bounds()
	w := min(int(p.width), b.Dx())
	if w <= 0 {
		return nil
	}
	return p.Image.SubImage(image.Rect(b.Min.X, b.Min.Y, b.Min.X+w, b.Max.Y)).(*ebiten.Image)
}
