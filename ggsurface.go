package pageflip

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
)

// GGSurface rasterizes drawing calls into a gg context. Fills and strokes
// keep the current path, so the curled paper can be filled and outlined
// from one path.
type GGSurface struct {
	dc *gg.Context

	// SnapshotDir is where Snapshot writes PNG files.
	SnapshotDir string
}

// NewGGSurface creates a transparent surface of the given pixel size.
func NewGGSurface(width, height int) *GGSurface {
	return &GGSurface{dc: gg.NewContext(width, height), SnapshotDir: "screenshots"}
}

// NewGGSurfaceForLayout creates a surface sized for l, padding included.
func NewGGSurfaceForLayout(l Layout) *GGSurface {
	w, h := l.CanvasSize()
	return NewGGSurface(int(w), int(h))
}

// Context returns the underlying gg context.
func (s *GGSurface) Context() *gg.Context {
	return s.dc
}

// Image returns the rendered pixels.
func (s *GGSurface) Image() image.Image {
	return s.dc.Image()
}

// Width and Height return the surface size in pixels.
func (s *GGSurface) Width() int  { return s.dc.Width() }
func (s *GGSurface) Height() int { return s.dc.Height() }

func (s *GGSurface) Clear() {
	s.dc.Clear()
	s.dc.ClearPath()
}

func (s *GGSurface) Save()                       { s.dc.Push() }
func (s *GGSurface) Restore()                    { s.dc.Pop() }
func (s *GGSurface) Translate(x, y float64)      { s.dc.Translate(x, y) }
func (s *GGSurface) BeginPath()                  { s.dc.ClearPath() }
func (s *GGSurface) MoveTo(x, y float64)         { s.dc.MoveTo(x, y) }
func (s *GGSurface) LineTo(x, y float64)         { s.dc.LineTo(x, y) }
func (s *GGSurface) QuadTo(cx, cy, x, y float64) { s.dc.QuadraticTo(cx, cy, x, y) }

func (s *GGSurface) Fill(p Paint) {
	s.dc.SetFillBrush(s.brush(p))
	if err := s.dc.FillPreserve(); err != nil {
		Logger().Warn("pageflip: gg fill", "err", err)
	}
}

func (s *GGSurface) Stroke(p Paint, width float64) {
	if width <= 0 {
		return
	}
	s.dc.SetStrokeBrush(s.brush(p))
	s.dc.SetLineWidth(width)
	if err := s.dc.StrokePreserve(); err != nil {
		Logger().Warn("pageflip: gg stroke", "err", err)
	}
}

// brush converts p to a gg brush. Path points are transformed as they are
// added but brushes are sampled in device space, so gradient endpoints are
// mapped through the current transform here.
func (s *GGSurface) brush(p Paint) gg.Brush {
	switch p := p.(type) {
	case SolidPaint:
		return gg.Solid(ggColor(p.Color))
	case *LinearGradient:
		x0, y0 := s.dc.TransformPoint(p.X0, p.Y0)
		x1, y1 := s.dc.TransformPoint(p.X1, p.Y1)
		g := gg.NewLinearGradientBrush(x0, y0, x1, y1)
		for _, st := range p.Stops {
			g.AddColorStop(st.Offset, ggColor(st.Color))
		}
		return g
	default:
		return gg.Solid(gg.Transparent)
	}
}

func ggColor(c Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Snapshot writes the current pixels to SnapshotDir as a timestamped PNG.
func (s *GGSurface) Snapshot(label string) error {
	if err := os.MkdirAll(s.SnapshotDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.SnapshotDir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(s.SnapshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	return s.SavePNG(path)
}

// SavePNG writes the current pixels to path.
func (s *GGSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
