// Package ebitenbook hosts a pageflip.Book in an Ebitengine window. The
// game loop is the book's scheduler, mouse and touch input become pointer
// events, pages are clipped ebiten images, and the fold is rasterized with
// gg and uploaded as a texture each frame.
package ebitenbook

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/pageflip"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	Background    color.Color

	// BookX and BookY place the book's top-left corner in the window.
	BookX, BookY float64
}

// Game implements ebiten.Game and pageflip.Scheduler.
type Game struct {
	book    *pageflip.Book
	order   []*Page
	surface *pageflip.GGSurface
	canvas  *ebiten.Image
	cfg     RunConfig

	frame    func()
	touchID  ebiten.TouchID
	touching bool
	fps      *fpsWidget
}

// NewGame wires book to a window. pages must be the surfaces the book was
// built from, in the same order.
func NewGame(book *pageflip.Book, pages []*Page, cfg RunConfig) (*Game, error) {
	if len(pages) != book.Len() {
		return nil, fmt.Errorf("ebitenbook: %d pages for a book of %d", len(pages), book.Len())
	}
	if cfg.Background == nil {
		cfg.Background = color.RGBA{0x30, 0x30, 0x38, 0xff}
	}
	book.SetOrigin(cfg.BookX, cfg.BookY)

	surface := pageflip.NewGGSurfaceForLayout(book.Config().Layout)
	g := &Game{
		book:    book,
		order:   slices.Clone(pages),
		surface: surface,
		canvas:  ebiten.NewImage(surface.Width(), surface.Height()),
		cfg:     cfg,
	}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return g, nil
}

// Schedule makes fn the per-tick callback and sets the tick rate from
// interval.
func (g *Game) Schedule(fn func(), interval time.Duration) {
	g.frame = fn
	if interval > 0 {
		ebiten.SetTPS(int(time.Second / interval))
	}
}

// Surface returns the raster the fold is drawn into.
func (g *Game) Surface() *pageflip.GGSurface {
	return g.surface
}

// Update polls input and runs one book frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.book.TurnNext()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.book.TurnPrev()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.book.Snapshot("book")
	}

	// Injected input takes the frame; real input waits until it drains.
	if g.book.PendingInput() == 0 {
		g.pollPointer()
	}
	if g.frame != nil {
		g.frame()
	}
	if g.fps != nil {
		g.fps.update(1 / float64(ebiten.TPS()))
	}
	return nil
}

// pollPointer feeds the mouse, or the first active touch, to the book.
func (g *Game) pollPointer() {
	touches := inpututil.AppendJustPressedTouchIDs(nil)
	if !g.touching && len(touches) > 0 {
		g.touchID, g.touching = touches[0], true
	}
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			x, y := inpututil.TouchPositionInPreviousTick(g.touchID)
			g.book.HandlePointer(float64(x), float64(y), false)
			g.touching = false
			return
		}
		x, y := ebiten.TouchPosition(g.touchID)
		g.book.HandlePointer(float64(x), float64(y), true)
		return
	}

	mx, my := ebiten.CursorPosition()
	g.book.HandlePointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Draw paints the pages in stacking order and the fold on top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)

	l := g.book.Config().Layout
	o := g.book.Origin()

	slices.SortStableFunc(g.order, func(a, b *Page) int { return a.ZIndex() - b.ZIndex() })
	for _, p := range g.order {
		img := p.visible()
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(o.X+l.BookWidth/2, o.Y+l.PageY())
		screen.DrawImage(img, op)
	}

	if rgba, ok := g.surface.Image().(*image.RGBA); ok {
		g.canvas.WritePixels(rgba.Pix)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.X-l.Padding, o.Y-l.Padding)
	screen.DrawImage(g.canvas, op)

	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window showing book and blocks until it is closed.
func Run(book *pageflip.Book, pages []*Page, cfg RunConfig) error {
	g, err := NewGame(book, pages, cfg)
	if err != nil {
		return err
	}
	book.Start(g.surface, g)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
