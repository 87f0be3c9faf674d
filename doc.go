// Package pageflip simulates and draws a page being turned by hand.
//
// A [Book] holds one [Flip] per page. Each flip has a progress in [-1, 1]:
// +1 is a page lying flat on the right, -1 one turned over to the left, and
// 0 a page standing straight up. Pointer input sets where a flip is headed
// and every frame the flip closes a fixed fraction of the remaining distance,
// so a released page glides to rest instead of snapping.
//
// # Quick start
//
// The book needs page surfaces it can resize and stack, and a drawing
// surface to paint the fold on. Both are small interfaces; [GGSurface] is a
// ready-made raster surface and the ebitenbook subpackage provides a window,
// pages and input for Ebitengine.
//
//	book, err := pageflip.NewBook(pages, pageflip.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	surface := pageflip.NewGGSurfaceForLayout(book.Config().Layout)
//
//	// On pointer events, in screen coordinates:
//	book.HandlePointer(x, y, pressed)
//
//	// Once per tick:
//	book.Frame(surface)
//
// [Book.Start] hands the frame callback to any [Scheduler]; [Loop] runs it
// on a ticker and [ManualScheduler] steps it on demand.
//
// # Drawing
//
// Each moving flip is drawn as four layers relative to the book's center at
// the top of the page: a soft contact shadow along the crease, drop shadows
// either side of the curl, and the curled paper, whose top and bottom edges
// bulge outward most strongly at mid-turn. The shading constants live in
// [FoldStyle]; the defaults are tuned by eye and are not derived from any
// physical model.
//
// # Testing
//
// [Recorder] captures the drawing calls of a frame, [Book.InjectDrag] and
// friends queue synthetic pointer input, and [LoadScript] sequences input,
// page turns and snapshots across frames.
package pageflip
