package pageflip

import "time"

// frameStats holds per-frame timing and paint counts.
// Only populated when Config.Debug is true.
type frameStats struct {
	tickTime  time.Duration
	paintTime time.Duration
	painted   int
	flips     int
}

// debugLog reports stats at debug level.
func (b *Book) debugLog(stats frameStats) {
	if !b.cfg.Debug {
		return
	}
	Logger().Debug("pageflip: frame",
		"tick", stats.tickTime,
		"paint", stats.paintTime,
		"total", stats.tickTime+stats.paintTime,
		"painted", stats.painted,
		"flips", stats.flips,
		"page", b.current,
	)
}
