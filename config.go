package pageflip

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoPages is returned when a book is built without any page surfaces.
	ErrNoPages = errors.New("pageflip: book needs at least one page")
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("pageflip: invalid config")
)

// CommitPolicy decides when releasing a drag moves the book cursor.
type CommitPolicy string

const (
	// CommitBoundary advances only when the released flip is the one at the
	// cursor, and retreats only when it is not. This keeps the cursor on the
	// page that is actually open.
	CommitBoundary CommitPolicy = "boundary"
	// CommitAlways advances on every left release and retreats on every
	// right release, whichever flip was dragged.
	CommitAlways CommitPolicy = "always"
)

// Config holds the geometry, motion and styling of a book. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	Layout Layout       `yaml:"layout"`
	Motion MotionConfig `yaml:"motion"`
	Fold   FoldStyle    `yaml:"fold"`
	Input  InputConfig  `yaml:"input"`

	// Debug logs per-frame timing and paint counts at debug level.
	Debug bool `yaml:"debug"`
}

// Layout gives the book's fixed dimensions in surface units.
type Layout struct {
	BookWidth  float64 `yaml:"bookWidth"`
	BookHeight float64 `yaml:"bookHeight"`
	PageWidth  float64 `yaml:"pageWidth"`
	PageHeight float64 `yaml:"pageHeight"`

	// Padding is the margin the drawing surface extends past the book on
	// every side, so the bulge and shadows are not clipped.
	Padding float64 `yaml:"padding"`
}

// PageY is the vertical offset of the pages inside the book.
func (l Layout) PageY() float64 {
	return (l.BookHeight - l.PageHeight) / 2
}

// CanvasSize returns the drawing surface size the layout expects.
func (l Layout) CanvasSize() (w, h float64) {
	return l.BookWidth + l.Padding*2, l.BookHeight + l.Padding*2
}

// FoldOrigin is the drawing-surface point the fold is drawn relative to:
// the book's horizontal center at the pages' top edge.
func (l Layout) FoldOrigin() Vec2 {
	return Vec2{X: l.Padding + l.BookWidth/2, Y: l.PageY() + l.Padding}
}

// MotionConfig tunes the integrator.
type MotionConfig struct {
	// Smoothing is the fraction of the remaining gap closed each tick.
	Smoothing float64 `yaml:"smoothing"`
	// SettleThreshold is the |progress| at which an idle flip stops painting.
	SettleThreshold float64 `yaml:"settleThreshold"`
	// TickRate is the number of frames per second.
	TickRate int `yaml:"tickRate"`
	// TurnSeconds is the duration of a programmatic page turn.
	TurnSeconds float64 `yaml:"turnSeconds"`
}

// Interval returns the time between ticks.
func (m MotionConfig) Interval() time.Duration {
	return time.Second / time.Duration(m.TickRate)
}

// InputConfig controls how presses are interpreted.
type InputConfig struct {
	// StrictVertical also requires a press to fall within the book's height.
	StrictVertical bool         `yaml:"strictVertical"`
	Commit         CommitPolicy `yaml:"commit"`
}

// DefaultConfig returns the reference book: 830x260 with 400x250 pages,
// 60 ticks per second and a 0.2 smoothing factor.
func DefaultConfig() Config {
	return Config{
		Layout: Layout{
			BookWidth:  830,
			BookHeight: 260,
			PageWidth:  400,
			PageHeight: 250,
			Padding:    60,
		},
		Motion: MotionConfig{
			Smoothing:       0.2,
			SettleThreshold: 0.997,
			TickRate:        60,
			TurnSeconds:     0.8,
		},
		Fold: DefaultFoldStyle(),
		Input: InputConfig{
			StrictVertical: true,
			Commit:         CommitBoundary,
		},
	}
}

// LoadConfig overlays YAML data on DefaultConfig and validates the result.
// Keys missing from data keep their default values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	l := c.Layout
	switch {
	case l.BookWidth <= 0 || l.BookHeight <= 0:
		return fmt.Errorf("%w: book size %vx%v", ErrInvalidConfig, l.BookWidth, l.BookHeight)
	case l.PageWidth <= 0 || l.PageHeight <= 0:
		return fmt.Errorf("%w: page size %vx%v", ErrInvalidConfig, l.PageWidth, l.PageHeight)
	case l.PageHeight > l.BookHeight:
		return fmt.Errorf("%w: page height %v exceeds book height %v", ErrInvalidConfig, l.PageHeight, l.BookHeight)
	case l.Padding < 0:
		return fmt.Errorf("%w: negative padding %v", ErrInvalidConfig, l.Padding)
	}

	m := c.Motion
	switch {
	case m.Smoothing <= 0 || m.Smoothing > 1:
		return fmt.Errorf("%w: smoothing %v outside (0, 1]", ErrInvalidConfig, m.Smoothing)
	case m.SettleThreshold <= 0 || m.SettleThreshold >= 1:
		return fmt.Errorf("%w: settle threshold %v outside (0, 1)", ErrInvalidConfig, m.SettleThreshold)
	case m.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, m.TickRate)
	case m.TurnSeconds <= 0:
		return fmt.Errorf("%w: turn duration %v", ErrInvalidConfig, m.TurnSeconds)
	}

	switch c.Input.Commit {
	case CommitBoundary, CommitAlways:
	default:
		return fmt.Errorf("%w: unknown commit policy %q", ErrInvalidConfig, c.Input.Commit)
	}
	return nil
}
