package pageflip

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLayoutDerived(t *testing.T) {
	l := DefaultConfig().Layout

	if got := l.PageY(); got != 5 {
		t.Errorf("PageY = %v, want 5", got)
	}
	w, h := l.CanvasSize()
	if w != 950 || h != 380 {
		t.Errorf("CanvasSize = %vx%v, want 950x380", w, h)
	}
	if diff := cmp.Diff(Vec2{X: 475, Y: 65}, l.FoldOrigin()); diff != "" {
		t.Errorf("FoldOrigin mismatch (-want +got):\n%s", diff)
	}
}

func TestMotionInterval(t *testing.T) {
	m := DefaultConfig().Motion
	if got, want := m.Interval(), time.Second/60; got != want {
		t.Errorf("Interval = %v, want %v", got, want)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	data := []byte(`
layout:
  pageWidth: 300
motion:
  smoothing: 0.5
fold:
  shadowAlphaFloor: 0.01
input:
  strictVertical: false
  commit: always
debug: true
`)
	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := DefaultConfig()
	want.Layout.PageWidth = 300
	want.Motion.Smoothing = 0.5
	want.Fold.ShadowAlphaFloor = 0.01
	want.Input.StrictVertical = false
	want.Input.Commit = CommitAlways
	want.Debug = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
		msg     string
	}{
		{"malformed", "layout: [", false, "parse config"},
		{"zero book", "layout: {bookWidth: 0}", true, "book size"},
		{"negative page", "layout: {pageHeight: -1}", true, "page size"},
		{"page taller than book", "layout: {pageHeight: 300}", true, "exceeds book height"},
		{"negative padding", "layout: {padding: -2}", true, "padding"},
		{"zero smoothing", "motion: {smoothing: 0}", true, "smoothing"},
		{"smoothing above one", "motion: {smoothing: 1.5}", true, "smoothing"},
		{"threshold one", "motion: {settleThreshold: 1}", true, "settle threshold"},
		{"zero tick rate", "motion: {tickRate: 0}", true, "tick rate"},
		{"zero turn", "motion: {turnSeconds: 0}", true, "turn duration"},
		{"unknown commit", "input: {commit: sometimes}", true, "commit policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalidConfig) != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (err: %v)", !tt.invalid, tt.invalid, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestSmoothingOfOneSnaps(t *testing.T) {
	b, _ := newTestBook(t, 2, func(c *Config) { c.Motion.Smoothing = 1 })
	b.Flip(0).Target = -1
	b.Tick()
	if got := b.Flip(0).Progress; got != -1 {
		t.Errorf("Progress = %v, want -1 after one tick", got)
	}
}
