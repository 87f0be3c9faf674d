package pageflip

import (
	"math"
	"testing"
)

func TestSetDragTargetClamps(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"inside", 0.25, 0.25},
		{"zero", 0, 0},
		{"past right", 1.7, 1},
		{"past left", -380.0 / 200, -1},
		{"exact left", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlip(nil)
			f.SetDragTarget(tt.ratio)
			if f.Target != tt.want {
				t.Errorf("SetDragTarget(%v): Target = %v, want %v", tt.ratio, f.Target, tt.want)
			}
		})
	}
}

func TestIntegrateContractsGeometrically(t *testing.T) {
	f := newFlip(nil)
	f.Target = -1

	for k := 1; k <= 40; k++ {
		f.Integrate(0.2)
		want := 2 * math.Pow(0.8, float64(k))
		if got := f.Progress - f.Target; math.Abs(got-want) > 1e-12 {
			t.Fatalf("tick %d: gap = %v, want %v", k, got, want)
		}
	}
}

func TestIntegrateConvergesWithinThirtyOneTicks(t *testing.T) {
	f := newFlip(nil)
	f.Target = -1
	for range 31 {
		f.Integrate(0.2)
	}
	// Within 0.1% of the initial distance.
	if gap := math.Abs(f.Progress - f.Target); gap > 0.002 {
		t.Errorf("gap after 31 ticks = %v", gap)
	}
}

func TestIntegrateNeverLeavesRange(t *testing.T) {
	f := newFlip(nil)
	targets := []float64{-1, 1, -0.3, 1, -1}
	for _, tgt := range targets {
		f.SetDragTarget(tgt)
		for range 15 {
			f.Integrate(0.2)
			if f.Progress < -1 || f.Progress > 1 {
				t.Fatalf("progress %v left [-1, 1]", f.Progress)
			}
		}
	}
}

func TestStrength(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{1, 0},
		{-1, 0},
		{0, 1},
		{0.5, 0.5},
		{-0.25, 0.75},
	}
	for _, tt := range tests {
		f := &Flip{Progress: tt.p}
		if got := f.Strength(); got != tt.want {
			t.Errorf("Strength at %v = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestNeedsPaint(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		dragging bool
		want     bool
	}{
		{"moving", 0.5, false, true},
		{"settled right", 0.998, false, false},
		{"settled left", -0.998, false, false},
		{"at threshold", 0.997, false, false},
		{"just inside", 0.9969, false, true},
		{"dragging at rest", 1, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Flip{Progress: tt.progress, Dragging: tt.dragging}
			if got := f.NeedsPaint(0.997); got != tt.want {
				t.Errorf("NeedsPaint = %v, want %v", got, tt.want)
			}
		})
	}
}
