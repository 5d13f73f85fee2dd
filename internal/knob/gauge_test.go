package knob

import (
	"math"
	"testing"
)

func TestGaugeArc(t *testing.T) {
	cases := []struct {
		name         string
		rotation     float64
		zeroCentered bool
		want         Arc
	}{
		{name: "zero-centered min", rotation: -140, zeroCentered: true, want: Arc{Start: 220, Sweep: 3}},
		{name: "zero-centered center", rotation: 0, zeroCentered: true, want: Arc{Start: 220, Sweep: 143}},
		{name: "zero-centered max", rotation: 140, zeroCentered: true, want: Arc{Start: 220, Sweep: 283}},
		{name: "center", rotation: 0, want: Arc{Start: 0, Sweep: 3}},
		{name: "clockwise", rotation: 90, want: Arc{Start: 0, Sweep: 93}},
		{name: "counter-clockwise", rotation: -50, want: Arc{Start: 307, Sweep: 53}},
		{name: "max", rotation: 140, want: Arc{Start: 0, Sweep: 143}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gaugeArc(tc.rotation, 140, 3, tc.zeroCentered)
			if math.Abs(got.Start-tc.want.Start) > 1e-9 || math.Abs(got.Sweep-tc.want.Sweep) > 1e-9 {
				t.Fatalf("gaugeArc(%v) = %+v, want %+v", tc.rotation, got, tc.want)
			}
		})
	}
}

func TestGaugeSweepNeverExceedsFullTurn(t *testing.T) {
	for _, gap := range []float64{0, 3, 90, 400} {
		for rot := -140.0; rot <= 140; rot += 0.5 {
			for _, zc := range []bool{false, true} {
				a := gaugeArc(rot, 140, gap, zc)
				if a.Sweep < 0 || a.Sweep > 360 {
					t.Fatalf("gap %v rot %v zc %v: sweep %v", gap, rot, zc, a.Sweep)
				}
				if a.Start < 0 || a.Start >= 360 {
					t.Fatalf("gap %v rot %v zc %v: start %v", gap, rot, zc, a.Start)
				}
			}
		}
	}
}

func TestKnobGaugeFollowsValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZeroCentered = true
	k := New(cfg, Input{Min: -12, Max: 12, Step: 1, Default: 0})
	if got := k.Gauge(); got.Start != 220 || math.Abs(got.Sweep-143) > 1e-9 {
		t.Fatalf("gauge = %+v", got)
	}
	k.SetText("12")
	if got := k.Gauge(); math.Abs(got.End()-503) > 1e-9 {
		t.Fatalf("gauge end = %v, want 503", got.End())
	}
	if got := k.Normalized(); math.Abs(got-1) > 1e-9 {
		t.Fatalf("normalized = %v, want 1", got)
	}
}
