package lfo

import (
	"math"
	"testing"
)

func TestShapeKeyPoints(t *testing.T) {
	cases := []struct {
		wave  string
		phase float64
		want  float64
	}{
		{WaveTriangle, 0, -1},
		{WaveTriangle, 0.25, 0},
		{WaveTriangle, 0.5, 1},
		{WaveSquare, 0.1, 1},
		{WaveSquare, 0.6, -1},
		{WaveSaw, 0, 1},
		{WaveSaw, 0.75, -0.5},
		{WaveSine, 0.25, 1},
		{"SINE", 1.25, 1}, // wraps and ignores case
		{"noise", 0.3, 0},
	}
	for _, tc := range cases {
		if got := Shape(tc.wave, tc.phase); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Shape(%q, %v) = %v, want %v", tc.wave, tc.phase, got, tc.want)
		}
	}
}

func TestTraceLength(t *testing.T) {
	pts := Trace(WaveSaw, 8, 1)
	if len(pts) != 9 {
		t.Fatalf("len = %d, want 9", len(pts))
	}
	if pts[0] != 1 || pts[4] != 0 {
		t.Fatalf("saw trace = %v", pts)
	}
	if got := len(Trace(WaveSine, 0, 1)); got != 2 {
		t.Fatalf("degenerate trace len = %d, want 2", got)
	}
}

func TestLFOAdvanceTriangle(t *testing.T) {
	l := &LFO{}
	l.Set(1.0, 1.0, WaveTriangle)

	// a quarter second at 1 Hz lands on phase 0.25
	if v := l.Advance(0.25); math.Abs(v) > 1e-9 {
		t.Errorf("triangle at phase 0.25: got %f, want 0", v)
	}
	if v := l.Advance(0.25); math.Abs(v-1) > 1e-9 {
		t.Errorf("triangle at phase 0.5: got %f, want 1", v)
	}
	l.Advance(0.75)
	if p := l.Phase(); math.Abs(p-0.25) > 1e-9 {
		t.Errorf("phase = %v, want wrapped 0.25", p)
	}
}

func TestLFOSquareDepth(t *testing.T) {
	l := &LFO{}
	l.Set(2.0, 1.0, WaveSquare)
	if v := l.Advance(0.1); math.Abs(v-2.0) > 1e-9 {
		t.Errorf("square first half: got %f, want 2.0", v)
	}
	if v := l.Advance(0.5); math.Abs(v+2.0) > 1e-9 {
		t.Errorf("square second half: got %f, want -2.0", v)
	}
}

func TestLFOInactiveReturnsZero(t *testing.T) {
	l := &LFO{}
	l.Set(0, 5.0, WaveTriangle)
	if v := l.Advance(0.1); v != 0 {
		t.Errorf("zero depth should return 0, got %f", v)
	}
	l.Set(1.0, 0, WaveTriangle)
	if v := l.Advance(0.1); v != 0 {
		t.Errorf("zero rate should return 0, got %f", v)
	}
	if l.Phase() != 0 {
		t.Errorf("inactive LFO advanced phase to %v", l.Phase())
	}
}

func TestLFOActive(t *testing.T) {
	l := &LFO{}
	if l.Active() {
		t.Error("default LFO should not be active")
	}
	l.Set(1.0, 5.0, WaveTriangle)
	if !l.Active() {
		t.Error("configured LFO should be active")
	}
	l.Set(0, 5.0, WaveTriangle)
	if l.Active() {
		t.Error("zero-depth LFO should not be active")
	}
}

func TestLFOUnknownWaveFallsBack(t *testing.T) {
	l := &LFO{}
	l.Set(1, 1, "noise")
	if l.Wave() != WaveTriangle {
		t.Fatalf("wave = %q, want triangle", l.Wave())
	}
	l.Advance(0.5)
	l.Reset()
	if l.Phase() != 0 {
		t.Fatalf("phase after reset = %v", l.Phase())
	}
}
