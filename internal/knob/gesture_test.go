package knob

import (
	"math"
	"testing"
)

func TestGestureVerticalDrag(t *testing.T) {
	k := newPercentKnob()
	var c Capture
	g := c.Begin(k, 0, 100)
	g.Move(0, 90) // 10px up: 3 * 10 / 2 = 15 degrees
	if got := k.Value(); got != 55 {
		t.Fatalf("value = %v, want 55", got)
	}
	// rotation is re-derived from the quantized value
	if got := k.Rotation(); math.Abs(got-14) > 1e-9 {
		t.Fatalf("rotation = %v, want 14", got)
	}
	// the next move starts from 14, not 15: 29 degrees lands on 60
	g.Move(0, 80)
	if got := k.Value(); got != 60 {
		t.Fatalf("value = %v, want 60", got)
	}
	if got := k.Rotation(); math.Abs(got-28) > 1e-9 {
		t.Fatalf("rotation = %v, want 28", got)
	}
}

func TestGestureSinglePixelMovesAccumulate(t *testing.T) {
	k := newPercentKnob()
	var c Capture
	g := c.Begin(k, 0, 0)
	g.Move(0, -1) // 1.5 degrees: 50.54 rounds to 51, rotation 2.8
	if got := k.Value(); got != 51 {
		t.Fatalf("value = %v, want 51", got)
	}
	g.Move(0, -2) // 2.8 + 1.5 = 4.3 degrees: 51.54 rounds to 52
	if got := k.Value(); got != 52 {
		t.Fatalf("value = %v, want 52", got)
	}
}

func TestGestureDiagonalDrag(t *testing.T) {
	k := newPercentKnob()
	var c Capture
	g := c.Begin(k, 100, 100)
	// down-right: the two axes cancel out
	g.Move(110, 110)
	if got := k.Value(); got != 50 {
		t.Fatalf("value = %v, want 50", got)
	}
	// up-right: 3 * (10 - (-10)) / 2 = 30 degrees
	g.Move(120, 100)
	if got := k.Value(); got != 61 {
		t.Fatalf("value = %v, want 61", got)
	}
	if got := k.Rotation(); math.Abs(got-30.8) > 1e-9 {
		t.Fatalf("rotation = %v, want 30.8", got)
	}
}

func TestGestureSlowDragOnCoarseKnob(t *testing.T) {
	k := New(DefaultConfig(), Input{Min: 0, Max: 4, Step: 1, Default: 2})
	var c Capture
	g := c.Begin(k, 0, 0)
	// each 1px move falls back to the quantized rotation
	for i := 1; i <= 30; i++ {
		g.Move(0, float64(-i))
	}
	if got := k.Value(); got != 2 {
		t.Fatalf("value = %v, want 2", got)
	}
	if got := k.Rotation(); math.Abs(got) > 1e-9 {
		t.Fatalf("rotation = %v, want 0", got)
	}
	// 40px at once is 60 degrees, past half a step
	g.Move(0, -70)
	g.End()
	if got := k.Value(); got != 3 {
		t.Fatalf("value = %v, want 3", got)
	}
}

func TestGestureClampsAtLimits(t *testing.T) {
	k := newPercentKnob()
	var c Capture
	g := c.Begin(k, 0, 0)
	g.Move(0, -1000)
	if got := k.Rotation(); got != 140 {
		t.Fatalf("rotation = %v, want 140", got)
	}
	if got := k.Value(); got != 100 {
		t.Fatalf("value = %v, want 100", got)
	}
	// Coming back starts from the limit, not from the overshoot.
	g.Move(0, -990)
	if got := k.Value(); got >= 100 {
		t.Fatalf("value = %v, want < 100", got)
	}
}

func TestGestureEndReleasesCapture(t *testing.T) {
	k := newPercentKnob()
	var c Capture
	g := c.Begin(k, 0, 0)
	if c.Active() != g {
		t.Fatal("gesture should hold capture")
	}
	g.End()
	g.End()
	if c.Active() != nil {
		t.Fatal("capture still held after End")
	}
	if c.Move(0, -100) {
		t.Fatal("move consumed without an active gesture")
	}
	g.Move(0, -100)
	if got := k.Value(); got != 50 {
		t.Fatalf("value = %v after ended gesture moved, want 50", got)
	}
}

func TestCaptureBeginEndsPreviousGesture(t *testing.T) {
	a := newPercentKnob()
	b := newPercentKnob()
	var c Capture
	ga := c.Begin(a, 0, 0)
	gb := c.Begin(b, 0, 0)
	if !ga.Done() {
		t.Fatal("first gesture should be ended")
	}
	c.Move(0, -20)
	if a.Value() != 50 {
		t.Fatalf("stale knob moved to %v", a.Value())
	}
	if b.Value() == 50 {
		t.Fatal("active knob did not move")
	}
	ga.End()
	if c.Active() != gb {
		t.Fatal("ending a stale gesture released the new one")
	}
}

func TestGestureRebasesAfterExternalWrite(t *testing.T) {
	k := newPercentKnob()
	var c Capture
	g := c.Begin(k, 0, 0)
	g.Move(0, -40)
	k.Reset()
	g.Move(0, -40) // no motion
	if got := k.Value(); got != 50 {
		t.Fatalf("value = %v, want reset value 50", got)
	}
}
