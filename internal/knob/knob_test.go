package knob

import (
	"math"
	"math/rand"
	"testing"
)

func newPercentKnob() *Knob {
	return New(DefaultConfig(), Input{Min: 0, Max: 100, Step: 1, Default: 50})
}

func TestKnobStartsAtDefault(t *testing.T) {
	k := newPercentKnob()
	if got := k.Value(); got != 50 {
		t.Fatalf("value = %v, want 50", got)
	}
	if got := k.Text(); got != "50" {
		t.Fatalf("text = %q, want %q", got, "50")
	}
	if got := k.Rotation(); math.Abs(got) > 1e-9 {
		t.Fatalf("rotation = %v, want 0", got)
	}
}

func TestKnobClampsOutOfRangeText(t *testing.T) {
	k := newPercentKnob()
	k.SetText("150")
	if got := k.Value(); got != 100 {
		t.Fatalf("value = %v, want 100", got)
	}
	if got := k.Text(); got != "100" {
		t.Fatalf("text = %q, want %q", got, "100")
	}
	if got := k.Rotation(); math.Abs(got-140) > 1e-9 {
		t.Fatalf("rotation = %v, want 140", got)
	}
	k.SetText("-50")
	if got := k.Value(); got != 0 {
		t.Fatalf("value = %v, want 0", got)
	}
	if got := k.Rotation(); math.Abs(got+140) > 1e-9 {
		t.Fatalf("rotation = %v, want -140", got)
	}
	for raw, want := range map[string]float64{"1e400": 100, "-1e400": 0, "1e-400": 0} {
		k.SetText("50")
		k.SetText(raw)
		if got := k.Value(); got != want {
			t.Fatalf("SetText(%q) value = %v, want %v", raw, got, want)
		}
	}
}

func TestKnobIgnoresEmptyText(t *testing.T) {
	k := newPercentKnob()
	k.SetText("70")
	events := 0
	k.OnChange(func(Update) { events++ })
	for _, raw := range []string{"", "   "} {
		if k.SetText(raw) {
			t.Fatalf("SetText(%q) accepted", raw)
		}
	}
	if events != 0 {
		t.Fatalf("events = %d, want 0", events)
	}
	if got := k.Value(); got != 70 {
		t.Fatalf("value = %v, want 70", got)
	}
}

func TestKnobNonNumericTextResolvesToMin(t *testing.T) {
	k := New(DefaultConfig(), Input{Min: 20, Max: 80, Step: 1, Default: 50})
	k.SetText("abc")
	if got := k.Value(); got != 20 {
		t.Fatalf("value = %v, want 20", got)
	}
	k.SetText("NaN")
	if got := k.Value(); got != 20 {
		t.Fatalf("NaN value = %v, want 20", got)
	}
}

func TestKnobLoneMinus(t *testing.T) {
	cases := []struct {
		name     string
		min      float64
		accepted bool
		want     float64
	}{
		{name: "negative range waits", min: -50, accepted: false, want: 10},
		{name: "positive range coerces", min: 0, accepted: true, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k := New(DefaultConfig(), Input{Min: tc.min, Max: 50, Step: 1, Default: 10})
			events := 0
			k.OnChange(func(Update) { events++ })
			if got := k.SetText("-"); got != tc.accepted {
				t.Fatalf("accepted = %v, want %v", got, tc.accepted)
			}
			if got := k.Value(); got != tc.want {
				t.Fatalf("value = %v, want %v", got, tc.want)
			}
			if tc.accepted != (events == 1) {
				t.Fatalf("events = %d", events)
			}
		})
	}
}

func TestKnobResetRestoresDefault(t *testing.T) {
	k := New(DefaultConfig(), Input{Min: 0, Max: 1, Step: 0.01, Default: 0.25})
	want := k.Rotation()
	k.SetText("0.9")
	var last Update
	k.OnChange(func(u Update) { last = u })
	k.Reset()
	if got := k.Value(); got != 0.25 {
		t.Fatalf("value = %v, want 0.25", got)
	}
	if got := k.Text(); got != "0.25" {
		t.Fatalf("text = %q, want %q", got, "0.25")
	}
	if got := k.Rotation(); got != want {
		t.Fatalf("rotation = %v, want %v", got, want)
	}
	if last.Value != 0.25 || last.Min != 0 || last.Max != 1 {
		t.Fatalf("update = %+v", last)
	}
}

func TestKnobRoundTripWithinOneStep(t *testing.T) {
	cases := []Input{
		{Min: -50, Max: 50, Step: 1},
		{Min: 0, Max: 1, Step: 0.01},
		{Min: 20, Max: 20000, Step: 10},
		{Min: 0, Max: 127, Step: 1},
	}
	for _, in := range cases {
		k := New(DefaultConfig(), in)
		step := k.input.step()
		for v := in.Min; v <= in.Max; v += step {
			k.SetText(k.input.format(v))
			got := k.input.quantize(k.valueFor(k.Rotation()))
			if math.Abs(got-k.Value()) > step+1e-9 {
				t.Fatalf("range [%v,%v]: %v -> %v -> %v", in.Min, in.Max, v, k.Rotation(), got)
			}
		}
	}
}

func TestKnobFractionalStepFormatting(t *testing.T) {
	k := New(DefaultConfig(), Input{Min: 0, Max: 1, Step: 0.01, Default: 0.5})
	if got := k.Text(); got != "0.50" {
		t.Fatalf("text = %q, want %q", got, "0.50")
	}
	k.Rotate(140)
	if got := k.Text(); got != "1.00" {
		t.Fatalf("text = %q, want %q", got, "1.00")
	}
}

func TestKnobNonPositiveStepActsAsOne(t *testing.T) {
	k := New(DefaultConfig(), Input{Min: 0, Max: 10, Step: 0, Default: 5})
	k.Rotate(20)
	if got := k.Value(); got != math.Round(got) {
		t.Fatalf("value %v not on integer step", got)
	}
}

func TestKnobSyncNotifies(t *testing.T) {
	k := newPercentKnob()
	var got []Update
	k.OnChange(func(u Update) { got = append(got, u) })
	k.Sync()
	if len(got) != 1 || got[0].Value != 50 || got[0].Min != 0 || got[0].Max != 100 {
		t.Fatalf("updates = %+v", got)
	}
}

func TestKnobRotateSkipsUnchangedValue(t *testing.T) {
	k := New(DefaultConfig(), Input{Min: 0, Max: 4, Step: 1, Default: 2})
	events := 0
	k.OnChange(func(Update) { events++ })
	if k.Rotate(1.5) {
		t.Fatal("rotate within the same step should not write")
	}
	if events != 0 {
		t.Fatalf("events = %d, want 0", events)
	}
}

func TestRandomSequencesStayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	k := New(DefaultConfig(), Input{Min: -24, Max: 24, Step: 1, Default: 0})
	var c Capture
	x, y := 0.0, 0.0
	g := c.Begin(k, x, y)
	for i := 0; i < 5000; i++ {
		x += rng.Float64()*80 - 40
		y += rng.Float64()*80 - 40
		g.Move(x, y)
		if r := k.Rotation(); r < -140 || r > 140 {
			t.Fatalf("step %d: rotation %v out of range", i, r)
		}
		if v := k.Value(); v < -24 || v > 24 {
			t.Fatalf("step %d: value %v out of range", i, v)
		}
	}
	g.End()
}

func TestKnobNudgeMovesWholeSteps(t *testing.T) {
	k := New(DefaultConfig(), Input{Min: 0, Max: 1, Step: 0.01, Default: 0.2})
	if !k.Nudge(1) || k.Text() != "0.21" {
		t.Fatalf("nudge up: text = %q, want 0.21", k.Text())
	}
	if !k.Nudge(-3) || k.Text() != "0.18" {
		t.Fatalf("nudge down: text = %q, want 0.18", k.Text())
	}

	top := newPercentKnob()
	top.SetText("100")
	if top.Nudge(1) {
		t.Fatal("nudge past max should not write")
	}
	if top.Nudge(0) {
		t.Fatal("zero nudge should not write")
	}
}
