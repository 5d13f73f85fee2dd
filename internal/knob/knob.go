package knob

import (
	"math"
	"strconv"
)

const (
	DefaultMaxRotation = 140
	DefaultSensitivity = 3
	DefaultGaugeGap    = 3
)

// Config holds the per-knob rendering and gesture constants.
type Config struct {
	MaxRotation  float64 // indicator travel either side of center, in degrees
	Sensitivity  float64 // degrees per pixel of combined drag
	GaugeGap     float64 // extra fill past the indicator, in degrees
	ZeroCentered bool
}

// DefaultConfig returns the stock rotation, sensitivity and gauge gap.
func DefaultConfig() Config {
	return Config{
		MaxRotation: DefaultMaxRotation,
		Sensitivity: DefaultSensitivity,
		GaugeGap:    DefaultGaugeGap,
	}
}

// Update is what a knob hands to its observers after every value write.
type Update struct {
	Value float64
	Min   float64
	Max   float64
	Text  string
}

// Knob maps a rotation in [-MaxRotation, MaxRotation] to the value of its
// bound Input and back.
type Knob struct {
	cfg       Config
	input     Input
	rotation  float64
	gauge     Arc
	listeners []func(Update)
}

// New builds a knob and syncs it from the input's default value. Observers
// registered afterwards see the initial value only through Sync.
func New(cfg Config, in Input) *Knob {
	if cfg.MaxRotation <= 0 {
		cfg.MaxRotation = DefaultMaxRotation
	}
	if cfg.Sensitivity == 0 {
		cfg.Sensitivity = DefaultSensitivity
	}
	if cfg.GaugeGap < 0 {
		cfg.GaugeGap = 0
	}
	if in.Max < in.Min {
		in.Min, in.Max = in.Max, in.Min
	}
	in.text = ""
	k := &Knob{cfg: cfg, input: in}
	k.Reset()
	return k
}

// OnChange registers fn to receive every accepted value write.
func (k *Knob) OnChange(fn func(Update)) {
	if fn != nil {
		k.listeners = append(k.listeners, fn)
	}
}

// Config returns the knob's constants after defaults were applied.
func (k *Knob) Config() Config { return k.cfg }

// Input returns a copy of the bound field.
func (k *Knob) Input() Input { return k.input }

// Value returns the last accepted value, clamped to the input's range.
func (k *Knob) Value() float64 { return k.input.value }

// Text returns the field text as last written.
func (k *Knob) Text() string { return k.input.text }

// Rotation returns the indicator angle in degrees, 0 at center.
func (k *Knob) Rotation() float64 { return k.rotation }

// Gauge returns the current fill arc.
func (k *Knob) Gauge() Arc { return k.gauge }

// Normalized returns the rotation mapped to [0, 1].
func (k *Knob) Normalized() float64 {
	return (k.rotation + k.cfg.MaxRotation) / (2 * k.cfg.MaxRotation)
}

// SetText writes raw into the bound field and re-derives the rotation from it.
// It reports whether the write was accepted; rejected writes change nothing
// and notify nobody.
func (k *Knob) SetText(raw string) bool {
	v, ok := k.input.normalize(raw)
	if !ok {
		return false
	}
	k.input.value = v
	if clamped := k.input.Min == v || k.input.Max == v; clamped || !sameNumber(raw, v) {
		k.input.text = k.input.format(v)
	} else {
		k.input.text = raw
	}
	k.rotation = k.rotationFor(v)
	k.gauge = gaugeArc(k.rotation, k.cfg.MaxRotation, k.cfg.GaugeGap, k.cfg.ZeroCentered)
	k.notify()
	return true
}

// Reset restores the field's declared default.
func (k *Knob) Reset() {
	k.SetText(k.input.format(k.input.Default))
}

// Sync re-runs the inverse sync on the current text, notifying observers.
func (k *Knob) Sync() {
	k.SetText(k.input.text)
}

// Rotate moves the indicator to deg (clamped), quantizes the resulting value
// and writes it to the field, which re-derives the rotation from that value.
// Nothing is written, and nobody is notified, when the quantized text is
// unchanged; the rotation then stays where the last write put it.
func (k *Knob) Rotate(deg float64) bool {
	deg = clampRange(deg, -k.cfg.MaxRotation, k.cfg.MaxRotation)
	text := k.input.format(k.input.quantize(k.valueFor(deg)))
	if text == k.input.text {
		return false
	}
	return k.SetText(text)
}

// Nudge turns the knob by whole steps (negative steps turn it back).
func (k *Knob) Nudge(steps int) bool {
	rng := k.input.Max - k.input.Min
	if rng <= 0 || steps == 0 {
		return false
	}
	deg := float64(steps) * k.input.step() / rng * 2 * k.cfg.MaxRotation
	return k.Rotate(k.rotation + deg)
}

func (k *Knob) valueFor(deg float64) float64 {
	span := 2 * k.cfg.MaxRotation
	ratio := math.Abs((deg - k.cfg.MaxRotation) / span)
	return k.input.Max - ratio*(k.input.Max-k.input.Min)
}

func (k *Knob) rotationFor(v float64) float64 {
	rng := k.input.Max - k.input.Min
	if rng == 0 {
		return -k.cfg.MaxRotation
	}
	ratio := math.Abs((k.input.Min - v) / rng)
	return ratio*2*k.cfg.MaxRotation - k.cfg.MaxRotation
}

func (k *Knob) notify() {
	u := Update{Value: k.input.value, Min: k.input.Min, Max: k.input.Max, Text: k.input.text}
	for _, fn := range k.listeners {
		fn(u)
	}
}

// sameNumber reports whether raw already spells v, so typed text such as
// "0.50" is kept as entered rather than reformatted.
func sameNumber(raw string, v float64) bool {
	parsed, err := strconv.ParseFloat(raw, 64)
	return err == nil && parsed == v
}
