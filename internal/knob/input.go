package knob

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Input is the numeric field bound to a knob. Min, Max, Step and Default are
// fixed at construction; the current value lives in text and value.
type Input struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64

	text  string
	value float64
}

// Text returns the value as last written to the field.
func (in *Input) Text() string { return in.text }

// Value returns the last validated numeric value.
func (in *Input) Value() float64 { return in.value }

// normalize validates raw field text. ok is false when the text must be left
// alone: an empty field, or a lone minus sign while a negative value is still
// being typed.
func (in *Input) normalize(raw string) (v float64, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if raw == "-" && in.Min < 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if errors.Is(err, strconv.ErrRange) {
		// out of float64 range: v is ±Inf (or 0 on underflow) and is clamped below
		err = nil
	}
	if err != nil || math.IsNaN(v) {
		return in.Min, true
	}
	if v > in.Max {
		v = in.Max
	}
	if v < in.Min {
		v = in.Min
	}
	return v, true
}

// quantize snaps v to the field's step. Fractional steps keep two decimals.
func (in *Input) quantize(v float64) float64 {
	step := in.step()
	q := math.Round(v/step) * step
	if step < 1 {
		q = math.Round(q*100) / 100
	}
	if q == 0 {
		return 0 // no "-0"
	}
	return q
}

func (in *Input) step() float64 {
	if in.Step <= 0 || math.IsNaN(in.Step) {
		return 1
	}
	return in.Step
}

// format renders v the way the field displays it.
func (in *Input) format(v float64) string {
	if in.step() < 1 {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
