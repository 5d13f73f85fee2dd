package knob

import "math"

// Arc is a gauge fill segment. Angles are degrees clockwise from twelve
// o'clock; Start is in [0, 360) and Sweep in [0, 360].
type Arc struct {
	Start float64
	Sweep float64
}

// End returns the stop angle, which may exceed 360 when the arc wraps.
func (a Arc) End() float64 { return a.Start + a.Sweep }

// Empty reports whether the arc paints nothing.
func (a Arc) Empty() bool { return a.Sweep <= 0 }

// gaugeArc computes the fill for a knob at rotation degrees.
//
// Zero-centered knobs fill from the minimum angle (-maxRot) up to the
// indicator. Other knobs fill from twelve o'clock toward the indicator. Both
// extend the fill by gap degrees past the indicator so the needle never sits on
// the edge of the arc.
func gaugeArc(rotation, maxRot, gap float64, zeroCentered bool) Arc {
	var start, sweep float64
	switch {
	case zeroCentered:
		start = -maxRot
		sweep = maxRot + rotation + gap
	case rotation >= 0:
		start = 0
		sweep = rotation + gap
	default:
		start = rotation - gap
		sweep = -rotation + gap
	}
	return Arc{Start: wrapDegrees(start), Sweep: clampRange(sweep, 0, 360)}
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func clampRange(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
