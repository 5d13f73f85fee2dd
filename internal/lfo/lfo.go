package lfo

import (
	"math"
	"strings"
)

// Waveform names understood by Shape, matching the panel's wave options.
const (
	WaveSine     = "sine"
	WaveSquare   = "square"
	WaveSaw      = "sawtooth"
	WaveTriangle = "triangle"
)

// Shape returns the named waveform at phase (wrapped to [0, 1)), in [-1, 1].
// Unknown names are flat.
func Shape(name string, phase float64) float64 {
	phase -= math.Floor(phase)
	switch strings.ToLower(name) {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 1 - 2*phase
	case WaveTriangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	}
	return 0
}

// Trace samples n+1 points of the named waveform over the given number of
// periods, for drawing icons and previews.
func Trace(name string, n int, periods float64) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = Shape(name, float64(i)*periods/float64(n))
	}
	return out
}

// LFO previews a modulation source on the panel: it follows the LFO group's
// rate, depth and waveform and is advanced by the front end's frame clock.
type LFO struct {
	depth  float64
	rateHz float64
	wave   string
	phase  float64 // [0, 1)
}

// Set configures the oscillator. An unknown waveform falls back to triangle.
func (l *LFO) Set(depth, rateHz float64, wave string) {
	l.depth = depth
	l.rateHz = rateHz
	wave = strings.ToLower(wave)
	switch wave {
	case WaveSine, WaveSquare, WaveSaw, WaveTriangle:
	default:
		wave = WaveTriangle
	}
	l.wave = wave
}

// Advance moves the phase forward by dt seconds and returns the value at the
// new phase, in [-depth, depth]. Inactive oscillators return 0 and hold phase.
func (l *LFO) Advance(dt float64) float64 {
	if !l.Active() || dt <= 0 {
		return 0
	}
	l.phase += l.rateHz * dt
	l.phase -= math.Floor(l.phase)
	return l.Value()
}

// Value returns the output at the current phase without advancing.
func (l *LFO) Value() float64 {
	if !l.Active() {
		return 0
	}
	return Shape(l.wave, l.phase) * l.depth
}

// Active returns true if the LFO has non-zero depth and rate.
func (l *LFO) Active() bool {
	return l.depth != 0 && l.rateHz != 0
}

// Phase returns the position in the current cycle, in [0, 1).
func (l *LFO) Phase() float64 { return l.phase }

// Wave returns the waveform in use after fallback.
func (l *LFO) Wave() string { return l.wave }

// Reset zeros the LFO phase.
func (l *LFO) Reset() {
	l.phase = 0
}
