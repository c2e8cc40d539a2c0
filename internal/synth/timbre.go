// Package synth turns stroke metrics into enveloped tones on a shared
// output bus.
package synth

import (
	"math"

	"SoundDraw/internal/state"
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Sawtooth
	Triangle
	Square
)

func (w Waveform) String() string {
	switch w {
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	default:
		return "sine"
	}
}

// At returns the waveform value for a phase in [0,1).
func (w Waveform) At(phase float64) float64 {
	switch w {
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Timbre is the waveform and ADSR shape tied to a palette colour.
// Attack, Decay and Release are seconds; Sustain is a fraction of peak.
type Timbre struct {
	Waveform Waveform
	Attack   float64
	Decay    float64
	Sustain  float64
	Release  float64
}

// DefaultTimbre applies to colours outside the palette.
var DefaultTimbre = Timbre{Waveform: Sine, Attack: 0.01, Decay: 0.2, Sustain: 0.5, Release: 0.3}

// TimbreFor maps a palette colour to its instrument preset.
func TimbreFor(c state.ColorID) Timbre {
	switch c {
	case state.Red: // piano
		return Timbre{Waveform: Sine, Attack: 0.01, Decay: 0.2, Sustain: 0.3, Release: 0.5}
	case state.Blue: // synth
		return Timbre{Waveform: Sawtooth, Attack: 0.05, Decay: 0.1, Sustain: 0.6, Release: 0.3}
	case state.Green: // pluck
		return Timbre{Waveform: Triangle, Attack: 0.001, Decay: 0.15, Sustain: 0.2, Release: 0.2}
	case state.Yellow: // bell
		return Timbre{Waveform: Sine, Attack: 0.01, Decay: 0.3, Sustain: 0.4, Release: 0.8}
	case state.Purple: // pad
		return Timbre{Waveform: Square, Attack: 0.2, Decay: 0.2, Sustain: 0.7, Release: 0.5}
	default:
		return DefaultTimbre
	}
}
