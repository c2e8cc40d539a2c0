package synth

import "math"

// MinHold is the shortest sustain hold, used when a stroke is shorter than
// its timbre's attack, decay and release combined.
const MinHold = 0.1

// Envelope is a linear ADSR amplitude curve. Times are seconds from note
// start.
type Envelope struct {
	Peak         float64
	SustainLevel float64
	Attack       float64
	Decay        float64
	Hold         float64
	Release      float64
}

// NewEnvelope fits a timbre's shape to a note of the given length.
func NewEnvelope(t Timbre, peak, durationSeconds float64) Envelope {
	d := finiteSeconds(durationSeconds)
	return Envelope{
		Peak:         peak,
		SustainLevel: t.Sustain * peak,
		Attack:       t.Attack,
		Decay:        t.Decay,
		Hold:         math.Max(d-t.Attack-t.Decay-t.Release, MinHold),
		Release:      t.Release,
	}
}

// Total is the time from note start until the tone stops.
func (e Envelope) Total() float64 {
	return e.Attack + e.Decay + e.Hold + e.Release
}

// Gain returns the amplitude at time t.
func (e Envelope) Gain(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t < e.Attack {
		return e.Peak * t / e.Attack
	}
	t -= e.Attack
	if t < e.Decay {
		return e.Peak + (e.SustainLevel-e.Peak)*t/e.Decay
	}
	t -= e.Decay
	if t < e.Hold {
		return e.SustainLevel
	}
	t -= e.Hold
	if t < e.Release {
		return e.SustainLevel * (1 - t/e.Release)
	}
	return 0
}
