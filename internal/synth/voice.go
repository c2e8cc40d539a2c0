package synth

import (
	"math"

	"SoundDraw/internal/state"
)

// Voice produces mono samples in [-1,1] until it reports done.
type Voice interface {
	Sample() (float64, bool)
}

// Note is one oscillator shaped by one envelope.
type Note struct {
	Waveform  Waveform
	Frequency float64
	Envelope  Envelope

	sampleRate float64
	phase      float64
	n          int
	total      int
}

// NewNote derives a note from stroke metrics.
func NewNote(color state.ColorID, length, speed, durationSeconds float64, sampleRate int) *Note {
	timbre := TimbreFor(color)
	env := NewEnvelope(timbre, Volume(speed), durationSeconds)
	return &Note{
		Waveform:   timbre.Waveform,
		Frequency:  Pitch(length),
		Envelope:   env,
		sampleRate: float64(sampleRate),
		total:      int(math.Round(env.Total() * float64(sampleRate))),
	}
}

// Samples is the number of samples the note sounds for.
func (n *Note) Samples() int { return n.total }

func (n *Note) Sample() (float64, bool) {
	if n.n >= n.total {
		return 0, true
	}
	t := float64(n.n) / n.sampleRate
	v := n.Waveform.At(n.phase) * n.Envelope.Gain(t)

	_, n.phase = math.Modf(n.phase + n.Frequency/n.sampleRate)
	n.n++
	return v, false
}
