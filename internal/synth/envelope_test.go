package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeTotal(t *testing.T) {
	tim := Timbre{Attack: 0.05, Decay: 0.1, Sustain: 0.6, Release: 0.3}

	long := NewEnvelope(tim, 0.5, 2)
	assert.InDelta(t, 1.55, long.Hold, 1e-12)
	assert.InDelta(t, 2.0, long.Total(), 1e-12)

	short := NewEnvelope(tim, 0.5, 0.2)
	assert.Equal(t, MinHold, short.Hold)
	assert.InDelta(t, 0.05+0.1+0.1+0.3, short.Total(), 1e-12)

	zero := NewEnvelope(tim, 0.5, 0)
	assert.Equal(t, MinHold, zero.Hold)

	for _, bad := range []float64{math.NaN(), math.Inf(1), -3} {
		assert.Equal(t, MinHold, NewEnvelope(tim, 0.5, bad).Hold)
	}
}

func TestEnvelopeGainShape(t *testing.T) {
	e := NewEnvelope(Timbre{Attack: 0.1, Decay: 0.2, Sustain: 0.5, Release: 0.4}, 0.8, 1.0)
	// hold = 1.0 - 0.1 - 0.2 - 0.4 = 0.3
	assert.InDelta(t, 0.3, e.Hold, 1e-12)
	assert.InDelta(t, 0.4, e.SustainLevel, 1e-12)

	assert.Equal(t, 0.0, e.Gain(-0.01))
	assert.InDelta(t, 0.0, e.Gain(0), 1e-12)
	assert.InDelta(t, 0.4, e.Gain(0.05), 1e-12)
	assert.InDelta(t, 0.8, e.Gain(0.1), 1e-12)
	assert.InDelta(t, 0.6, e.Gain(0.2), 1e-12)
	assert.InDelta(t, 0.4, e.Gain(0.3), 1e-12)
	assert.InDelta(t, 0.4, e.Gain(0.55), 1e-12)
	assert.InDelta(t, 0.2, e.Gain(0.8), 1e-12)
	assert.InDelta(t, 0.0, e.Gain(1.0), 1e-12)
	assert.Equal(t, 0.0, e.Gain(3))
}

func TestEnvelopeZeroAttackStartsAtPeak(t *testing.T) {
	e := Envelope{Peak: 0.5, SustainLevel: 0.25, Decay: 0.1, Hold: 0.1, Release: 0.1}
	assert.InDelta(t, 0.5, e.Gain(0), 1e-12)
}
