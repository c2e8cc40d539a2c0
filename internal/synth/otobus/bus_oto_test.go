//go:build !headless

package otobus

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SoundDraw/internal/synth"
)

type stepVoice struct {
	value float64
	left  int
}

func (v *stepVoice) Sample() (float64, bool) {
	if v.left == 0 {
		return 0, true
	}
	v.left--
	return v.value, false
}

func sampleAt(p []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
}

var _ synth.Bus = (*Bus)(nil)

func TestReadEncodesMixerOutputAsFloat32LE(t *testing.T) {
	b := newBus(8000)
	b.Schedule(&stepVoice{value: 1, left: 2})

	p := make([]byte, 4*4)
	n, err := b.Read(p)
	require.NoError(t, err)
	assert.Equal(t, len(p), n)

	assert.InDelta(t, synth.MasterGain, sampleAt(p, 0), 1e-6)
	assert.InDelta(t, synth.MasterGain, sampleAt(p, 1), 1e-6)
	assert.Equal(t, float32(0), sampleAt(p, 3))
}

func TestReadGrowsSampleBuffer(t *testing.T) {
	b := newBus(8000)
	p := make([]byte, 4*(len(b.sampleBuf)+10))
	n, err := b.Read(p)
	require.NoError(t, err)
	assert.Equal(t, len(p), n)
}

func TestResetSilencesScheduledVoices(t *testing.T) {
	b := newBus(8000)
	b.Schedule(&stepVoice{value: 1, left: 100})
	b.Reset()

	p := make([]byte, 4*4)
	_, err := b.Read(p)
	require.NoError(t, err)
	assert.Equal(t, float32(0), sampleAt(p, 0))
	assert.Equal(t, 0, b.mixer.Load().Active())
}

func TestCloseWithoutPlayer(t *testing.T) {
	var nilBus *Bus
	assert.NoError(t, nilBus.Close())

	b := newBus(8000)
	assert.NoError(t, b.Close())
	assert.NoError(t, b.Close())
	assert.Equal(t, 8000, b.SampleRate())
}
