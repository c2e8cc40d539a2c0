//go:build !headless

// Package otobus plays a synth.Mixer through the system audio device. Build
// with -tags headless to drop the oto/cgo dependency; New then always fails
// and callers run silently.
package otobus

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"

	"SoundDraw/internal/synth"
)

// Bus implements synth.Bus on an oto player, float32 LE mono.
type Bus struct {
	ctx        *oto.Context
	player     *oto.Player
	mixer      atomic.Pointer[synth.Mixer] // swapped by Reset, read lock-free by Read
	sampleRate int
	sampleBuf  []float32
	mutex      sync.Mutex // guards player across Close
}

// New opens the default output device as float32 mono.
func New(sampleRate int, bufferSize time.Duration) (*Bus, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	b := newBus(sampleRate)
	b.ctx = ctx
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	log.Printf("[AUDIO] output open at %d Hz, buffer %s", sampleRate, bufferSize)
	return b, nil
}

func newBus(sampleRate int) *Bus {
	b := &Bus{
		sampleRate: sampleRate,
		sampleBuf:  make([]float32, 4096),
	}
	b.mixer.Store(synth.NewMixer())
	return b
}

func (b *Bus) SampleRate() int { return b.sampleRate }

func (b *Bus) Schedule(v synth.Voice) {
	b.mixer.Load().Schedule(v)
}

func (b *Bus) Reset() {
	b.mixer.Store(synth.NewMixer())
}

// Read implements io.Reader for the oto player.
func (b *Bus) Read(p []byte) (int, error) {
	numSamples := len(p) / 4
	if len(b.sampleBuf) < numSamples {
		b.sampleBuf = make([]float32, numSamples)
	}
	samples := b.sampleBuf[:numSamples]
	b.mixer.Load().ReadSamples(samples)

	for i, s := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	return numSamples * 4, nil
}

// Close stops playback. It is safe on a nil bus and safe to call twice.
func (b *Bus) Close() error {
	if b == nil {
		return nil
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	if err != nil {
		return fmt.Errorf("close audio player: %w", err)
	}
	log.Println("[AUDIO] output closed")
	return nil
}
