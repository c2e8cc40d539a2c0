package synth

import (
	"log"
	"sync"

	"SoundDraw/internal/state"
)

// Engine schedules one note per call on a Bus. A nil bus turns every call
// into a no-op, which is how a missing audio device is handled.
type Engine struct {
	bus Bus
	mu  sync.Mutex
}

func NewEngine(bus Bus) *Engine {
	return &Engine{bus: bus}
}

// Available reports whether notes will actually be heard.
func (e *Engine) Available() bool {
	return e != nil && e.bus != nil
}

// PlayNote schedules a single enveloped tone for a stroke.
func (e *Engine) PlayNote(color state.ColorID, length, speed, durationSeconds float64) {
	if !e.Available() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	n := NewNote(color, length, speed, durationSeconds, e.bus.SampleRate())
	e.bus.Schedule(n)
	log.Printf("[AUDIO] %s %.1f Hz peak %.3f for %.3fs", n.Waveform, n.Frequency, n.Envelope.Peak, n.Envelope.Total())
}

// StopAll silences every scheduled note at once, without a fade.
func (e *Engine) StopAll() {
	if !e.Available() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bus.Reset()
}
