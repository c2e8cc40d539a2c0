package synth

import "sync"

// MasterGain scales every note on the output bus.
const MasterGain = 0.3

// Mixer sums scheduled voices through the fixed master gain.
type Mixer struct {
	voices []Voice
	mu     sync.Mutex
}

func NewMixer() *Mixer {
	return &Mixer{voices: make([]Voice, 0, 8)}
}

func (m *Mixer) Schedule(v Voice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voices = append(m.voices, v)
}

// Active reports how many voices are still sounding.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// ReadSamples fills out with the next block of mixed audio. Finished voices
// are dropped.
func (m *Mixer) ReadSamples(out []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range out {
		var sum float64
		for j, v := range m.voices {
			if v == nil {
				continue
			}
			s, done := v.Sample()
			if done {
				m.voices[j] = nil
				continue
			}
			sum += s
		}
		out[i] = master(sum)
	}

	live := m.voices[:0]
	for _, v := range m.voices {
		if v != nil {
			live = append(live, v)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = live
}

func master(sum float64) float32 {
	s := sum * MasterGain
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return float32(s)
}
