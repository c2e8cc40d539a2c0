package synth

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Render plays v to completion offline through the master gain. At most
// maxSamples are produced; maxSamples <= 0 means no limit.
func Render(v Voice, maxSamples int) []float32 {
	out := make([]float32, 0, 4096)
	for maxSamples <= 0 || len(out) < maxSamples {
		s, done := v.Sample()
		if done {
			break
		}
		out = append(out, master(s))
	}
	return out
}

// WriteWAV encodes mono samples as 16-bit PCM.
func WriteWAV(w io.WriteSeeker, samples []float32, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s * 32767)
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish wav: %w", err)
	}
	return nil
}
