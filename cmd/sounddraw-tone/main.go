// Command sounddraw-tone renders the note a single stroke would play to a
// WAV file, without an audio device.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"SoundDraw/internal/state"
	"SoundDraw/internal/synth"
)

func main() {
	color := flag.String("color", string(state.DefaultColor), "palette colour, e.g. #3b82f6")
	length := flag.Float64("length", 100, "stroke length in pixels")
	speed := flag.Float64("speed", 0.2, "stroke speed in pixels per millisecond")
	duration := flag.Float64("duration", 0.5, "stroke duration in seconds")
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	out := flag.String("out", "note.wav", "output WAV path")
	flag.Parse()

	if err := run(state.ColorID(*color), *length, *speed, *duration, *rate, *out); err != nil {
		log.Fatal(err)
	}
}

func run(color state.ColorID, length, speed, duration float64, rate int, out string) error {
	if rate <= 0 {
		return fmt.Errorf("sample rate %d must be positive", rate)
	}
	if _, ok := state.Lookup(color); !ok {
		log.Printf("colour %s is not in the palette, using the default timbre", color)
	}

	note := synth.NewNote(color, length, speed, duration, rate)
	samples := synth.Render(note, 0)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := synth.WriteWAV(f, samples, rate); err != nil {
		return err
	}
	log.Printf("wrote %s: %s %.1f Hz, peak %.3f, %.3fs", out, note.Waveform, note.Frequency, note.Envelope.Peak, note.Envelope.Total())
	return nil
}
