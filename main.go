package main

import (
	"flag"
	"log"

	"SoundDraw/internal/board"
	"SoundDraw/internal/config"
	"SoundDraw/internal/render"
	"SoundDraw/internal/state"
	"SoundDraw/internal/synth"
	"SoundDraw/internal/synth/otobus"
	"SoundDraw/internal/ui"
)

func main() {
	configPath := flag.String("config", "sounddraw.toml", "path to the TOML config file")
	noAudio := flag.Bool("no-audio", false, "run without opening an audio device")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}

	engine, closeAudio := newEngine(cfg.Audio)
	raster := render.NewRaster(cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.LineWidth)
	boardWidget := ui.NewBoardWidget(raster)

	ctl := board.New(state.NewDocument(), boardWidget, engine,
		board.WithPacing(cfg.Replay.MaxPointDelay(), cfg.Replay.StrokeGap()))

	log.Printf("Starting SoundDraw (%dx%d, audio %v)", cfg.Surface.Width, cfg.Surface.Height, engine.Available())
	ui.RunApp(ctl, boardWidget, closeAudio)
}

// newEngine opens the audio device. Without one, the engine still accepts
// notes and drops them. The returned func releases the device.
func newEngine(cfg config.Audio) (*synth.Engine, func()) {
	noop := func() {}
	if !cfg.Enabled {
		log.Println("[AUDIO] disabled by configuration")
		return synth.NewEngine(nil), noop
	}
	bus, err := otobus.New(cfg.SampleRate, cfg.Buffer())
	if err != nil {
		log.Printf("[AUDIO] unavailable, continuing silently: %v", err)
		return synth.NewEngine(nil), noop
	}
	return synth.NewEngine(bus), func() {
		if err := bus.Close(); err != nil {
			log.Printf("[AUDIO] %v", err)
		}
	}
}
