// Package config loads SoundDraw settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Surface Surface `toml:"surface"`
	Audio   Audio   `toml:"audio"`
	Replay  Replay  `toml:"replay"`
}

type Surface struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	LineWidth float64 `toml:"line_width"`
}

type Audio struct {
	Enabled    bool `toml:"enabled"`
	SampleRate int  `toml:"sample_rate"`
	BufferMS   int  `toml:"buffer_ms"`
}

type Replay struct {
	MaxPointDelayMS int `toml:"max_point_delay_ms"`
	StrokeGapMS     int `toml:"stroke_gap_ms"`
}

func Default() Config {
	return Config{
		Surface: Surface{Width: 896, Height: 500, LineWidth: 3},
		Audio:   Audio{Enabled: true, SampleRate: 44100, BufferMS: 40},
		Replay:  Replay{MaxPointDelayMS: 50, StrokeGapMS: 200},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[CONFIG] %s not found, using defaults", path)
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface size %dx%d must be positive", c.Surface.Width, c.Surface.Height)
	}
	if c.Surface.LineWidth <= 0 {
		return fmt.Errorf("line_width %.2f must be positive", c.Surface.LineWidth)
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		return fmt.Errorf("sample_rate %d out of range 8000..192000", c.Audio.SampleRate)
	}
	if c.Audio.BufferMS < 0 {
		return fmt.Errorf("buffer_ms %d must not be negative", c.Audio.BufferMS)
	}
	if c.Replay.MaxPointDelayMS < 0 || c.Replay.StrokeGapMS < 0 {
		return errors.New("replay delays must not be negative")
	}
	return nil
}

func (a Audio) Buffer() time.Duration {
	return time.Duration(a.BufferMS) * time.Millisecond
}

func (r Replay) MaxPointDelay() time.Duration {
	return time.Duration(r.MaxPointDelayMS) * time.Millisecond
}

func (r Replay) StrokeGap() time.Duration {
	return time.Duration(r.StrokeGapMS) * time.Millisecond
}
