//go:build headless

package otobus

import (
	"errors"
	"time"

	"SoundDraw/internal/synth"
)

// ErrHeadless is returned by New in builds without an audio backend.
var ErrHeadless = errors.New("built without audio output (headless)")

type Bus struct {
	sampleRate int
}

func New(sampleRate int, bufferSize time.Duration) (*Bus, error) {
	return nil, ErrHeadless
}

func (b *Bus) SampleRate() int        { return b.sampleRate }
func (b *Bus) Schedule(v synth.Voice) {}
func (b *Bus) Reset()                 {}
func (b *Bus) Close() error           { return nil }
