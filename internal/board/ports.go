// Package board captures pointer strokes and replays them with sound.
package board

import (
	"time"

	"SoundDraw/internal/state"
)

// Surface is an immediate-mode drawing target. DrawStroke connects
// consecutive points and draws nothing for fewer than two.
type Surface interface {
	Clear()
	DrawStroke(points []state.Point, color state.ColorID)
}

// Player sounds one note per replayed stroke.
type Player interface {
	PlayNote(color state.ColorID, length, speed, durationSeconds float64)
	StopAll()
}

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
