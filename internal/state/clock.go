package state

import (
	"time"

	"github.com/google/uuid"
)

// Clock is the wall clock used to timestamp captured points.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ElapsedMillis returns whole milliseconds from start to now, never negative.
func ElapsedMillis(start, now time.Time) int64 {
	ms := now.Sub(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// NewStrokeID returns a random identifier for a stroke.
func NewStrokeID() string {
	return uuid.NewString()
}
