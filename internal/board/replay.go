package board

import (
	"log"
	"time"

	"SoundDraw/internal/state"
)

// replayRun is the cancellation token and cursor of one replay. Stop marks
// it cancelled; callbacks belonging to a cancelled run do nothing.
type replayRun struct {
	strokes   []state.Stroke
	stroke    int
	point     int
	timer     Timer
	cancelled bool
}

// Replay redraws every stroke in order, one note per stroke. It is a no-op
// when the document is empty or a replay is already running.
func (c *Controller) Replay() {
	c.mu.Lock()
	if c.replay != nil || c.doc.Len() == 0 {
		c.mu.Unlock()
		return
	}
	run := &replayRun{strokes: c.doc.Strokes()}
	c.replay = run
	c.drawing = false
	c.current = nil
	c.surface.Clear()
	log.Printf("[REPLAY] start, %d strokes", len(run.strokes))
	c.startStrokeLocked(run)
	c.mu.Unlock()
	c.changed()
}

// Stop cancels a running replay, silences audio and shows the whole
// document. It does nothing when no replay is running.
func (c *Controller) Stop() {
	c.mu.Lock()
	run := c.replay
	if run == nil {
		c.mu.Unlock()
		return
	}
	run.cancelled = true
	if run.timer != nil {
		run.timer.Stop()
		run.timer = nil
	}
	c.player.StopAll()
	c.replay = nil
	c.redrawLocked()
	log.Printf("[REPLAY] stopped at stroke %d of %d", run.stroke+1, len(run.strokes))
	c.mu.Unlock()
	c.changed()
}

func (c *Controller) startStrokeLocked(run *replayRun) {
	if run.stroke >= len(run.strokes) {
		c.replay = nil
		log.Printf("[REPLAY] done")
		return
	}
	s := run.strokes[run.stroke]
	c.player.PlayNote(s.Color, s.Length, s.Speed, s.DurationSeconds())
	run.point = 0
	c.animateLocked(run)
}

// animateLocked draws one frame of the current stroke and schedules the
// next one.
func (c *Controller) animateLocked(run *replayRun) {
	s := run.strokes[run.stroke]
	if run.point >= len(s.Points) {
		run.stroke++
		c.schedule(run, c.strokeGap, c.startStrokeLocked)
		return
	}

	c.surface.Clear()
	for _, prev := range run.strokes[:run.stroke] {
		c.surface.DrawStroke(prev.Points, prev.Color)
	}
	c.surface.DrawStroke(s.Points[:run.point+1], s.Color)
	run.point++

	var delay time.Duration
	if run.point < len(s.Points) {
		delay = c.pointDelay(s.Points[run.point-1], s.Points[run.point])
	}
	c.schedule(run, delay, c.animateLocked)
}

func (c *Controller) pointDelay(prev, next state.Point) time.Duration {
	d := time.Duration(next.Time-prev.Time) * time.Millisecond
	if d < 0 {
		d = 0
	}
	if d > c.maxPointDelay {
		d = c.maxPointDelay
	}
	return d
}

func (c *Controller) schedule(run *replayRun, d time.Duration, step func(*replayRun)) {
	run.timer = c.sched.AfterFunc(d, func() {
		c.mu.Lock()
		if run.cancelled || c.replay != run {
			c.mu.Unlock()
			return
		}
		run.timer = nil
		step(run)
		finished := c.replay == nil
		c.mu.Unlock()
		if finished {
			c.changed()
		}
	})
}
