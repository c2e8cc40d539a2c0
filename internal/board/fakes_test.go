package board

import (
	"time"

	"SoundDraw/internal/state"
)

// fakeTime is a manual clock and scheduler. Timers fire only from Advance.
type fakeTime struct {
	base   time.Time
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func newFakeTime() *fakeTime {
	return &fakeTime{base: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (ft *fakeTime) Now() time.Time { return ft.base.Add(ft.now) }

func (ft *fakeTime) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: ft.now + d, f: f}
	ft.timers = append(ft.timers, t)
	return t
}

// Advance moves time forward by d, firing due timers in order.
func (ft *fakeTime) Advance(d time.Duration) {
	target := ft.now + d
	for {
		next := ft.nextDue(target)
		if next == nil {
			break
		}
		ft.now = next.at
		next.fired = true
		next.f()
	}
	ft.now = target
}

func (ft *fakeTime) nextDue(limit time.Duration) *fakeTimer {
	var next *fakeTimer
	for _, t := range ft.timers {
		if t.fired || t.stopped || t.at > limit {
			continue
		}
		if next == nil || t.at < next.at {
			next = t
		}
	}
	return next
}

func (ft *fakeTime) pending() int {
	n := 0
	for _, t := range ft.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (ft *fakeTime) last() *fakeTimer {
	return ft.timers[len(ft.timers)-1]
}

type surfaceOp struct {
	at     time.Duration
	clear  bool
	points []state.Point
	color  state.ColorID
}

type recordingSurface struct {
	clock *fakeTime
	ops   []surfaceOp
}

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, surfaceOp{at: s.clock.now, clear: true})
}

func (s *recordingSurface) DrawStroke(points []state.Point, color state.ColorID) {
	pts := make([]state.Point, len(points))
	copy(pts, points)
	s.ops = append(s.ops, surfaceOp{at: s.clock.now, points: pts, color: color})
}

// frames splits the op log at each Clear.
func (s *recordingSurface) frames() [][]surfaceOp {
	var frames [][]surfaceOp
	for _, op := range s.ops {
		if op.clear {
			frames = append(frames, nil)
			continue
		}
		if len(frames) == 0 {
			frames = append(frames, nil)
		}
		frames[len(frames)-1] = append(frames[len(frames)-1], op)
	}
	return frames
}

func (s *recordingSurface) reset() { s.ops = nil }

type note struct {
	at       time.Duration
	color    state.ColorID
	length   float64
	speed    float64
	duration float64
}

type recordingPlayer struct {
	clock *fakeTime
	notes []note
	stops int
}

func (p *recordingPlayer) PlayNote(color state.ColorID, length, speed, durationSeconds float64) {
	p.notes = append(p.notes, note{at: p.clock.now, color: color, length: length, speed: speed, duration: durationSeconds})
}

func (p *recordingPlayer) StopAll() { p.stops++ }

type harness struct {
	time    *fakeTime
	doc     *state.Document
	surface *recordingSurface
	player  *recordingPlayer
	ctl     *Controller
	changes int
}

func newHarness() *harness {
	ft := newFakeTime()
	h := &harness{
		time:    ft,
		doc:     state.NewDocument(),
		surface: &recordingSurface{clock: ft},
		player:  &recordingPlayer{clock: ft},
	}
	h.ctl = New(h.doc, h.surface, h.player, WithClock(ft), WithScheduler(ft))
	h.ctl.OnChange = func() { h.changes++ }
	return h
}

type timedPoint struct {
	x, y float64
	at   time.Duration
}

// draw captures a stroke whose points arrive at the given offsets.
func (h *harness) draw(color state.ColorID, pts ...timedPoint) {
	h.ctl.SetColor(color)
	start := h.time.now
	for i, p := range pts {
		h.time.Advance(start + p.at - h.time.now)
		if i == 0 {
			h.ctl.BeginStroke(p.x, p.y)
		} else {
			h.ctl.ExtendStroke(p.x, p.y)
		}
	}
	h.ctl.EndStroke()
}
