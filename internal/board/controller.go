package board

import (
	"log"
	"sync"
	"time"

	"SoundDraw/internal/state"
)

const (
	DefaultMaxPointDelay = 50 * time.Millisecond
	DefaultStrokeGap     = 200 * time.Millisecond
)

type Option func(*Controller)

func WithClock(c state.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithScheduler(s Scheduler) Option {
	return func(ctl *Controller) { ctl.sched = s }
}

// WithPacing overrides the replay inter-point cap and inter-stroke gap.
func WithPacing(maxPointDelay, strokeGap time.Duration) Option {
	return func(ctl *Controller) {
		ctl.maxPointDelay = maxPointDelay
		ctl.strokeGap = strokeGap
	}
}

// Controller owns the stroke document and the in-progress stroke, and
// drives replay. All methods are safe to call from any goroutine.
type Controller struct {
	doc     *state.Document
	surface Surface
	player  Player
	clock   state.Clock
	sched   Scheduler

	maxPointDelay time.Duration
	strokeGap     time.Duration

	mu          sync.Mutex
	color       state.ColorID
	drawing     bool
	strokeStart time.Time
	current     []state.Point
	replay      *replayRun

	// OnChange is called after any state or document change, outside the
	// controller's lock.
	OnChange func()
}

func New(doc *state.Document, surface Surface, player Player, opts ...Option) *Controller {
	c := &Controller{
		doc:           doc,
		surface:       surface,
		player:        player,
		clock:         state.SystemClock{},
		sched:         realScheduler{},
		maxPointDelay: DefaultMaxPointDelay,
		strokeGap:     DefaultStrokeGap,
		color:         state.DefaultColor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) SetColor(id state.ColorID) {
	c.mu.Lock()
	if c.replay != nil {
		c.mu.Unlock()
		return
	}
	c.color = id
	c.mu.Unlock()
	c.changed()
}

func (c *Controller) Color() state.ColorID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

func (c *Controller) Drawing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drawing
}

func (c *Controller) Replaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replay != nil
}

func (c *Controller) StrokeCount() int {
	return c.doc.Len()
}

// BeginStroke starts capturing at (x, y).
func (c *Controller) BeginStroke(x, y float64) {
	c.mu.Lock()
	if c.replay != nil {
		c.mu.Unlock()
		return
	}
	c.drawing = true
	c.strokeStart = c.clock.Now()
	c.current = []state.Point{{X: x, Y: y, Time: 0}}
	c.mu.Unlock()
	c.changed()
}

// ExtendStroke appends a point to the stroke being captured and draws the
// new segment.
func (c *Controller) ExtendStroke(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.drawing || c.replay != nil {
		return
	}
	p := state.Point{X: x, Y: y, Time: state.ElapsedMillis(c.strokeStart, c.clock.Now())}
	c.current = append(c.current, p)
	if n := len(c.current); n >= 2 {
		c.surface.DrawStroke(c.current[n-2:], c.color)
	}
}

// EndStroke finishes capture. Strokes with fewer than two points are
// dropped.
func (c *Controller) EndStroke() {
	c.mu.Lock()
	if !c.drawing {
		c.mu.Unlock()
		return
	}
	c.drawing = false
	if s, ok := state.NewStroke(c.current, c.color); ok {
		c.doc.Append(s)
		log.Printf("[BOARD] stroke %d (%s): %d points, length %.1f, %d ms", c.doc.Len(), s.ID, len(s.Points), s.Length, s.Duration)
	}
	c.current = nil
	c.mu.Unlock()
	c.changed()
}

// Clear empties the document and the surface. Ignored while replaying.
func (c *Controller) Clear() {
	c.mu.Lock()
	if c.replay != nil {
		c.mu.Unlock()
		return
	}
	c.doc.Clear()
	c.current = nil
	c.drawing = false
	c.surface.Clear()
	c.mu.Unlock()
	c.changed()
}

// redrawLocked repaints the whole document statically.
func (c *Controller) redrawLocked() {
	c.surface.Clear()
	for _, s := range c.doc.Strokes() {
		c.surface.DrawStroke(s.Points, s.Color)
	}
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
