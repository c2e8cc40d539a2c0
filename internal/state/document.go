package state

import "sync"

// Document is the ordered list of finished strokes for one session.
// Strokes are only ever appended; Clear drops all of them.
type Document struct {
	strokes []Stroke
	mu      sync.RWMutex
}

func NewDocument() *Document {
	return &Document{strokes: make([]Stroke, 0)}
}

func (d *Document) Append(s Stroke) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.strokes = append(d.strokes, s)
}

func (d *Document) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.strokes = make([]Stroke, 0)
}

func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.strokes)
}

// Strokes returns a copy of the stroke list.
func (d *Document) Strokes() []Stroke {
	d.mu.RLock()
	defer d.mu.RUnlock()
	strokes := make([]Stroke, len(d.strokes))
	copy(strokes, d.strokes)
	return strokes
}
