package state

import "math"

// Point is one sampled pointer position. Time is milliseconds since the
// first point of the owning stroke.
type Point struct {
	X    float64
	Y    float64
	Time int64
}

// Stroke is a finished pointer-down to pointer-up gesture and its metrics.
type Stroke struct {
	ID       string
	Points   []Point
	Color    ColorID
	Length   float64
	Duration int64
	Speed    float64
}

// NewStroke builds a stroke from captured points. It reports false for
// fewer than two points, which are never stored.
func NewStroke(points []Point, color ColorID) (Stroke, bool) {
	if len(points) < 2 {
		return Stroke{}, false
	}

	pts := make([]Point, len(points))
	copy(pts, points)

	length := PathLength(pts)
	duration := pts[len(pts)-1].Time

	var speed float64
	if duration > 0 {
		speed = length / float64(duration)
	}

	return Stroke{
		ID:       NewStrokeID(),
		Points:   pts,
		Color:    color,
		Length:   length,
		Duration: duration,
		Speed:    speed,
	}, true
}

// PathLength sums the Euclidean distances between consecutive points.
func PathLength(points []Point) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		length += math.Sqrt(dx*dx + dy*dy)
	}
	return length
}

// DurationSeconds returns the capture duration in seconds.
func (s Stroke) DurationSeconds() float64 {
	return float64(s.Duration) / 1000
}
