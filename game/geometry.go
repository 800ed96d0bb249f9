package game

import "math"

// Point is a 2D position or offset in world units. Y grows downward.
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the distance between two points
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Path is a step queue of offsets. A detached alien is placed at
// launch origin + head and the head is popped.
type Path []Point

// Clone returns a private copy so consumption never touches the source
func (p Path) Clone() Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Head returns the next offset without consuming it
func (p Path) Head() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0], true
}

// Pop removes and returns the head offset
func (p *Path) Pop() (Point, bool) {
	head, ok := p.Head()
	if !ok {
		return Point{}, false
	}
	*p = (*p)[1:]
	return head, true
}

// DefaultPath is the straight-down fallback used when no drawn path is
// available or a detached alien runs out of steps.
func DefaultPath() Path {
	out := make(Path, DefaultPathSteps)
	for i := range out {
		out[i] = Point{X: 0, Y: float64(i) * DefaultPathSpacing}
	}
	return out
}

// SmoothPath turns raw drag samples into a steppable path. Samples are
// consumed as (control, end) pairs of quadratic Bézier segments starting at
// the first sample, each segment sampled SmoothSegmentSteps times. A trailing
// unpaired sample is kept as a final straight step.
func SmoothPath(raw []Point) Path {
	if len(raw) == 0 {
		return nil
	}
	out := make(Path, 0, 1+(len(raw)/2)*SmoothSegmentSteps+1)
	out = append(out, raw[0])

	i := 1
	for ; i+1 < len(raw); i += 2 {
		start, ctrl, end := raw[i-1], raw[i], raw[i+1]
		for s := 1; s <= SmoothSegmentSteps; s++ {
			t := float64(s) / SmoothSegmentSteps
			out = append(out, quadratic(start, ctrl, end, t))
		}
	}
	if i < len(raw) {
		out = append(out, raw[i])
	}
	return out
}

func quadratic(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// PathRecorder accumulates drag samples until MaxPathLength has been drawn
type PathRecorder struct {
	points []Point
	length float64
}

// Add records a sample. Returns false once the length budget is spent.
func (r *PathRecorder) Add(p Point) bool {
	if r.length >= MaxPathLength {
		return false
	}
	if n := len(r.points); n > 0 {
		r.length += r.points[n-1].Dist(p)
	}
	r.points = append(r.points, p)
	return true
}

// Points returns a copy of the recorded samples
func (r *PathRecorder) Points() []Point {
	out := make([]Point, len(r.points))
	copy(out, r.points)
	return out
}

// Length returns the total drawn length so far
func (r *PathRecorder) Length() float64 {
	return r.length
}

// Reset discards everything recorded
func (r *PathRecorder) Reset() {
	r.points = r.points[:0]
	r.length = 0
}
