package game

// AlienType is carried on every alien; all types currently behave the same.
type AlienType uint8

const (
	AlienNormal AlienType = iota
	AlienFast
	AlienTough
)

func (t AlienType) String() string {
	switch t {
	case AlienNormal:
		return "normal"
	case AlienFast:
		return "fast"
	case AlienTough:
		return "tough"
	default:
		return "unknown"
	}
}

// Alien is one member of the descending formation. Once Detached it leaves
// the formation for good and follows Path relative to Launch.
type Alien struct {
	ID        int
	X, Y      float64
	Row       int
	Type      AlienType
	Destroyed bool
	Detached  bool
	Launch    Point
	Path      Path
}

// NewAlien creates a formation alien at the given position
func NewAlien(id, row int, x, y float64) *Alien {
	return &Alien{
		ID:   id,
		X:    x,
		Y:    y,
		Row:  row,
		Type: AlienNormal,
	}
}

// Position returns the alien's top-left corner
func (a *Alien) Position() Point {
	return Point{X: a.X, Y: a.Y}
}

// Detach switches the alien to path following. It takes a private copy of
// shared, or the default path when shared is empty, and anchors the launch
// origin so that launch + path[0] is the current position.
func (a *Alien) Detach(shared Path) {
	if len(shared) > 0 {
		a.Path = shared.Clone()
	} else {
		a.Path = DefaultPath()
	}
	a.Detached = true
	a.Launch = a.Position().Sub(a.Path[0])
}

// FollowPath consumes one step of the path. An exhausted path is refilled
// with the default path first, so a detached alien always has a step.
func (a *Alien) FollowPath() {
	if !a.Detached {
		return
	}
	if len(a.Path) == 0 {
		a.Path = DefaultPath()
	}
	step, _ := a.Path.Pop()
	pos := a.Launch.Add(step)
	a.X = pos.X
	a.Y = pos.Y
}

// Escaped reports whether the alien has left through the bottom boundary
func (a *Alien) Escaped() bool {
	return a.Y > BottomBoundary
}

// HitBy reports whether the point lies inside the alien's hit box
func (a *Alien) HitBy(x, y float64) bool {
	return BoxContains(a.X, a.Y, AlienSize, x, y)
}

// ToState converts to a render snapshot record
func (a *Alien) ToState() AlienState {
	return AlienState{
		ID:        a.ID,
		X:         round1(a.X),
		Y:         round1(a.Y),
		Row:       a.Row,
		Type:      a.Type.String(),
		Detached:  a.Detached,
		Destroyed: a.Destroyed,
	}
}

// LowestAlien returns the live alien with the greatest Y. Ties go to the
// first one found. ok is false when there is no live alien.
func LowestAlien(aliens []*Alien) (lowest *Alien, ok bool) {
	for _, a := range aliens {
		if a.Destroyed {
			continue
		}
		if lowest == nil || a.Y > lowest.Y {
			lowest = a
		}
	}
	return lowest, lowest != nil
}
