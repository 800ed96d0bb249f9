package game

// moveAliens runs the formation rules for one tick: descent, detachment,
// path following and bottom-boundary escape. Destroyed aliens are purged in
// one pass at the end.
func (s *State) moveAliens() (detached, escaped int) {
	descend := s.turn > 0 && s.turn%DescentInterval == 0
	rollDetach := s.turn%DetachCheckInterval == 0
	step := s.turn%PathStepInterval == 0

	for _, a := range s.aliens {
		if a.Destroyed {
			continue
		}
		if descend {
			a.Y += DescentStep
		}
		if rollDetach && !a.Detached && s.rng.Float64() < DetachChance {
			a.Detach(s.path)
			detached++
		}
		if step && a.Detached {
			a.FollowPath()
		}
		if a.Escaped() {
			a.Destroyed = true
			s.score += EscapeScore
			escaped++
		}
	}

	s.aliens = purgeDestroyed(s.aliens)
	return detached, escaped
}

func purgeDestroyed(aliens []*Alien) []*Alien {
	kept := aliens[:0]
	for _, a := range aliens {
		if !a.Destroyed {
			kept = append(kept, a)
		}
	}
	clearTail(aliens, len(kept))
	return kept
}

// ShiftFormation moves every non-detached alien horizontally by dx. The
// request is rejected, leaving state untouched, if any of them would end up
// outside [0, screen width] or if no alien is left in formation.
func (s *State) ShiftFormation(dx float64) bool {
	first := true
	var minX, maxX float64
	for _, a := range s.aliens {
		if a.Detached || a.Destroyed {
			continue
		}
		if first {
			minX, maxX = a.X, a.X
			first = false
			continue
		}
		minX = min(minX, a.X)
		maxX = max(maxX, a.X)
	}
	if first {
		return false
	}
	if minX+dx < 0 || maxX+dx > s.width {
		return false
	}
	for _, a := range s.aliens {
		if !a.Detached && !a.Destroyed {
			a.X += dx
		}
	}
	return true
}
