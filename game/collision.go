package game

// BoxContains reports whether (px, py) lies inside the size x size box whose
// top-left corner is (x, y). Edges count as inside.
func BoxContains(x, y, size, px, py float64) bool {
	return py >= y && py <= y+size && px >= x && px <= x+size
}

// checkCollisions resolves bot shots against aliens. Each shot destroys at
// most one alien: the first hit in formation order. Returns the kill count.
func (s *State) checkCollisions() int {
	if len(s.aliens) == 0 {
		return 0
	}
	if s.grid == nil {
		s.grid = newAlienGrid(s.width, BottomBoundary)
	}
	s.grid.Build(s.aliens)

	kills := 0
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Owner == OwnerBot {
			if i := firstHit(s.aliens, s.grid.Candidates(p.X, p.Y), p); i >= 0 {
				s.aliens[i].Destroyed = true
				kills++
				s.score += KillScore
				continue
			}
		}
		kept = append(kept, p)
	}
	clearTail(s.projectiles, len(kept))
	s.projectiles = kept
	if kills > 0 {
		s.aliens = purgeDestroyed(s.aliens)
	}
	return kills
}

// firstHit returns the lowest index among candidates whose alien the shot
// hits, or -1
func firstHit(aliens []*Alien, candidates []int, p *Projectile) int {
	best := -1
	for _, i := range candidates {
		if best >= 0 && i >= best {
			continue
		}
		a := aliens[i]
		if !a.Destroyed && a.HitBy(p.X, p.Y) {
			best = i
		}
	}
	return best
}

// removeStrayProjectiles drops shots that have left the playfield
func (s *State) removeStrayProjectiles() int {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.OutOfBounds() {
			continue
		}
		kept = append(kept, p)
	}
	removed := len(s.projectiles) - len(kept)
	clearTail(s.projectiles, len(kept))
	s.projectiles = kept
	return removed
}

// clearTail nils out the slots past n so dropped entities can be collected
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
