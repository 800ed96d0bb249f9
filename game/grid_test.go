package game

import (
	"slices"
	"testing"
)

func TestAlienGridBoxSpansCells(t *testing.T) {
	g := newAlienGrid(400, BottomBoundary)
	// straddles the boundary between the first two columns and rows
	g.InsertBox(80, 80, AlienSize, 7)

	for _, p := range []Point{{X: 81, Y: 81}, {X: 129, Y: 81}, {X: 81, Y: 129}, {X: 130, Y: 130}} {
		if !slices.Contains(g.Candidates(p.X, p.Y), 7) {
			t.Errorf("expected alien 7 near %+v", p)
		}
	}
	if slices.Contains(g.Candidates(300, 300), 7) {
		t.Error("far cell should be empty")
	}
}

func TestAlienGridClampsOutside(t *testing.T) {
	g := newAlienGrid(400, BottomBoundary)
	g.InsertBox(-200, -200, AlienSize, 1)
	g.InsertBox(900, 2000, AlienSize, 2)

	if !slices.Contains(g.Candidates(-170, -170), 1) {
		t.Error("alien above the field should still be found")
	}
	if !slices.Contains(g.Candidates(920, 2020), 2) {
		t.Error("alien below the field should still be found")
	}
}

func TestAlienGridBuildSkipsDestroyed(t *testing.T) {
	a, b := NewAlien(1, 0, 10, 10), NewAlien(2, 0, 20, 20)
	b.Destroyed = true
	g := newAlienGrid(400, BottomBoundary)
	g.Build([]*Alien{a, b})

	got := g.Candidates(30, 30)
	if !slices.Contains(got, 0) || slices.Contains(got, 1) {
		t.Errorf("expected only index 0, got %v", got)
	}

	g.Clear()
	if len(g.Candidates(30, 30)) != 0 {
		t.Error("clear should empty every cell")
	}
}

func TestCollisionBelowField(t *testing.T) {
	s := newTestState(never)
	s.aliens = []*Alien{NewAlien(1, 0, 100, BottomBoundary-10)}
	s.projectiles = []*Projectile{{X: 110, Y: BottomBoundary + 20, Owner: OwnerBot}}
	if kills := s.checkCollisions(); kills != 1 {
		t.Errorf("expected hit across the grid edge, got %d kills", kills)
	}
}
