package game

import "testing"

func TestBoxContains(t *testing.T) {
	if !BoxContains(0, 0, 50, 25, 25) {
		t.Error("center should be inside")
	}
	if !BoxContains(0, 0, 50, 0, 0) || !BoxContains(0, 0, 50, 50, 50) {
		t.Error("edges should be inside")
	}
	if BoxContains(0, 0, 50, 50.1, 25) || BoxContains(0, 0, 50, 25, -0.1) {
		t.Error("points outside the box should miss")
	}
}

func TestCollisionRemovesFirstAlienOnly(t *testing.T) {
	s := newTestState(never)
	s.aliens = []*Alien{
		NewAlien(1, 0, 0, 0),
		NewAlien(2, 0, 100, 100),
		NewAlien(3, 0, 110, 110),
		NewAlien(4, 0, 120, 120),
	}
	second, third := s.aliens[1], s.aliens[2]
	// inside the boxes of aliens 2, 3 and 4
	s.projectiles = []*Projectile{{ID: 9, X: 130, Y: 130, Owner: OwnerBot, Speed: ProjectileSpeed}}

	kills := s.checkCollisions()

	if kills != 1 {
		t.Fatalf("expected 1 kill, got %d", kills)
	}
	if !second.Destroyed || third.Destroyed {
		t.Error("only the first overlapping alien should be destroyed")
	}
	if len(s.aliens) != 3 {
		t.Fatalf("expected 3 aliens, got %d", len(s.aliens))
	}
	for _, a := range s.aliens {
		if a.ID == 2 {
			t.Error("destroyed alien still in play")
		}
	}
	if len(s.projectiles) != 0 {
		t.Errorf("projectile should be removed, got %d", len(s.projectiles))
	}
	if s.score != 0 {
		t.Errorf("kills should not score, got %d", s.score)
	}
}

func TestCollisionIgnoresAlienProjectiles(t *testing.T) {
	s := newTestState(never)
	s.aliens = []*Alien{NewAlien(1, 0, 100, 100)}
	s.projectiles = []*Projectile{{X: 120, Y: 120, Owner: OwnerAlien, Speed: ProjectileSpeed}}

	if kills := s.checkCollisions(); kills != 0 {
		t.Errorf("alien projectiles should not hit, got %d kills", kills)
	}
	if len(s.aliens) != 1 || len(s.projectiles) != 1 {
		t.Error("state should be unchanged")
	}
}

func TestCollisionMissKeepsProjectile(t *testing.T) {
	s := newTestState(never)
	s.aliens = []*Alien{NewAlien(1, 0, 100, 100)}
	s.projectiles = []*Projectile{
		{ID: 1, X: 10, Y: 10, Owner: OwnerBot},
		{ID: 2, X: 125, Y: 125, Owner: OwnerBot},
		{ID: 3, X: 125, Y: 125, Owner: OwnerBot},
	}
	if kills := s.checkCollisions(); kills != 1 {
		t.Fatalf("expected 1 kill, got %d", kills)
	}
	if len(s.projectiles) != 2 || s.projectiles[0].ID != 1 || s.projectiles[1].ID != 3 {
		t.Errorf("expected projectiles 1 and 3 to survive, got %+v", s.projectiles)
	}
}

func TestRemoveStrayProjectiles(t *testing.T) {
	s := newTestState(never)
	s.projectiles = []*Projectile{
		{ID: 1, Y: -ProjectileSize - 5, Owner: OwnerBot},
		{ID: 2, Y: 300, Owner: OwnerBot},
		{ID: 3, Y: BottomBoundary + 5, Owner: OwnerAlien},
	}
	if n := s.removeStrayProjectiles(); n != 2 {
		t.Errorf("expected 2 removed, got %d", n)
	}
	if len(s.projectiles) != 1 || s.projectiles[0].ID != 2 {
		t.Errorf("expected only projectile 2, got %+v", s.projectiles)
	}
}
