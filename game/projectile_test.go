package game

import "testing"

func TestNewBotProjectile(t *testing.T) {
	bot := &Bot{X: 300, Y: 700, Alive: true}
	proj := NewBotProjectile(7, bot)
	if proj.ID != 7 {
		t.Errorf("expected id 7, got %d", proj.ID)
	}
	if proj.X != 325 || proj.Y != 690 {
		t.Errorf("expected spawn at (325,690), got (%f,%f)", proj.X, proj.Y)
	}
	if proj.FromAlien() {
		t.Error("bot projectile should not be alien-fired")
	}
	if proj.Speed != ProjectileSpeed {
		t.Errorf("unexpected projectile %+v", proj)
	}
}

func TestProjectileUpdate(t *testing.T) {
	up := &Projectile{X: 10, Y: 500, Owner: OwnerBot, Speed: ProjectileSpeed}
	up.Update()
	if up.Y != 460 {
		t.Errorf("bot projectile should rise to 460, got %f", up.Y)
	}

	down := NewAlienProjectile(1, NewAlien(2, 0, 100, 100))
	y0 := down.Y
	down.Update()
	if down.Y != y0+ProjectileSpeed {
		t.Errorf("alien projectile should fall to %f, got %f", y0+ProjectileSpeed, down.Y)
	}
}

func TestProjectileOutOfBounds(t *testing.T) {
	cases := []struct {
		owner Owner
		y     float64
		out   bool
	}{
		{OwnerBot, 0, false},
		{OwnerBot, -ProjectileSize, false},
		{OwnerBot, -ProjectileSize - 1, true},
		{OwnerAlien, BottomBoundary, false},
		{OwnerAlien, BottomBoundary + 1, true},
	}
	for _, c := range cases {
		p := &Projectile{Y: c.y, Owner: c.owner}
		if got := p.OutOfBounds(); got != c.out {
			t.Errorf("owner=%d y=%f: expected %v, got %v", c.owner, c.y, c.out, got)
		}
	}
}

func TestProjectileToState(t *testing.T) {
	p := &Projectile{ID: 3, X: 100.04, Y: 200.26, Owner: OwnerAlien}
	s := p.ToState()
	if s.ID != 3 || s.X != 100 || s.Y != 200.3 || !s.Alien {
		t.Errorf("state mismatch: %+v", s)
	}
}
