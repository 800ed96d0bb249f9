package game

import "testing"

func TestBotStaysPutWithoutAliens(t *testing.T) {
	b := &Bot{X: 1000, Y: 700, Alive: true}
	b.Update(nil, 400)
	if b.X != 1000 || b.Y != 700 {
		t.Errorf("bot should not move without aliens, got (%f,%f)", b.X, b.Y)
	}
}

func TestBotTracksLowestAlien(t *testing.T) {
	aliens := []*Alien{
		NewAlien(1, 0, 50, 100),
		NewAlien(2, 1, 250, 200),
	}

	b := NewBot()
	b.Update(aliens, 400)
	if b.X != BotStartX-BotSpeed {
		t.Errorf("expected bot to move left to %f, got %f", BotStartX-BotSpeed, b.X)
	}

	b.X = 200
	b.Update(aliens, 400)
	if b.X != 205 {
		t.Errorf("expected bot to move right to 205, got %f", b.X)
	}

	b.X = 250
	b.Update(aliens, 400)
	if b.X != 250 {
		t.Errorf("aligned bot should not move, got %f", b.X)
	}
}

func TestBotClampedToScreen(t *testing.T) {
	aliens := []*Alien{NewAlien(1, 0, 500, 100)}
	b := &Bot{X: 348, Y: 700, Alive: true}
	b.Update(aliens, 400)
	if b.X != 400-BotWidth {
		t.Errorf("expected clamp to %f, got %f", 400-BotWidth, b.X)
	}

	aliens[0].X = -100
	b.X = 2
	b.Update(aliens, 400)
	if b.X != 0 {
		t.Errorf("expected clamp to 0, got %f", b.X)
	}
}

func TestBotMuzzle(t *testing.T) {
	b := &Bot{X: 100, Y: 700}
	if m := b.Muzzle(); m != (Point{125, 690}) {
		t.Errorf("expected muzzle (125,690), got %v", m)
	}
}
