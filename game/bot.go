package game

// Bot is the player's auto-aiming gun. It is never destroyed.
type Bot struct {
	X, Y  float64
	Alive bool
}

// NewBot creates the bot at its start position
func NewBot() *Bot {
	return &Bot{X: BotStartX, Y: BotStartY, Alive: true}
}

// Update steps the bot toward the lowest alien's x at BotSpeed. With no
// aliens left it stays put. There is no overshoot correction, so the bot may
// jitter around a target it cannot land on exactly.
func (b *Bot) Update(aliens []*Alien, screenWidth float64) {
	target, ok := LowestAlien(aliens)
	if !ok {
		return
	}
	speed := 0.0
	switch {
	case b.X < target.X:
		speed = BotSpeed
	case b.X > target.X:
		speed = -BotSpeed
	}
	b.X = clamp(b.X+speed, 0, screenWidth-BotWidth)
}

// Muzzle returns where a new shot appears
func (b *Bot) Muzzle() Point {
	return Point{X: b.X + MuzzleOffsetX, Y: b.Y + MuzzleOffsetY}
}

// ToState converts to a render snapshot record
func (b *Bot) ToState() BotState {
	return BotState{
		X:     round1(b.X),
		Y:     round1(b.Y),
		Alive: b.Alive,
	}
}
