package game

// Owner tells who fired a projectile
type Owner uint8

const (
	OwnerBot Owner = iota
	OwnerAlien
)

// Projectile is a shot travelling straight up (bot) or down (alien).
// Alien-fired shots are modelled but nothing spawns them yet.
type Projectile struct {
	ID    int
	X, Y  float64
	Owner Owner
	Speed float64
}

// NewBotProjectile creates a shot at the bot's muzzle
func NewBotProjectile(id int, bot *Bot) *Projectile {
	m := bot.Muzzle()
	return &Projectile{
		ID:    id,
		X:     m.X,
		Y:     m.Y,
		Owner: OwnerBot,
		Speed: ProjectileSpeed,
	}
}

// NewAlienProjectile creates a downward shot from an alien
func NewAlienProjectile(id int, a *Alien) *Projectile {
	return &Projectile{
		ID:    id,
		X:     a.X + AlienSize/2,
		Y:     a.Y + AlienSize,
		Owner: OwnerAlien,
		Speed: ProjectileSpeed,
	}
}

// FromAlien reports whether an alien fired the projectile
func (p *Projectile) FromAlien() bool {
	return p.Owner == OwnerAlien
}

// Update moves the projectile one tick
func (p *Projectile) Update() {
	if p.FromAlien() {
		p.Y += p.Speed
	} else {
		p.Y -= p.Speed
	}
}

// OutOfBounds reports whether the projectile has left the playfield in its
// direction of travel
func (p *Projectile) OutOfBounds() bool {
	if p.FromAlien() {
		return p.Y > BottomBoundary
	}
	return p.Y < -ProjectileSize
}

// ToState converts to a render snapshot record
func (p *Projectile) ToState() ProjectileState {
	return ProjectileState{
		ID:    p.ID,
		X:     round1(p.X),
		Y:     round1(p.Y),
		Alien: p.FromAlien(),
	}
}
