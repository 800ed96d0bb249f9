// Package game is the fixed-tick simulation of the alien formation, the
// auto-aiming bot and its shots. It does no I/O and owns no clock: a driver
// calls Tick at its own cadence and reads snapshots back.
package game

import "math/rand/v2"

// Random is the source for detachment rolls
type Random interface {
	Float64() float64
}

// Config holds the per-session settings of a State
type Config struct {
	ScreenWidth float64
	Seed        uint64
	Session     string
	Rand        Random // overrides Seed when set
}

// TickResult reports what happened during one tick
type TickResult struct {
	Turn     int
	Detached int
	Escaped  int
	Kills    int
	Fired    bool
	Dropped  int // projectiles that left the playfield
	Over     bool
}

// State is the whole simulation for one game session. It is not safe for
// concurrent use: a single owner calls Tick and the commands between ticks.
type State struct {
	aliens      []*Alien
	bot         *Bot
	projectiles []*Projectile
	path        Path
	score       int
	turn        int
	width       float64
	session     string
	rng         Random
	nextID      int
	grid        *alienGrid
}

// NewState creates a session with the alien grid and the bot in place
func NewState(cfg Config) *State {
	width := cfg.ScreenWidth
	if width <= 0 {
		width = DefaultScreenWidth
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}
	s := &State{
		bot:     NewBot(),
		width:   width,
		session: cfg.Session,
		rng:     rng,
	}
	s.spawnGrid()
	return s
}

func (s *State) spawnGrid() {
	s.aliens = make([]*Alien, 0, GridRows*(GridLastCol-GridFirstCol+1))
	for row := 0; row < GridRows; row++ {
		for col := GridFirstCol; col <= GridLastCol; col++ {
			s.aliens = append(s.aliens, NewAlien(s.newID(), row, float64(col)*GridSpacing, float64(row)*GridSpacing))
		}
	}
}

func (s *State) newID() int {
	s.nextID++
	return s.nextID
}

// Tick advances the simulation by one step: bot, aliens, firing, projectile
// movement, collisions, then stray projectile removal. The turn counter is
// incremented afterwards, so the first tick runs as turn 0.
func (s *State) Tick() TickResult {
	res := TickResult{Turn: s.turn}

	s.bot.Update(s.aliens, s.width)
	res.Detached, res.Escaped = s.moveAliens()

	if s.turn%FireInterval == 0 {
		s.projectiles = append(s.projectiles, NewBotProjectile(s.newID(), s.bot))
		res.Fired = true
	}
	for _, p := range s.projectiles {
		p.Update()
	}

	res.Kills = s.checkCollisions()
	res.Dropped = s.removeStrayProjectiles()

	s.turn++
	res.Over = s.Over()
	return res
}

// SetPath replaces the drawn path that aliens adopt when they detach. Raw
// samples are smoothed first; an empty input restores the default fallback.
// Aliens already following a path keep their own copy.
func (s *State) SetPath(raw []Point) int {
	s.path = SmoothPath(raw)
	return len(s.path)
}

// Over reports whether every alien is gone
func (s *State) Over() bool {
	return len(s.aliens) == 0
}

// Score returns the session score
func (s *State) Score() int {
	return s.score
}

// Turn returns the number of completed ticks
func (s *State) Turn() int {
	return s.turn
}

// Width returns the screen width the session was created with
func (s *State) Width() float64 {
	return s.width
}

// AlienCount returns the number of aliens still in play
func (s *State) AlienCount() int {
	return len(s.aliens)
}

// Snapshot copies the state for a renderer
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Session:     s.session,
		Turn:        s.turn,
		Score:       s.score,
		Over:        s.Over(),
		Width:       s.width,
		Height:      BottomBoundary,
		Bot:         s.bot.ToState(),
		Aliens:      make([]AlienState, 0, len(s.aliens)),
		Projectiles: make([]ProjectileState, 0, len(s.projectiles)),
	}
	for _, a := range s.aliens {
		snap.Aliens = append(snap.Aliens, a.ToState())
	}
	for _, p := range s.projectiles {
		snap.Projectiles = append(snap.Projectiles, p.ToState())
	}
	if len(s.path) > 0 {
		snap.Path = make([]Point, len(s.path))
		copy(snap.Path, s.path)
	}
	return snap
}
