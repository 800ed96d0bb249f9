package game

// AlienState is the render-facing view of an alien
type AlienState struct {
	ID        int     `json:"id" msgpack:"id"`
	X         float64 `json:"x" msgpack:"x"`
	Y         float64 `json:"y" msgpack:"y"`
	Row       int     `json:"row" msgpack:"row"`
	Type      string  `json:"type" msgpack:"type"`
	Detached  bool    `json:"det" msgpack:"det"`
	Destroyed bool    `json:"dead,omitempty" msgpack:"dead,omitempty"`
}

// BotState is the render-facing view of the bot
type BotState struct {
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Alive bool    `json:"a" msgpack:"a"`
}

// ProjectileState is the render-facing view of a projectile
type ProjectileState struct {
	ID    int     `json:"id" msgpack:"id"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Alien bool    `json:"al,omitempty" msgpack:"al,omitempty"`
}

// Snapshot is a read-only copy of everything a renderer needs for one tick
type Snapshot struct {
	Session     string            `json:"sid,omitempty" msgpack:"sid,omitempty"`
	Turn        int               `json:"turn" msgpack:"turn"`
	Score       int               `json:"sc" msgpack:"sc"`
	Over        bool              `json:"over" msgpack:"over"`
	Width       float64           `json:"w" msgpack:"w"`
	Height      float64           `json:"h" msgpack:"h"`
	Bot         BotState          `json:"bot" msgpack:"bot"`
	Aliens      []AlienState      `json:"al" msgpack:"al"`
	Projectiles []ProjectileState `json:"pr" msgpack:"pr"`
	Path        []Point           `json:"path,omitempty" msgpack:"path,omitempty"`
}
