package game

const (
	DefaultScreenWidth = 400.0
	BottomBoundary     = 800.0 // aliens below this line have escaped

	GridRows     = 4
	GridFirstCol = 2
	GridLastCol  = 6
	GridSpacing  = 30.0

	AlienSize = 50.0 // hit box edge, anchored at the alien's top-left

	BotStartX = 300.0
	BotStartY = 700.0
	BotWidth  = 50.0
	BotSpeed  = 5.0 // units/tick toward the lowest alien

	DescentInterval     = 250 // ticks between formation descents
	DescentStep         = 50.0
	DetachCheckInterval = 2 // detachment is only rolled on these ticks
	DetachChance        = 0.002
	PathStepInterval    = 3 // detached aliens consume one path step on these ticks

	DefaultPathSteps   = 100
	DefaultPathSpacing = 20.0

	ShiftStep = 50.0 // horizontal formation shift per command

	FireInterval    = 20 // ticks between bot shots
	MuzzleOffsetX   = 25.0
	MuzzleOffsetY   = -10.0
	ProjectileSpeed = 40.0 // units/tick
	ProjectileSize  = 20.0
	EscapeScore     = 1
	KillScore       = 0 // shooting an alien does not score, only escapes do

	MaxPathLength      = 20000.0 // total drawn length accepted by PathRecorder
	SmoothSegmentSteps = 4       // samples per quadratic segment
)
