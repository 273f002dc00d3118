package game

// Court and entity dimensions in court pixels
const (
	CourtWidth  = 1000
	CourtHeight = 600

	BallSize     = 10
	PaddleHeight = 200
	PaddleWidth  = 10
	PaddleTravel = CourtHeight - PaddleHeight // Highest top a paddle may reach
	PaddleStartY = 200

	TickRate = 60 // Ticks per second
)

// Default speeds in pixels per tick or per command
const (
	DefaultBallSpeed = 8.0
	DefaultAISpeed   = 2.5 // Slower than the ball so points can be won
	PlayerStep       = 12.0
	AIJitter         = 10.0 // Dead band that keeps the AI from oscillating
)

// Entity identifiers shared with the position store and renderer
const (
	BallID         = "ball"
	PlayerPaddleID = "paddlePlayer"
	AIPaddleID     = "paddleAI"
)

// Positions is the rendering boundary: entities publish their top-left
// corner here and read it back when computing bounds.
type Positions interface {
	Position(id string) (top, left float64, ok bool)
	SetPosition(id string, top, left float64)
}

type point struct {
	top, left float64
}

// PositionTable is an in-memory Positions shared between the simulation and
// whatever draws it.
type PositionTable struct {
	pos map[string]point
}

func NewPositionTable() *PositionTable {
	return &PositionTable{pos: make(map[string]point)}
}

func (t *PositionTable) Position(id string) (float64, float64, bool) {
	p, ok := t.pos[id]
	return p.top, p.left, ok
}

func (t *PositionTable) SetPosition(id string, top, left float64) {
	t.pos[id] = point{top: top, left: left}
}
