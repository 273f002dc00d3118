package protocol

import (
	"encoding/gob"
)

// Direction is a discrete paddle command from the input source
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Side identifies which rail a paddle runs on
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

// MessageType identifies the type of trace record
type MessageType int

const (
	MsgHeader MessageType = iota
	MsgGameState
	MsgLifecycle
)

// Message is the wrapper for all trace records
type Message struct {
	Type    MessageType
	Payload interface{}
}

// Header opens a trace file
type Header struct {
	Version  int
	TickRate int
	Seed     int64
	AISpeed  float64
}

// BallState represents the ball's position and direction
type BallState struct {
	X    float64
	Y    float64
	DX   float64
	DY   float64
	Size float64
}

// PaddleState represents a paddle's state
type PaddleState struct {
	ID     string
	Side   Side
	AI     bool
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// GameState is one rendered frame of the match
type GameState struct {
	Tick        int
	Playing     bool
	Ball        BallState
	Paddles     []PaddleState
	UserScore   int
	AIScore     int
	LastWinner  string
	CourtWidth  int
	CourtHeight int
}

// LifecycleNotice records a lifecycle event at the tick it was posted
type LifecycleNotice struct {
	Tick  int
	Event string
}

func init() {
	// Register all payload types with gob for trace serialization
	gob.Register(Header{})
	gob.Register(BallState{})
	gob.Register(PaddleState{})
	gob.Register(GameState{})
	gob.Register(LifecycleNotice{})
}
