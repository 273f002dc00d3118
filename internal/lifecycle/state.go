// Package lifecycle drives the match between PLAYING and GAME_OVER and fans
// lifecycle events out to subscribed entities.
package lifecycle

// State is the match phase
type State int

const (
	GameOver State = iota
	Playing
)

var stateName = map[State]string{
	GameOver: "game_over",
	Playing:  "playing",
}

func (s State) String() string {
	return stateName[s]
}

// Event is a transient domain signal delivered once to every subscriber
type Event int

const (
	WinAI Event = iota
	WinUser
	StartNewGame
)

var eventName = map[Event]string{
	WinAI:        "win_ai",
	WinUser:      "win_user",
	StartNewGame: "start_new_game",
}

func (e Event) String() string {
	if name, ok := eventName[e]; ok {
		return name
	}
	return "unknown"
}

// Events lists every lifecycle event in declaration order
func Events() []Event {
	return []Event{WinAI, WinUser, StartNewGame}
}

// Next applies the shared transition rule to s. Only a win ends play and
// only StartNewGame resumes it; everything else leaves s unchanged.
func Next(s State, e Event) State {
	switch s {
	case Playing:
		if e == WinAI || e == WinUser {
			return GameOver
		}
	case GameOver:
		if e == StartNewGame {
			return Playing
		}
	}
	return s
}
