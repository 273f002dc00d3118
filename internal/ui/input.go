package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/protocol"
)

// KeyToDirection converts a key event to a paddle command.
// Keys that do not move the paddle map to DirNone.
func KeyToDirection(key tcell.Key, r rune) protocol.Direction {
	switch key {
	case tcell.KeyUp:
		return protocol.DirUp
	case tcell.KeyDown:
		return protocol.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return protocol.DirUp
		case 's', 'S':
			return protocol.DirDown
		}
	}
	return protocol.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsMuteKey returns true if the key toggles sound
func IsMuteKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'm' || r == 'M')
}
