package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/paddleball/internal/game"
)

// HoldFrames is how long a key press counts as held without a repeat
// (~133ms at 60Hz). Terminals do not report key releases.
const HoldFrames = 8

// KeyToDirection converts a key event to a movement direction
func KeyToDirection(key tcell.Key, r rune) game.Direction {
	switch key {
	case tcell.KeyUp:
		return game.DirUp
	case tcell.KeyDown:
		return game.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.DirUp
		case 's', 'S':
			return game.DirDown
		}
	}
	return game.DirNone
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

// KeyLatch turns key presses into a held InputState. A press holds its
// direction for HoldFrames frames; a repeat restarts the countdown and
// pressing the other direction replaces it.
type KeyLatch struct {
	dir   game.Direction
	ticks int
}

func (l *KeyLatch) Press(dir game.Direction) {
	if dir == game.DirNone {
		return
	}
	l.dir = dir
	l.ticks = HoldFrames
}

// State returns the keys held for the coming frame.
func (l *KeyLatch) State() game.InputState {
	var in game.InputState
	if l.ticks > 0 {
		in.Press(l.dir)
	}
	return in
}

// Tick counts down one frame and releases the key when it expires.
func (l *KeyLatch) Tick() {
	if l.ticks > 0 {
		l.ticks--
		if l.ticks == 0 {
			l.dir = game.DirNone
		}
	}
}
