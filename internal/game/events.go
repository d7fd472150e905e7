package game

import "strings"

// Events is a bitset of what happened during one frame.
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventPaddleHit
	EventPlayerScored
	EventComputerScored
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Scored reports whether either side scored.
func (e Events) Scored() bool {
	return e.Has(EventPlayerScored) || e.Has(EventComputerScored)
}

func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	if e.Has(EventWallBounce) {
		parts = append(parts, "wall")
	}
	if e.Has(EventPaddleHit) {
		parts = append(parts, "paddle")
	}
	if e.Has(EventPlayerScored) {
		parts = append(parts, "player-scored")
	}
	if e.Has(EventComputerScored) {
		parts = append(parts, "computer-scored")
	}
	return strings.Join(parts, "|")
}
