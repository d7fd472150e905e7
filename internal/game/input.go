package game

// Direction is an abstract vertical key
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// InputState is the set of directional keys held during a frame.
// The zero value has nothing held.
type InputState struct {
	up   bool
	down bool
}

// Press marks a direction as held. DirNone is ignored.
func (s *InputState) Press(d Direction) {
	s.set(d, true)
}

// Release marks a direction as no longer held.
func (s *InputState) Release(d Direction) {
	s.set(d, false)
}

func (s *InputState) set(d Direction, held bool) {
	switch d {
	case DirUp:
		s.up = held
	case DirDown:
		s.down = held
	}
}

// Held reports whether d is currently held
func (s InputState) Held(d Direction) bool {
	switch d {
	case DirUp:
		return s.up
	case DirDown:
		return s.down
	}
	return false
}

// Any reports whether any direction is held.
func (s InputState) Any() bool {
	return s.up || s.down
}
