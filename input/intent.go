package input

import "github.com/lixenwraith/term-snake/core"

// IntentType discriminates what a key press asks the game to do
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit // Ctrl+C, Esc, q

	// Steering
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
)

// directions maps steering intents to unit vectors
var directions = map[IntentType]core.Coordinate{
	IntentUp:    core.Up,
	IntentDown:  core.Down,
	IntentLeft:  core.Left,
	IntentRight: core.Right,
}

// Direction returns the unit vector for a steering intent.
// Non-steering intents yield the zero Coordinate and false.
func (i IntentType) Direction() (core.Coordinate, bool) {
	d, ok := directions[i]
	return d, ok
}

func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "none"
	}
}
