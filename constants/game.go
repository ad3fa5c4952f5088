package constants

import "time"

// Game Loop Timing Defaults
const (
	// InitialSpeed is the starting tick length in seconds
	InitialSpeed = 0.1

	// SpeedDecay scales the tick length each time bait is eaten
	SpeedDecay = 0.99

	// MinTick is the shortest pacing sleep the loop will use
	MinTick = 10 * time.Millisecond

	// EndPause is how long the final message stays on screen
	EndPause = 2 * time.Second
)

// Gameplay Defaults
const (
	// InitialLength is the number of segments the snake starts with
	InitialLength = 15

	// ScoreMultiplier grows the score geometrically after the first bait
	ScoreMultiplier = 2

	// BaitRerollLimit caps placement attempts when bait must avoid the snake
	BaitRerollLimit = 64

	// MinGridSize is the smallest row or column extent with a non-empty interior
	MinGridSize = 3
)
