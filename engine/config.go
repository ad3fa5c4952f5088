package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/term-snake/constants"
)

// ErrInvalidConfig is returned by Validate for out-of-range tunables
var ErrInvalidConfig = errors.New("invalid config")

// maxSpeed is the longest tick, in seconds, a time.Duration can hold
const maxSpeed = float64(math.MaxInt64) / float64(time.Second)

// Config holds the tunables of one game session
type Config struct {
	// InitialLength is the starting snake length
	InitialLength int

	// InitialSpeed is the starting tick length in seconds
	InitialSpeed float64

	// SpeedDecay multiplies the tick length on every bait, must be in (0, 1)
	SpeedDecay float64

	// ScoreMultiplier grows the score after the first bait, must be at least 2
	ScoreMultiplier int

	// MinTick floors the pacing sleep, zero disables the floor
	MinTick time.Duration

	// EndPause keeps the final message on screen
	EndPause time.Duration

	// SafeBait re-rolls bait that lands on the snake
	SafeBait bool

	// Seed drives bait placement, zero picks a time-based seed
	Seed uint64
}

// DefaultConfig returns the stock game tunables
func DefaultConfig() Config {
	return Config{
		InitialLength:   constants.InitialLength,
		InitialSpeed:    constants.InitialSpeed,
		SpeedDecay:      constants.SpeedDecay,
		ScoreMultiplier: constants.ScoreMultiplier,
		MinTick:         constants.MinTick,
		EndPause:        constants.EndPause,
	}
}

// Validate rejects configurations that break the speed and score invariants
func (c Config) Validate() error {
	switch {
	case c.InitialLength < 1:
		return fmt.Errorf("%w: length %d must be at least 1", ErrInvalidConfig, c.InitialLength)
	case c.InitialSpeed <= 0:
		return fmt.Errorf("%w: speed %g must be positive", ErrInvalidConfig, c.InitialSpeed)
	case c.InitialSpeed >= maxSpeed:
		return fmt.Errorf("%w: speed %g must be below %g seconds", ErrInvalidConfig, c.InitialSpeed, maxSpeed)
	case c.SpeedDecay <= 0 || c.SpeedDecay >= 1:
		return fmt.Errorf("%w: speed decay %g must be in (0, 1)", ErrInvalidConfig, c.SpeedDecay)
	case c.ScoreMultiplier < 2:
		return fmt.Errorf("%w: score multiplier %d must be at least 2", ErrInvalidConfig, c.ScoreMultiplier)
	case c.MinTick < 0:
		return fmt.Errorf("%w: min tick %v must not be negative", ErrInvalidConfig, c.MinTick)
	case c.EndPause < 0:
		return fmt.Errorf("%w: end pause %v must not be negative", ErrInvalidConfig, c.EndPause)
	}
	return nil
}
