package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
)

// Gameplay owns the snake, the playground and the bait, and applies the rules.
// States are implicit: no bait yet, running, and ended once CheckBoundary is true.
type Gameplay struct {
	snake      *core.Snake
	playground *core.Playground

	bait    core.Coordinate
	hasBait bool

	speed float64 // seconds per tick
	score int

	cfg Config
}

// NewGameplay takes ownership of snake and playground.
// Every initial segment must be interior, otherwise the grid is too small.
func NewGameplay(snake *core.Snake, playground *core.Playground, cfg Config) (*Gameplay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, c := range snake.Body() {
		if !playground.IsInterior(c) {
			size := playground.MaxSize()
			return nil, fmt.Errorf("%w: snake of length %d does not fit %dx%d (segment %v)",
				core.ErrDegenerateGeometry, snake.Len(), size.Row, size.Col, c)
		}
	}

	return &Gameplay{
		snake:      snake,
		playground: playground,
		speed:      cfg.InitialSpeed,
		cfg:        cfg,
	}, nil
}

// Snake returns the owned snake
func (g *Gameplay) Snake() *core.Snake {
	return g.snake
}

// Playground returns the owned playground
func (g *Gameplay) Playground() *core.Playground {
	return g.playground
}

// Bait returns the current bait and whether one has been placed
func (g *Gameplay) Bait() (core.Coordinate, bool) {
	return g.bait, g.hasBait
}

// Speed returns the tick length in seconds
func (g *Gameplay) Speed() float64 {
	return g.speed
}

// Score returns the current score
func (g *Gameplay) Score() int {
	return g.score
}

// TickDuration is the pacing sleep: the current speed, floored at MinTick.
// The floor only affects the sleep, Speed keeps decaying.
func (g *Gameplay) TickDuration() time.Duration {
	ns := g.speed * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	d := time.Duration(ns)
	if d < g.cfg.MinTick {
		return g.cfg.MinTick
	}
	return d
}

// CheckBoundary reports a self collision or a head on the wall ring
func (g *Gameplay) CheckBoundary() bool {
	head := g.snake.Head()
	for c := range g.snake.BodySegments() {
		if c == head {
			return true
		}
	}

	size := g.playground.MaxSize()
	return head.Row == 0 || head.Row == size.Row-1 ||
		head.Col == 0 || head.Col == size.Col-1
}

// CreateBait places fresh bait at a random interior point.
// Bait may land on the snake unless SafeBait is set.
func (g *Gameplay) CreateBait() {
	bait := g.playground.RandomPoint()
	if g.cfg.SafeBait {
		for i := 1; i < constants.BaitRerollLimit && g.snake.Contains(bait); i++ {
			bait = g.playground.RandomPoint()
		}
	}
	g.SetBait(bait)
}

// SetBait places bait at c
func (g *Gameplay) SetBait(c core.Coordinate) {
	g.bait = c
	g.hasBait = true
}

// IncreaseSpeed shortens the tick by the decay factor
func (g *Gameplay) IncreaseSpeed() {
	g.speed *= g.cfg.SpeedDecay
}

// IncreaseScore jumps 0 to 1, then multiplies, saturating at math.MaxInt
func (g *Gameplay) IncreaseScore() {
	if g.score > math.MaxInt/g.cfg.ScoreMultiplier {
		g.score = math.MaxInt
		return
	}
	g.score = max(1, g.score*g.cfg.ScoreMultiplier)
}

// DidAteBait reports whether the head sits on the bait
func (g *Gameplay) DidAteBait() bool {
	return g.hasBait && g.snake.Head() == g.bait
}

// IsDirectionAllowed rejects an absent (zero) candidate and an exact reversal
func (g *Gameplay) IsDirectionAllowed(candidate core.Coordinate) bool {
	if candidate.IsZero() {
		return false
	}
	return candidate != g.snake.Direction().Neg()
}
