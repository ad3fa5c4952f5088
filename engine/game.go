package engine

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/core"
)

// NewGame composes a playground of the display's extent, a snake heading right
// from its center, and the gameplay owning both. Seed zero picks a time-based seed.
// Any geometry problem is reported here, before a loop exists.
func NewGame(cfg Config, rows, cols int) (*Gameplay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	playground, err := core.NewPlayground(rows, cols, rng)
	if err != nil {
		return nil, err
	}

	snake, err := core.NewSnake(core.Right, cfg.InitialLength, playground.Center())
	if err != nil {
		return nil, err
	}

	return NewGameplay(snake, playground, cfg)
}
