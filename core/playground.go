package core

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/constants"
)

// Playground is the bounded grid; its outermost ring is the wall
type Playground struct {
	maxSize Coordinate
	rng     *rand.Rand
}

// NewPlayground creates a rows x cols grid. A nil rng gets a time-seeded source.
func NewPlayground(rows, cols int, rng *rand.Rand) (*Playground, error) {
	if rows < constants.MinGridSize || cols < constants.MinGridSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrDegenerateGeometry, rows, cols, constants.MinGridSize, constants.MinGridSize)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Playground{
		maxSize: Coordinate{Row: rows, Col: cols},
		rng:     rng,
	}, nil
}

// MaxSize returns the grid extent as (rows, cols)
func (p *Playground) MaxSize() Coordinate {
	return p.maxSize
}

// Origin is always the top-left cell
func (p *Playground) Origin() Coordinate {
	return Coordinate{}
}

// Center uses floor division on both axes
func (p *Playground) Center() Coordinate {
	return Coordinate{Row: p.maxSize.Row / 2, Col: p.maxSize.Col / 2}
}

// RandomPoint returns a uniform interior cell, never on the border ring
func (p *Playground) RandomPoint() Coordinate {
	return Coordinate{
		Row: 1 + p.rng.Intn(p.maxSize.Row-2),
		Col: 1 + p.rng.Intn(p.maxSize.Col-2),
	}
}

// IsBorder reports whether c lies on the wall ring
func (p *Playground) IsBorder(c Coordinate) bool {
	return c.Row == 0 || c.Row == p.maxSize.Row-1 ||
		c.Col == 0 || c.Col == p.maxSize.Col-1
}

// IsInterior reports whether c is strictly inside the wall ring
func (p *Playground) IsInterior(c Coordinate) bool {
	return c.Row > 0 && c.Row < p.maxSize.Row-1 &&
		c.Col > 0 && c.Col < p.maxSize.Col-1
}
