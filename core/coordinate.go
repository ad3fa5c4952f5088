package core

import "fmt"

// Coordinate is a grid position or a direction vector.
// Row increases downward, Col increases to the right.
type Coordinate struct {
	Row int
	Col int
}

// NewCoordinate is a convenience constructor for Coordinate
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Add returns the component-wise sum
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Neg returns the opposite vector
func (c Coordinate) Neg() Coordinate {
	return Coordinate{Row: -c.Row, Col: -c.Col}
}

// IsZero reports whether both components are zero
func (c Coordinate) IsZero() bool {
	return c.Row == 0 && c.Col == 0
}

// RowCol returns the components in display call order
func (c Coordinate) RowCol() (int, int) {
	return c.Row, c.Col
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Unit direction vectors
var (
	Up    = Coordinate{Row: -1, Col: 0}
	Down  = Coordinate{Row: 1, Col: 0}
	Left  = Coordinate{Row: 0, Col: -1}
	Right = Coordinate{Row: 0, Col: 1}
)
