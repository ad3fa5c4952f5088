package core

import (
	"fmt"
	"iter"

	"github.com/lixenwraith/term-snake/constants"
)

// Segment is one drawable snake cell
type Segment struct {
	Row, Col int
	Glyph    string
}

// Snake is an ordered body, front to back, front is the head
type Snake struct {
	direction Coordinate
	body      []Coordinate
}

// NewSnake lays out a horizontal body of length segments trailing from position.
// Segment i (front first, i from length-1 down to 0) sits at position + (1, i+1).
func NewSnake(direction Coordinate, length int, position Coordinate) (*Snake, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	body := make([]Coordinate, 0, length)
	for i := length - 1; i >= 0; i-- {
		body = append(body, position.Add(Coordinate{Row: 1, Col: i + 1}))
	}

	return &Snake{
		direction: direction,
		body:      body,
	}, nil
}

// Head returns the front segment
func (s *Snake) Head() Coordinate {
	return s.body[0]
}

// Direction returns the current travel vector
func (s *Snake) Direction() Coordinate {
	return s.direction
}

// SetDirection replaces the travel vector without validation
func (s *Snake) SetDirection(d Coordinate) {
	s.direction = d
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of all segments, head first
func (s *Snake) Body() []Coordinate {
	out := make([]Coordinate, len(s.body))
	copy(out, s.body)
	return out
}

// BodySegments yields every segment except the head
func (s *Snake) BodySegments() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, c := range s.body[1:] {
			if !yield(c) {
				return
			}
		}
	}
}

// Segments yields every segment with its glyph, head first
func (s *Snake) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i, c := range s.body {
			glyph := constants.SnakeBody
			if i == 0 {
				glyph = constants.SnakeHead
			}
			if !yield(Segment{Row: c.Row, Col: c.Col, Glyph: glyph}) {
				return
			}
		}
	}
}

// Contains reports whether any segment, head included, is at c
func (s *Snake) Contains(c Coordinate) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Move advances one cell: drops the tail, prepends head + direction
func (s *Snake) Move() {
	head := s.body[0].Add(s.direction)
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// Eat appends bait as the new tail so the next Move keeps the length gained
func (s *Snake) Eat(bait Coordinate) {
	s.body = append(s.body, bait)
}
