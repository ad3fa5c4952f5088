package core

import "errors"

var (
	// ErrDegenerateGeometry is returned when the grid cannot hold bait or the initial snake
	ErrDegenerateGeometry = errors.New("grid too small")

	// ErrInvalidLength is returned for a snake shorter than one segment
	ErrInvalidLength = errors.New("snake length must be at least 1")
)
