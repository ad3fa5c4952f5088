package engine

import "github.com/lixenwraith/term-snake/input"

// Display is the text-grid device the loop draws on and reads keys from.
// Coordinates are (row, col), zero-based from the top-left cell.
type Display interface {
	// Size returns the grid extent
	Size() (rows, cols int)

	// Clear blanks the back buffer
	Clear()

	// DrawBorder frames the outermost ring of cells
	DrawBorder()

	// Put writes text starting at (row, col); cells past the edge are dropped
	Put(row, col int, text string)

	// Show commits the back buffer to the screen
	Show()

	// PollKey returns one pending intent without blocking, IntentNone if there is none
	PollKey() input.IntentType

	// HideCursor hides the text cursor
	HideCursor()

	// Fini restores the terminal. Safe to call multiple times
	Fini()
}
