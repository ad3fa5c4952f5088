package constants

// Glyphs
const (
	SnakeHead = "O"
	SnakeBody = "#"
	Bait      = "✕"
)

// Score indicator placement on the top border
const (
	ScoreRow = 0
	ScoreCol = 5
)

// Messages
const (
	ScoreFormat = " Score: %d "
	DiedFormat  = "Snake died at %d points"
	QuitMessage = "QUITTING..."
)
