// Package terminal provides the tcell-backed text-grid display the game draws on.
//
// Features:
//   - (row, col) addressed writes with rune-width aware column advance
//   - Box-drawing border around the whole grid
//   - Non-blocking key polling fed by a single event-pump goroutine
//   - Clean terminal restoration on exit and on panic
package terminal
