package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/input"
)

// ErrNotTerminal is returned when stdin is not attached to a TTY
var ErrNotTerminal = errors.New("stdin is not a terminal")

// eventQueueSize bounds events buffered between the pump and PollKey
const eventQueueSize = 64

var (
	styleText   = tcell.StyleDefault
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBait   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// glyphStyles colors the game glyphs; any other text uses styleText
var glyphStyles = map[string]tcell.Style{
	constants.SnakeHead: styleHead,
	constants.SnakeBody: styleBody,
	constants.Bait:      styleBait,
}

// Screen is a tcell.Screen exposed as a row/col text grid with key polling
type Screen struct {
	screen tcell.Screen
	keys   *input.KeyTable
	log    zerolog.Logger

	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
}

// NewScreen opens the controlling terminal in raw mode on the alternate screen
func NewScreen(logger zerolog.Logger) (*Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	return Attach(s, logger), nil
}

// Attach wraps an already initialized tcell.Screen and starts the event pump
func Attach(s tcell.Screen, logger zerolog.Logger) *Screen {
	scr := &Screen{
		screen: s,
		keys:   input.DefaultKeyTable(),
		log:    logger,
		events: make(chan tcell.Event, eventQueueSize),
		quit:   make(chan struct{}),
	}

	go func() {
		// Panic recovery for the pump so the terminal is reset before exit
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		scr.pump()
	}()

	return scr
}

// pump forwards tcell events until the screen is finalized
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Size returns the grid extent as (rows, cols)
func (s *Screen) Size() (int, int) {
	w, h := s.screen.Size()
	return h, w
}

// Clear blanks the back buffer
func (s *Screen) Clear() {
	s.screen.Clear()
}

// DrawBorder frames the outermost ring of cells with box-drawing runes
func (s *Screen) DrawBorder() {
	w, h := s.screen.Size()
	if w < 2 || h < 2 {
		return
	}

	for x := 1; x < w-1; x++ {
		s.screen.SetContent(x, 0, tcell.RuneHLine, nil, styleBorder)
		s.screen.SetContent(x, h-1, tcell.RuneHLine, nil, styleBorder)
	}
	for y := 1; y < h-1; y++ {
		s.screen.SetContent(0, y, tcell.RuneVLine, nil, styleBorder)
		s.screen.SetContent(w-1, y, tcell.RuneVLine, nil, styleBorder)
	}
	s.screen.SetContent(0, 0, tcell.RuneULCorner, nil, styleBorder)
	s.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, styleBorder)
	s.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, styleBorder)
	s.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, styleBorder)
}

// Put writes text from (row, col) rightward; tcell drops cells off the grid
func (s *Screen) Put(row, col int, text string) {
	style, ok := glyphStyles[text]
	if !ok {
		style = styleText
	}

	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}
		s.screen.SetContent(col, row, r, nil, style)
		col += width
	}
}

// Show commits the back buffer
func (s *Screen) Show() {
	s.screen.Show()
}

// PollKey returns the intent of the first pending key event, never blocking.
// Resize events met on the way trigger a full redraw and are otherwise skipped.
func (s *Screen) PollKey() input.IntentType {
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return s.keys.Resolve(ev)
			case *tcell.EventResize:
				w, h := ev.Size()
				s.log.Debug().Int("cols", w).Int("rows", h).Msg("terminal resized, playground unchanged")
				s.screen.Sync()
			}
		default:
			return input.IntentNone
		}
	}
}

// HideCursor hides the text cursor
func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

// Fini stops the event pump and restores the terminal. Safe to call multiple times
func (s *Screen) Fini() {
	s.once.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}
