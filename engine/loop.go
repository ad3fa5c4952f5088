package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/input"
)

// Outcome is the loop-termination signal returned by each tick
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeDied
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDied:
		return "died"
	case OutcomeQuit:
		return "quit"
	default:
		return "continue"
	}
}

// Result summarizes a finished session
type Result struct {
	Outcome Outcome
	Score   int
	Ticks   int
}

// Loop drives one game: render, decide, mutate, poll input, pace
type Loop struct {
	gameplay *Gameplay
	display  Display
	clock    Clock
	log      zerolog.Logger

	endPause time.Duration
	ticks    int
}

// NewLoop wires a loop over the given gameplay and display
func NewLoop(gameplay *Gameplay, display Display, clock Clock, logger zerolog.Logger, cfg Config) *Loop {
	return &Loop{
		gameplay: gameplay,
		display:  display,
		clock:    clock,
		log:      logger,
		endPause: cfg.EndPause,
	}
}

// Run ticks until the snake dies, a quit key arrives or ctx is canceled,
// then shows the end message for the configured pause
func (l *Loop) Run(ctx context.Context) Result {
	g := l.gameplay
	l.display.HideCursor()
	if _, ok := g.Bait(); !ok {
		g.CreateBait()
	}

	start := l.clock.Now()
	outcome := OutcomeContinue
	for outcome == OutcomeContinue {
		if ctx.Err() != nil {
			outcome = OutcomeQuit
			break
		}

		outcome = l.Tick()
		if outcome != OutcomeContinue {
			break
		}

		if err := l.clock.Sleep(ctx, g.TickDuration()); err != nil {
			outcome = OutcomeQuit
		}
	}

	res := Result{Outcome: outcome, Score: g.Score(), Ticks: l.ticks}
	l.log.Info().
		Stringer("outcome", outcome).
		Int("score", res.Score).
		Int("ticks", res.Ticks).
		Int("length", g.Snake().Len()).
		Dur("duration", l.clock.Now().Sub(start)).
		Msg("game ended")

	l.finish(res)
	return res
}

// Tick runs exactly one iteration of the game loop
func (l *Loop) Tick() Outcome {
	g := l.gameplay
	snake := g.Snake()
	l.ticks++

	l.display.Clear()
	l.display.DrawBorder()

	l.display.Put(constants.ScoreRow, constants.ScoreCol, fmt.Sprintf(constants.ScoreFormat, g.Score()))
	if bait, ok := g.Bait(); ok {
		l.display.Put(bait.Row, bait.Col, constants.Bait)
	}

	// Collision and eating look at the head left by the previous tick's move
	if g.CheckBoundary() {
		return OutcomeDied
	}

	if g.DidAteBait() {
		bait, _ := g.Bait()
		snake.Eat(bait)
		g.CreateBait()
		g.IncreaseSpeed()
		g.IncreaseScore()

		next, _ := g.Bait()
		l.log.Debug().
			Int("score", g.Score()).
			Float64("speed", g.Speed()).
			Int("length", snake.Len()).
			Stringer("bait", next).
			Msg("bait eaten")
	}

	for seg := range snake.Segments() {
		l.display.Put(seg.Row, seg.Col, seg.Glyph)
	}

	snake.Move()

	intent := l.display.PollKey()
	if intent == input.IntentQuit {
		return OutcomeQuit
	}
	if next, ok := intent.Direction(); ok && g.IsDirectionAllowed(next) {
		snake.SetDirection(next)
	}

	l.display.Show()
	return OutcomeContinue
}

// finish renders the centered end message and holds it on screen
func (l *Loop) finish(res Result) {
	msg := constants.QuitMessage
	if res.Outcome == OutcomeDied {
		msg = fmt.Sprintf(constants.DiedFormat, res.Score)
	}

	center := l.gameplay.Playground().Center()
	col := max(0, center.Col-runewidth.StringWidth(msg)/2)

	l.display.Clear()
	l.display.Put(center.Row, col, msg)
	l.display.Show()

	// The pause runs even after an interrupt so the message is readable
	_ = l.clock.Sleep(context.Background(), l.endPause)
}
