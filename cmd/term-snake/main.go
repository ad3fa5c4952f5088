package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/terminal"
)

var (
	lengthFlag     = flag.Int("length", constants.InitialLength, "Initial snake length")
	speedFlag      = flag.Float64("speed", constants.InitialSpeed, "Initial tick length in seconds")
	decayFlag      = flag.Float64("speed-decay", constants.SpeedDecay, "Tick length multiplier per bait, in (0, 1)")
	multiplierFlag = flag.Int("score-multiplier", constants.ScoreMultiplier, "Score multiplier per bait after the first")
	minTickFlag    = flag.Duration("min-tick", constants.MinTick, "Shortest pacing sleep, 0 disables the floor")
	endPauseFlag   = flag.Duration("end-pause", constants.EndPause, "How long the final message stays on screen")
	seedFlag       = flag.Uint64("seed", 0, "Bait placement seed, 0 picks one from the clock")
	safeBaitFlag   = flag.Bool("safe-bait", false, "Never place bait on the snake")
	debugFlag      = flag.Bool("debug", false, "Write a debug log to logs/")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg := configFromFlags()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "term-snake: %v\n", err)
		os.Exit(1)
	}

	logFile, logger := setupLogging(*debugFlag)
	err := run(cfg, logger)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-snake: %v\n", err)
		os.Exit(1)
	}
}

// configFromFlags maps parsed flags onto a Config, resolving a zero seed
func configFromFlags() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.InitialLength = *lengthFlag
	cfg.InitialSpeed = *speedFlag
	cfg.SpeedDecay = *decayFlag
	cfg.ScoreMultiplier = *multiplierFlag
	cfg.MinTick = *minTickFlag
	cfg.EndPause = *endPauseFlag
	cfg.SafeBait = *safeBaitFlag
	cfg.Seed = *seedFlag
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg
}

// run owns the terminal for one game; the deferred Fini restores it on every return path
func run(cfg engine.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := terminal.NewScreen(logger)
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()

	rows, cols := screen.Size()
	gameplay, err := engine.NewGame(cfg, rows, cols)
	if err != nil {
		logger.Error().Err(err).Int("rows", rows).Int("cols", cols).Msg("cannot start game")
		return err
	}

	logger.Info().
		Int("rows", rows).
		Int("cols", cols).
		Uint64("seed", cfg.Seed).
		Int("length", cfg.InitialLength).
		Float64("speed", cfg.InitialSpeed).
		Bool("safe_bait", cfg.SafeBait).
		Msg("session started")

	loop := engine.NewLoop(gameplay, screen, engine.NewTimeProvider(), logger, cfg)
	loop.Run(ctx)
	return nil
}
