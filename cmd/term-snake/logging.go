package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "term-snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a file logger when debug is set, zerolog.Nop otherwise.
// The game owns the terminal, so logs never reach stdout or stderr.
// A log file over maxLogSize is rotated to a timestamped name first.
func setupLogging(debug bool) (*os.File, zerolog.Logger) {
	if !debug {
		return nil, zerolog.Nop()
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, zerolog.Nop()
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("term-snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, zerolog.Nop()
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, zerolog.Nop()
	}

	logger := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return f, logger
}
