// Package logging wraps log/slog with the level handling and session tagging
// used by both shells.
package logging

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelEnv selects the minimum log level: DEBUG, INFO, WARN or ERROR.
const LevelEnv = "LANES_LOG_LEVEL"

// Logger wraps slog.Logger.
type Logger struct {
	*slog.Logger
}

// NewLogger writes text records to w at the level taken from LevelEnv.
func NewLogger(w io.Writer) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: getLogLevelFromEnv(),
	})
	return &Logger{slog.New(handler)}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger {
	return &Logger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ForSession returns a child logger tagging every record with the session ID
// and the player name.
func (l *Logger) ForSession(sessionID, player string) *Logger {
	return &Logger{l.With("session_id", sessionID, "player", player)}
}

// Failure logs err at error level.
func (l *Logger) Failure(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.Error(msg, args...)
}

// GenerateSessionID creates a new random session ID.
func GenerateSessionID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func getLogLevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv(LevelEnv)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
