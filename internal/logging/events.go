package logging

import (
	"context"
	"log/slog"

	"go-lane-defense/internal/event"
)

// EventLogger writes every gameplay event to the log. Session milestones go
// out at info level, the per-entity chatter at debug.
type EventLogger struct {
	logger *Logger
}

func NewEventLogger(logger *Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

func (l *EventLogger) OnEvent(e event.Event) {
	level := slog.LevelDebug
	switch e.Type {
	case event.SessionStarted, event.SessionRedirected, event.GamePaused, event.GameResumed, event.HazardBreached:
		level = slog.LevelInfo
	}

	args := []any{"type", string(e.Type)}
	switch p := e.Data.(type) {
	case event.EntityPayload:
		args = append(args, "id", uint64(p.ID), "lane", p.Lane, "x", p.At.X, "y", p.At.Y)
	case event.CountdownPayload:
		args = append(args, "stage", p.Stage, "label", p.Label)
	case event.ResourcePayload:
		args = append(args, "id", uint64(p.ID), "gained", p.Gained, "resources", p.Resources)
	case string:
		args = append(args, "detail", p)
	}
	l.logger.Log(context.Background(), level, "game event", args...)
}
