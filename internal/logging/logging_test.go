package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetup_LevelThreshold(t *testing.T) {
	Setup("error")
	if slog.Default().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info logs suppressed at error level")
	}

	Setup("debug")
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug logs enabled at debug level")
	}
}

func TestSetup_UnknownLevelFallsBackToInfo(t *testing.T) {
	Setup("chatty")

	if !slog.Default().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info logs enabled")
	}
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug logs suppressed")
	}
}
