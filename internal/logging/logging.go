package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Setup installs the process-wide JSON logger. Unknown level strings fall
// back to info, matching what config validation accepts.
func Setup(level string) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		lv = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lv,
	})

	slog.SetDefault(slog.New(handler).With("service", "pulseguard"))
}

// Fatalf logs the formatted message at error level and exits.
func Fatalf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
