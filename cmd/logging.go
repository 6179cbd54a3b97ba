package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
)

const logFileName = "kanafont.log"

var logFile *os.File

// startLogging sends slog output to <dir>/kanafont.log. The TUI owns the
// terminal, so nothing is logged to stderr.
func startLogging(dir string, debug bool) error {
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: level,
	})))

	logFile = f
	return nil
}

func stopLogging() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	return err
}
