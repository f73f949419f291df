package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/transporters/engine"
)

const (
	logDir      = "logs"
	logFileName = "transporters.log"
	maxLogSize  = 10 << 20 // Rotate above 10MB
)

// setupLogging routes engine and stdlib logging to logs/transporters.log when debug is set
// Nothing is written to stdout or stderr while the terminal is in raw mode
// Returns the open log file, nil when logging is disabled
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		engine.SetLogger(nil)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("transporters-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	engine.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f
}
