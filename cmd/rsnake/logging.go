package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "rsnake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog and the standard logger. Without debug everything is discarded so
// nothing is written over the animation; with debug, logs go to logDir/logFileName, rotating
// the previous file once it exceeds maxLogSize. Returns the open file, or nil.
func setupLogging(debug bool) *os.File {
	if !debug {
		discard()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		discard()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("rsnake_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		discard()
		return nil
	}

	// slog.SetDefault redirects the log package too; set the writer after it
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)
}
