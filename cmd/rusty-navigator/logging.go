package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "rusty-navigator.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes the standard logger to logs/ when debug is set and discards it otherwise
// The terminal belongs to tcell, so nothing is ever written to stdout or stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("rusty-navigator-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("logging started, debug=%v", debug)
	return f
}

// closeLog flushes and closes the debug log, os.Exit would skip a deferred Close
func closeLog(f *os.File) {
	if f == nil {
		return
	}
	log.SetOutput(io.Discard)
	_ = f.Sync()
	_ = f.Close()
}
