package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	LogDir      = "logs"
	LogFileName = "labyrinth.log"
	MaxLogSize  = 10 * 1024 * 1024 // Rotate above 10 MiB
)

// SetupLogging points the standard logger at LogDir/LogFileName when debug is
// set, rotating an oversized file first. Otherwise logs are discarded so they
// never reach a terminal owned by the UI. The caller closes the returned file.
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(LogDir, LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(LogDir, fmt.Sprintf("labyrinth-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}
