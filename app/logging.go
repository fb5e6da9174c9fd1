package app

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
	logFileName = "term2d.log"
	maxLogSize  = 10 * 1024 * 1024
)

// SetupLogging points the standard logger at a file when debug is on and at
// io.Discard otherwise. The terminal is raw while running, so nothing goes to
// stdout. An empty path means logs/term2d.log. A file past maxLogSize is
// rotated to a timestamped name first. The caller closes the returned file
func SetupLogging(debug bool, path string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if path == "" {
		path = filepath.Join(logDir, logFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("app: create log dir: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
		if err := os.Rename(path, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil, fmt.Errorf("app: rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("app: open log: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== session start pid %d ===", os.Getpid())
	return f, nil
}
