package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerFileSinkStaysAtInfo(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "update_log.txt")

	logger, closeLog, err := newLogger(logFile, true)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("kept line")
	logger.Debug("dropped line")
	closeLog()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), "kept line") {
		t.Errorf("info message missing from log file: %q", data)
	}
	if strings.Contains(string(data), "dropped line") {
		t.Errorf("debug message leaked into log file: %q", data)
	}
}

func TestLoggerAppendsAcrossRuns(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "update_log.txt")

	for _, msg := range []string{"first run", "second run"} {
		logger, closeLog, err := newLogger(logFile, false)
		if err != nil {
			t.Fatalf("newLogger failed: %v", err)
		}
		logger.Info(msg)
		closeLog()
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Errorf("runs not appended: %q", data)
	}
}
