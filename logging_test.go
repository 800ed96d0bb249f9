package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerOutputs(t *testing.T) {
	cases := []struct {
		name       string
		headless   bool
		toFile     bool
		wantStderr bool
	}{
		{"headless to stderr", true, false, true},
		{"terminal discards", false, false, false},
		{"terminal to file", false, true, false},
		{"headless to file", true, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Headless = c.headless
			if c.toFile {
				cfg.LogFile = filepath.Join(t.TempDir(), "aliens.log")
			}
			var stderr bytes.Buffer
			logger, closer, err := newLogger(cfg, &stderr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			logger.Info("session started", "width", 400)
			logger.Debug("aliens detached")
			if err := closer.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			if got := strings.Contains(stderr.String(), "session started"); got != c.wantStderr {
				t.Errorf("stderr output = %v, want %v (%q)", got, c.wantStderr, stderr.String())
			}
			if strings.Contains(stderr.String(), "aliens detached") {
				t.Error("debug line should be filtered at info level")
			}
			if c.toFile {
				data, err := os.ReadFile(cfg.LogFile)
				if err != nil {
					t.Fatalf("read log file: %v", err)
				}
				if !strings.Contains(string(data), "session started") {
					t.Errorf("log file missing entry: %q", data)
				}
			}
		})
	}
}

func TestNewLoggerDebugLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Headless = true
	cfg.LogLevel = "debug"
	var stderr bytes.Buffer
	logger, _, err := newLogger(cfg, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("shift rejected", "dx", -50)
	if !strings.Contains(stderr.String(), "shift rejected") {
		t.Errorf("expected debug line, got %q", stderr.String())
	}
}

func TestNewLoggerErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	if _, _, err := newLogger(cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown level")
	}

	cfg = DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "aliens.log")
	if _, _, err := newLogger(cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unwritable log file")
	}
}
