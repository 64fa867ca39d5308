package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNopDefault(t *testing.T) {
	// Before Init, logging must be safe.
	Warn("warning before init")
	Sugar.Infof("sugar before init %d", 1)
}

func TestFileOutput(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "logger_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	logFile := filepath.Join(tempDir, "test.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("hello from test")
	Named("humanoid").Warn("bone missing")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing info entry: %s", data)
	}
	if !strings.Contains(string(data), "humanoid") {
		t.Errorf("log file missing named entry: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"warn":    "warn",
		"error":   "error",
		"unknown": "info",
		"":        "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
