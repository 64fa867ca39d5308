package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Playback.Frames != 60 {
		t.Errorf("expected 60 frames, got %d", cfg.Playback.Frames)
	}
	if cfg.Playback.Delta <= 0 {
		t.Errorf("expected positive delta, got %f", cfg.Playback.Delta)
	}
	if cfg.LookAt.Mode != "bone" {
		t.Errorf("expected lookat mode 'bone', got %s", cfg.LookAt.Mode)
	}
	if !cfg.LookAt.Enabled {
		t.Error("expected lookat to be enabled by default")
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("expected output format 'yaml', got %s", cfg.Output.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "avatartool.yaml")

	yamlContent := `
playback:
  frames: 120
  delta: 0.01

lookat:
  mode: "expression"
  target: [1, 1.4, 3]
  enabled: false

output:
  format: "json"

logging:
  level: "debug"
  log_file: "avatartool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Playback.Frames != 120 {
		t.Errorf("expected 120 frames, got %d", cfg.Playback.Frames)
	}
	if cfg.Playback.Delta != 0.01 {
		t.Errorf("expected delta 0.01, got %f", cfg.Playback.Delta)
	}
	if cfg.LookAt.Mode != "expression" {
		t.Errorf("expected lookat mode 'expression', got %s", cfg.LookAt.Mode)
	}
	if cfg.LookAt.Target != [3]float32{1, 1.4, 3} {
		t.Errorf("unexpected lookat target %v", cfg.LookAt.Target)
	}
	if cfg.LookAt.Enabled {
		t.Error("expected lookat to be disabled")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected output format 'json', got %s", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "avatartool.log" {
		t.Errorf("expected log file 'avatartool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
playback:
  frames: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/avatartool.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "saved.yaml")

	cfg := Default()
	cfg.Playback.Frames = 240
	cfg.Output.Format = "json"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Playback.Frames != 240 {
		t.Errorf("expected 240 frames after round trip, got %d", loaded.Playback.Frames)
	}
	if loaded.Output.Format != "json" {
		t.Errorf("expected format 'json' after round trip, got %s", loaded.Output.Format)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "frames flag",
			setup: func() { *flagFrames = 500 },
			verify: func(cfg *Config) {
				if cfg.Playback.Frames != 500 {
					t.Errorf("expected 500 frames, got %d", cfg.Playback.Frames)
				}
			},
			teardown: func() { *flagFrames = 0 },
		},
		{
			name:  "format flag",
			setup: func() { *flagFormat = "json" },
			verify: func(cfg *Config) {
				if cfg.Output.Format != "json" {
					t.Errorf("expected format 'json', got %s", cfg.Output.Format)
				}
			},
			teardown: func() { *flagFormat = "" },
		},
		{
			name:  "lookat mode flag",
			setup: func() { *flagMode = "expression" },
			verify: func(cfg *Config) {
				if cfg.LookAt.Mode != "expression" {
					t.Errorf("expected mode 'expression', got %s", cfg.LookAt.Mode)
				}
			},
			teardown: func() { *flagMode = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}
