// Package config handles avatartool configuration loading and management.
package config

// Config holds all avatartool settings.
type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	LookAt   LookAtConfig   `yaml:"lookat"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PlaybackConfig holds simulation settings.
type PlaybackConfig struct {
	Frames int     `yaml:"frames"`
	Delta  float32 `yaml:"delta"`
}

// LookAtConfig holds gaze settings for the simulation.
type LookAtConfig struct {
	Mode    string     `yaml:"mode"` // "bone" or "expression"
	Target  [3]float32 `yaml:"target"`
	Enabled bool       `yaml:"enabled"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "yaml" or "json"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			Frames: 60,
			Delta:  1.0 / 60.0,
		},
		LookAt: LookAtConfig{
			Mode:    "bone",
			Target:  [3]float32{0, 1.5, 2},
			Enabled: true,
		},
		Output: OutputConfig{
			Format: "yaml",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
