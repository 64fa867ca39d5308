package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagFrames = flag.Int("frames", 0, "Number of frames to simulate")
	flagFormat = flag.String("format", "", "Output format (yaml or json)")
	flagMode   = flag.String("lookat-mode", "", "Gaze applier mode (bone or expression)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFrames > 0 {
		cfg.Playback.Frames = *flagFrames
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagMode != "" {
		cfg.LookAt.Mode = *flagMode
	}
}
