package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "ENGLISH_DRILL_CONFIG"

// Discover returns the config path to use and whether it was requested explicitly.
// Search order:
//  1. the --config flag value
//  2. ENGLISH_DRILL_CONFIG environment variable
//  3. <default root>/config.toml (optional)
func Discover(flagPath string) (string, bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return envPath, true
	}
	return filepath.Join(defaultRoot(), "config.toml"), false
}
