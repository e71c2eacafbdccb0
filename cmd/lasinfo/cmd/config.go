package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig holds the defaults a TOML config file may supply. Pointer
// fields distinguish "not set" from a zero value so flags stay authoritative.
type fileConfig struct {
	JSON      *bool    `toml:"json"`
	NullValue *float64 `toml:"null_value"`
	Encoding  string   `toml:"encoding"`
}

// loadConfig reads the config file at path. An empty path means no file; a
// missing file at an explicit path is an error.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
