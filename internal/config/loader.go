package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no config file is named and it exists.
const DefaultPath = "./config.yaml"

// Load reads the file named by CONFIG_PATH. See LoadFrom.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom reads path, then environment overrides, then env-default tags,
// and validates the result. A named file must exist. With an empty path
// DefaultPath is used if present, otherwise only the environment.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if err := read(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, cfg *Config) error {
	if path == "" {
		if _, err := os.Stat(DefaultPath); errors.Is(err, fs.ErrNotExist) {
			if err := cleanenv.ReadEnv(cfg); err != nil {
				return fmt.Errorf("config: read env: %w", err)
			}
			return nil
		}
		path = DefaultPath
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}
