package dictgen

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds dictgen settings.
type Config struct {
	SourcePath     string `yaml:"source_path"     env:"DICTGEN_SOURCE"      env-default:"./data/slang_dictionary.json"`
	OutputPath     string `yaml:"output_path"     env:"DICTGEN_OUTPUT"      env-default:"./data/slang_dictionary_complete.json"`
	CategoriesPath string `yaml:"categories_path" env:"DICTGEN_CATEGORIES"`
	Version        string `yaml:"version"         env:"DICTGEN_VERSION"     env-default:"3.0.0"`
	LastUpdated    string `yaml:"last_updated"    env:"DICTGEN_LAST_UPDATED"`
	Description    string `yaml:"description"     env:"DICTGEN_DESCRIPTION" env-default:"Complete Mumbai slang dictionary with authentic cultural context"`
	DryRun         bool   `yaml:"dry_run"         env:"DICTGEN_DRY_RUN"`
}

// LoadConfig reads dictgen configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("dictgen config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("dictgen config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("dictgen config: read env: %w", err)
	}

	return &cfg, nil
}
