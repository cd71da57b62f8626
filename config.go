// config.go loads the engine's tunables from a TOML file. The core search
// entry point (FindMove) is untouched by this; EngineConfig is a thin layer
// a CLI or service collaborator uses to avoid hard-coding constants.
package zugzwang

import (
	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
)

// EngineConfig holds the tunables a collaborator passes into FindMove and
// friends. DefaultEngineConfig supplies the defaults; a zero-value
// EngineConfig is not filled in from them.
type EngineConfig struct {
	SearchDepth    int    `toml:"search_depth"`
	TableAgeLimit  int    `toml:"table_age_limit"`
	BookPath       string `toml:"book_path"`
	LogLevel       string `toml:"log_level"`
}

// DefaultEngineConfig matches the constants named in §4.6/§4.7 of the
// design: depth 6, a four-generation table horizon, no book, warning-level
// logging.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SearchDepth:   6,
		TableAgeLimit: 4,
		BookPath:      "",
		LogLevel:      "warning",
	}
}

// LoadEngineConfig reads and decodes a TOML config file at path. Missing
// fields keep their DefaultEngineConfig value.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

// ParsedLogLevel maps the config's string level to a go-logging Level,
// defaulting to WARNING on an unrecognized value.
func (c EngineConfig) ParsedLogLevel() logging.Level {
	level, err := logging.LogLevel(c.LogLevel)
	if err != nil {
		return logging.WARNING
	}
	return level
}
