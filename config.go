package electoralcollege

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/debashishc/electoralcollege/pathsearch"
)

const (
	defaultCacheSize = 128

	// Above these values a configuration is legal but probably a mistake.
	warnMaxCombinations = 1_000_000
	warnParallelFactor  = 4
)

// Config is the configuration for the Analyzer.
type Config struct {
	// MaxCombinations caps the minimal combinations enumerated per party.
	// A negative value removes the cap; zero selects the default.
	//
	// Default: 10000
	MaxCombinations int `yaml:"maxCombinations"`

	// MaxParallel bounds the goroutines AnalyzeAll runs at once.
	//
	// Default: runtime.NumCPU()
	MaxParallel int `yaml:"maxParallel"`

	// CacheSize is the number of analyses kept in the LRU cache.
	//
	// Default: 128
	CacheSize int `yaml:"cacheSize"`

	// DisableCache turns the analysis cache off.
	DisableCache bool `yaml:"disableCache"`

	// RegistryFile is a YAML registry table loaded when NewAnalyzer is given
	// no registry.
	RegistryFile string `yaml:"registryFile"`
}

// DefaultConfig returns the default configuration.
//
// Returns:
//   - Config: Configuration with every field set to its default
func DefaultConfig() Config {
	return Config{
		MaxCombinations: pathsearch.DefaultMaxCombinations,
		MaxParallel:     runtime.NumCPU(),
		CacheSize:       defaultCacheSize,
	}
}

// SetDefaults fills zero-valued fields of cfg with defaults.
//
// Parameters:
//   - cfg: Configuration to update in place
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.MaxCombinations == 0 {
		cfg.MaxCombinations = defaults.MaxCombinations
	}
	if cfg.MaxParallel == 0 {
		cfg.MaxParallel = defaults.MaxParallel
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = defaults.CacheSize
	}
}

// Validate checks the configuration for invalid values.
//
// Hard Validation Rules:
//   - MaxParallel > 0
//   - CacheSize > 0 unless DisableCache is set
//
// Returns:
//   - error: Error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxParallel <= 0 {
		return fmt.Errorf("%w: MaxParallel must be > 0, got %d", ErrInvalidConfig, cfg.MaxParallel)
	}

	if !cfg.DisableCache && cfg.CacheSize <= 0 {
		return fmt.Errorf("%w: CacheSize must be > 0 when the cache is enabled, got %d", ErrInvalidConfig, cfg.CacheSize)
	}

	return nil
}

// ValidateWithWarnings logs legal but questionable settings.
//
// Parameters:
//   - logger: Logger receiving the warnings
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.MaxCombinations < 0 {
		logger.Warn(
			"MaxCombinations is negative, path enumeration is uncapped",
			"maxCombinations", cfg.MaxCombinations,
		)
	} else if cfg.MaxCombinations > warnMaxCombinations {
		logger.Warn(
			"MaxCombinations is very large, analyses with many uncalled jurisdictions may exhaust memory",
			"maxCombinations", cfg.MaxCombinations,
			"recommended", pathsearch.DefaultMaxCombinations,
		)
	}

	if limit := warnParallelFactor * runtime.NumCPU(); cfg.MaxParallel > limit {
		logger.Warn(
			"MaxParallel exceeds available CPUs by a wide margin",
			"maxParallel", cfg.MaxParallel,
			"cpus", runtime.NumCPU(),
		)
	}
}

// LoadConfig reads a YAML configuration file.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Error if the file cannot be read, parsed or validated
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
