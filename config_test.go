package electoralcollege

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	ectest "github.com/debashishc/electoralcollege/testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 10000, cfg.MaxCombinations)
	require.Equal(t, runtime.NumCPU(), cfg.MaxParallel)
	require.Equal(t, 128, cfg.CacheSize)
	require.False(t, cfg.DisableCache)
	require.Empty(t, cfg.RegistryFile)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			MaxCombinations: -1,
			MaxParallel:     2,
			CacheSize:       16,
			DisableCache:    true,
			RegistryFile:    "registry.yaml",
		}
		want := cfg
		SetDefaults(&cfg)

		require.Equal(t, want, cfg)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "uncapped enumeration", mutate: func(cfg *Config) { cfg.MaxCombinations = -1 }},
		{name: "negative parallelism", mutate: func(cfg *Config) { cfg.MaxParallel = -4 }, wantErr: true},
		{name: "negative cache size", mutate: func(cfg *Config) { cfg.CacheSize = -1 }, wantErr: true},
		{
			name: "negative cache size with cache disabled",
			mutate: func(cfg *Config) {
				cfg.CacheSize = -1
				cfg.DisableCache = true
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("quiet for defaults", func(t *testing.T) {
		logger := ectest.NewRecordingLogger()
		cfg := DefaultConfig()
		cfg.ValidateWithWarnings(logger)

		require.Empty(t, logger.Records())
	})

	t.Run("warns on uncapped enumeration", func(t *testing.T) {
		logger := ectest.NewRecordingLogger()
		cfg := DefaultConfig()
		cfg.MaxCombinations = -1
		cfg.ValidateWithWarnings(logger)

		require.Len(t, logger.Messages("WARN"), 1)
	})

	t.Run("warns on huge cap and oversubscription", func(t *testing.T) {
		logger := ectest.NewRecordingLogger()
		cfg := DefaultConfig()
		cfg.MaxCombinations = 5_000_000
		cfg.MaxParallel = 100 * runtime.NumCPU()
		cfg.ValidateWithWarnings(logger)

		require.Len(t, logger.Messages("WARN"), 2)
	})
}

func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
maxCombinations: 2500
maxParallel: 4
cacheSize: 64
disableCache: true
registryFile: /etc/electoralcollege/registry.yaml
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(yamlConfig), &cfg))

	require.Equal(t, Config{
		MaxCombinations: 2500,
		MaxParallel:     4,
		CacheSize:       64,
		DisableCache:    true,
		RegistryFile:    "/etc/electoralcollege/registry.yaml",
	}, cfg)
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults to partial file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("maxCombinations: 42\n"), 0o600))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, 42, cfg.MaxCombinations)
		require.Equal(t, runtime.NumCPU(), cfg.MaxParallel)
		require.Equal(t, 128, cfg.CacheSize)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("maxParallel: [1, 2\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("maxParallel: -2\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
