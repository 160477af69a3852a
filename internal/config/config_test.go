package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, "sqlite3", cfg.Database.Driver)
	require.Equal(t, ":memory:", cfg.Database.DSN)
	require.Equal(t, 100, cfg.Batch)
	require.Equal(t, 10, cfg.Top)
	require.False(t, cfg.Metrics)
}

func TestLoadPrecedence(t *testing.T) {
	yaml := writeFile(t, "config.yml", `
log:
  level: debug
  format: json
batch: 5
top: 3
`)
	env := writeFile(t, ".env", "COLLECT_BATCH=7\nCOLLECT_DATABASE_DSN=file.db\nOTHER=ignored\n")
	t.Setenv("COLLECT_TOP", "20")
	t.Setenv("COLLECT_DATABASE_DSN", "from-env.db")

	cfg, err := Load(WithConfigFile(yaml), WithEnvFile(env))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 7, cfg.Batch)
	require.Equal(t, 20, cfg.Top)
	require.Equal(t, "from-env.db", cfg.Database.DSN)
}

func TestLoadEnvMetrics(t *testing.T) {
	t.Setenv("COLLECT_METRICS", "true")
	t.Setenv("COLLECT_LOG_LEVEL", "trace")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Metrics)
	require.Equal(t, "trace", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		opts func(t *testing.T) []Option
	}{
		{"missing config file", func(t *testing.T) []Option {
			return []Option{WithConfigFile(filepath.Join(t.TempDir(), "missing.yml"))}
		}},
		{"missing env file", func(t *testing.T) []Option {
			return []Option{WithEnvFile(filepath.Join(t.TempDir(), ".env"))}
		}},
		{"invalid log level", func(t *testing.T) []Option {
			return []Option{WithConfigFile(writeFile(t, "config.yml", "log:\n  level: loud\n"))}
		}},
		{"zero batch", func(t *testing.T) []Option {
			return []Option{WithConfigFile(writeFile(t, "config.yml", "batch: 0\n"))}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.opts(t)...)
			require.Error(t, err)
		})
	}
}

func TestKeyOf(t *testing.T) {
	key, ok := keyOf("COLLECT_LOG_FORMAT")
	require.True(t, ok)
	require.Equal(t, "log.format", key)

	_, ok = keyOf("HOME")
	require.False(t, ok)
}
