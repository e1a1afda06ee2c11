package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/solver"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Rows", cfg.Rows, 18},
		{"Cols", cfg.Cols, 32},
		{"Seed", cfg.Seed, int64(0)},
		{"Algorithm", cfg.Algorithm, "bfs"},
		{"FPS", cfg.FPS, 60},
		{"Animate", cfg.Animate, true},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "text"},
		{"Metrics.Addr", cfg.Metrics.Addr, ""},
		{"Palette.Start", cfg.Palette.Start, "#00ff00"},
		{"Palette.Goal", cfg.Palette.Goal, "#0000ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, solver.BFS, cfg.SolverAlgorithm())
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper(t)
	t.Setenv("MAZEGEN_ROWS", "7")
	t.Setenv("MAZEGEN_ALGORITHM", "dfs")
	t.Setenv("MAZEGEN_LOG_LEVEL", "debug")
	t.Setenv("MAZEGEN_PALETTE_WALL", "#123456")

	path := writeFile(t, t.TempDir(), "mazegen.yaml", "cols: 9\n")
	require.NoError(t, Init(path))
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Rows)
	assert.Equal(t, 9, cfg.Cols)
	assert.Equal(t, solver.DFS, cfg.SolverAlgorithm())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "#123456", cfg.Palette.Wall)
}

func TestLoad_File(t *testing.T) {
	resetViper(t)
	path := writeFile(t, t.TempDir(), "mazegen.yaml", `
rows: 9
cols: 16
seed: 42
animate: false
log:
  format: json
  file: /tmp/mazegen.log
palette:
  on_path: "#abcdef"
`)
	require.NoError(t, Init(path))
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Rows)
	assert.Equal(t, 16, cfg.Cols)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.Animate)
	assert.Equal(t, "#abcdef", cfg.Palette.OnPath)

	lc := cfg.Logging()
	assert.Equal(t, "json", lc.Format)
	assert.Equal(t, "/tmp/mazegen.log", lc.File)
	assert.Equal(t, 10, lc.MaxSize)
}

func TestInit_ExplicitMissingFile(t *testing.T) {
	resetViper(t)
	err := Init(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	resetViper(t)
	base, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }, "size 0x32"},
		{"negative cols", func(c *Config) { c.Cols = -2 }, "size 18x-2"},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "astar" }, "unknown"},
		{"zero fps", func(c *Config) { c.FPS = 0 }, "fps 0"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "unknown format"},
		{"bad colour", func(c *Config) { c.Palette.Goal = "blue" }, "palette.goal"},
		{"short colour", func(c *Config) { c.Palette.Wall = "#fff" }, "palette.wall"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.NoError(t, base.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	resetViper(t)
	// Register cleanup for the variable, then clear it so .env can set it.
	t.Setenv("MAZEGEN_COLS", "unset")
	require.NoError(t, os.Unsetenv("MAZEGEN_COLS"))

	dir := t.TempDir()
	env := writeFile(t, dir, ".env", "MAZEGEN_COLS=5\n")
	require.NoError(t, LoadDotEnv(env, filepath.Join(dir, "absent.env")))
	assert.Equal(t, "5", os.Getenv("MAZEGEN_COLS"))

	require.NoError(t, Init(writeFile(t, dir, "mazegen.yaml", "rows: 2\n")))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Cols)
}

func TestLoadDotEnv_Unreadable(t *testing.T) {
	// A directory opens fine but cannot be read as an env file.
	assert.Error(t, LoadDotEnv(t.TempDir()))
}

func TestWatch_Reload(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "mazegen.yaml", "fps: 30\n")
	require.NoError(t, Init(path))
	_, err := Load()
	require.NoError(t, err)

	got := make(chan Config, 4)
	Watch(slog.New(slog.NewTextHandler(io.Discard, nil)), func(c Config) {
		select {
		case got <- c:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("fps: 12\n"), 0o600))
	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-got:
			// A truncating write can surface an intermediate empty read first.
			if cfg.FPS == 12 {
				return
			}
		case <-deadline:
			t.Fatal("no reload after config write")
		}
	}
}
