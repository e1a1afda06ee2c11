// Package config loads mazegen settings from defaults, .mazegen.yaml,
// MAZEGEN_* environment variables (optionally seeded from .env) and flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solver"
)

// EnvPrefix is prepended to every environment override, e.g. MAZEGEN_ROWS.
const EnvPrefix = "MAZEGEN"

// LogConfig holds the log.* keys.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// MetricsConfig holds the metrics.* keys.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Palette holds terminal colours as #rrggbb strings.
type Palette struct {
	Start     string `mapstructure:"start"`
	Goal      string `mapstructure:"goal"`
	OnPath    string `mapstructure:"on_path"`
	Visited   string `mapstructure:"visited"`
	Unvisited string `mapstructure:"unvisited"`
	Wall      string `mapstructure:"wall"`
}

// Config holds all runtime configuration for a mazegen session.
type Config struct {
	Rows      int           `mapstructure:"rows"`
	Cols      int           `mapstructure:"cols"`
	Seed      int64         `mapstructure:"seed"` // 0 means time-seeded
	Algorithm string        `mapstructure:"algorithm"`
	FPS       int           `mapstructure:"fps"`
	Animate   bool          `mapstructure:"animate"`
	Log       LogConfig     `mapstructure:"log"`
	Metrics   MetricsConfig `mapstructure:"metrics"`
	Palette   Palette       `mapstructure:"palette"`
}

// SetDefaults registers built-in defaults on the global viper instance.
func SetDefaults() {
	viper.SetDefault("rows", maze.DefaultRows)
	viper.SetDefault("cols", maze.DefaultCols)
	viper.SetDefault("seed", 0)
	viper.SetDefault("algorithm", solver.BFS.String())
	viper.SetDefault("fps", 60)
	viper.SetDefault("animate", true)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.file", "")
	viper.SetDefault("log.max_size", 10)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age", 28)
	viper.SetDefault("log.compress", false)

	viper.SetDefault("metrics.addr", "")

	viper.SetDefault("palette.start", "#00ff00")
	viper.SetDefault("palette.goal", "#0000ff")
	viper.SetDefault("palette.on_path", "#64ff64")
	viper.SetDefault("palette.visited", "#6464ff")
	viper.SetDefault("palette.unvisited", "#646464")
	viper.SetDefault("palette.wall", "#dcdcdc")
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none)
// into the process environment. Existing variables win; missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// Init points viper at cfgFile, or at .mazegen.yaml in the working and home
// directories, and enables environment overrides. A missing default file is
// not an error; an explicit cfgFile that cannot be read is.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".mazegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}
	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine or renderer cannot honour.
func (c Config) Validate() error {
	var errs []error
	if c.Rows < 1 || c.Cols < 1 {
		errs = append(errs, fmt.Errorf("config: size %dx%d must be positive", c.Rows, c.Cols))
	}
	if _, err := solver.ParseAlgorithm(c.Algorithm); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if c.FPS < 1 {
		errs = append(errs, fmt.Errorf("config: fps %d must be positive", c.FPS))
	}
	if err := c.Logging().Validate(); err != nil {
		errs = append(errs, err)
	}
	for key, colour := range map[string]string{
		"start": c.Palette.Start, "goal": c.Palette.Goal, "on_path": c.Palette.OnPath,
		"visited": c.Palette.Visited, "unvisited": c.Palette.Unvisited, "wall": c.Palette.Wall,
	} {
		if !isHexColour(colour) {
			errs = append(errs, fmt.Errorf("config: palette.%s %q is not #rrggbb", key, colour))
		}
	}
	return errors.Join(errs...)
}

// SolverAlgorithm returns the parsed algorithm. Call after Validate.
func (c Config) SolverAlgorithm() solver.Algorithm {
	alg, _ := solver.ParseAlgorithm(c.Algorithm)
	return alg
}

// Logging converts the log.* section for the logging package.
func (c Config) Logging() logging.Config {
	return logging.Config{
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		File:       c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Compress:   c.Log.Compress,
	}
}

// Watch re-loads the configuration whenever the config file changes and
// hands every valid result to onChange. Invalid edits are logged and skipped.
func Watch(logger *slog.Logger, onChange func(Config)) {
	viper.OnConfigChange(func(event fsnotify.Event) {
		logger.Info("config file changed", slog.String("file", event.Name), slog.String("op", event.Op.String()))
		cfg, err := Load()
		if err != nil {
			logger.Error("config reload rejected", slog.Any("error", err))
			return
		}
		onChange(cfg)
	})
	viper.WatchConfig()
}

func isHexColour(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
