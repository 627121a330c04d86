// Package config loads glyphcrawl settings from defaults, an optional config
// file, GLYPHCRAWL_* environment variables and command-line flags, in that
// order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/samdwyer/glyphcrawl/internal/world"
)

const envPrefix = "GLYPHCRAWL"

// Config holds every runtime option.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `mapstructure:"seed"`

	// Dump prints the generated map to stdout and exits without opening the terminal UI.
	Dump bool `mapstructure:"dump"`

	Dungeon   DungeonConfig   `mapstructure:"dungeon"`
	Game      GameConfig      `mapstructure:"game"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// DungeonConfig mirrors world.Params in configuration form.
type DungeonConfig struct {
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	MinRoomSize int    `mapstructure:"min_room_size"`
	MaxRoomSize int    `mapstructure:"max_room_size"`
	MaxRooms    int    `mapstructure:"max_rooms"`
	MinRooms    int    `mapstructure:"min_rooms"`
	MaxAttempts int    `mapstructure:"max_attempts"`
	Strategy    string `mapstructure:"strategy"`
}

// GameConfig holds session options.
type GameConfig struct {
	Enemies int `mapstructure:"enemies"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// TelemetryConfig toggles OpenTelemetry export.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Params converts the dungeon section into generator parameters.
func (c DungeonConfig) Params() (world.Params, error) {
	strategy, err := world.ParseStrategy(c.Strategy)
	if err != nil {
		return world.Params{}, err
	}
	return world.Params{
		Width:       c.Width,
		Height:      c.Height,
		MinRoomSize: c.MinRoomSize,
		MaxRoomSize: c.MaxRoomSize,
		MaxRooms:    c.MaxRooms,
		MinRooms:    c.MinRooms,
		MaxAttempts: c.MaxAttempts,
		Strategy:    strategy,
	}, nil
}

// Validate checks the options that have no safe fallback.
func (c *Config) Validate() error {
	params, err := c.Dungeon.Params()
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if c.Game.Enemies < 0 {
		return fmt.Errorf("game.enemies must not be negative, got %d", c.Game.Enemies)
	}
	return nil
}

// setDefaults registers the built-in value of every key.
func setDefaults(v *viper.Viper) {
	p := world.DefaultParams()

	v.SetDefault("seed", 0)
	v.SetDefault("dump", false)

	v.SetDefault("dungeon.width", p.Width)
	v.SetDefault("dungeon.height", p.Height)
	v.SetDefault("dungeon.min_room_size", p.MinRoomSize)
	v.SetDefault("dungeon.max_room_size", p.MaxRoomSize)
	v.SetDefault("dungeon.max_rooms", p.MaxRooms)
	v.SetDefault("dungeon.min_rooms", p.MinRooms)
	v.SetDefault("dungeon.max_attempts", p.MaxAttempts)
	v.SetDefault("dungeon.strategy", p.Strategy.String())

	v.SetDefault("game.enemies", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "glyphcrawl.log")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("telemetry.enabled", false)
}

// Flags returns the command-line flag set understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("glyphcrawl", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.Int64("seed", 0, "random seed (0 picks one from the clock)")
	fs.Bool("dump", false, "print the generated map and exit")
	fs.Int("width", 0, "map width including the border")
	fs.Int("height", 0, "map height including the border")
	fs.Int("rooms", 0, "maximum number of rooms")
	fs.String("strategy", "", "corridor strategy: all-pairs or spanning")
	fs.Int("enemies", 0, "number of enemies")
	fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	fs.String("log-file", "", "log file path")
	fs.Bool("telemetry", false, "export traces over OTLP/HTTP")
	return fs
}

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"seed":      "seed",
	"dump":      "dump",
	"width":     "dungeon.width",
	"height":    "dungeon.height",
	"rooms":     "dungeon.max_rooms",
	"strategy":  "dungeon.strategy",
	"enemies":   "game.enemies",
	"log-level": "log.level",
	"log-file":  "log.file",
	"telemetry": "telemetry.enabled",
}

// Load parses args with the flag set from Flags and merges every source.
func Load(args []string) (*Config, error) {
	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Only flags given on the command line override the other sources.
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// IsHelp reports whether err came from asking for usage with -h or --help.
func IsHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}
