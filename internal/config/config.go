// Package config layers defaults, an optional config file, GRIDCASTER_*
// environment variables and command-line flags into a single Config.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gridcaster/internal/worldgen"
)

// DefaultAlgorithm selects the built-in hand-made map instead of a generator.
const DefaultAlgorithm = "default"

// EnvPrefix namespaces environment overrides, e.g. GRIDCASTER_MAP_WIDTH.
const EnvPrefix = "GRIDCASTER"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config represents the runtime parameters shared by every host.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	Scale        int
	TPS          int
	Seed         int64
	Algorithm    string
	MapWidth     int
	MapHeight    int
	LogLevel     string
	LogFile      string
	File         string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ScreenWidth:  640,
		ScreenHeight: 480,
		Scale:        1,
		TPS:          60,
		Seed:         42,
		Algorithm:    DefaultAlgorithm,
		MapWidth:     24,
		MapHeight:    24,
		LogLevel:     "info",
	}
}

// flag name -> viper key
var flagKeys = map[string]string{
	"width":      "screen.width",
	"height":     "screen.height",
	"scale":      "scale",
	"tps":        "tps",
	"seed":       "seed",
	"algorithm":  "map.algorithm",
	"map-width":  "map.width",
	"map-height": "map.height",
	"log-level":  "log.level",
	"log-file":   "log.file",
}

// Bind attaches the configuration flags to the provided FlagSet. Flag
// defaults mirror c so the help output shows the effective defaults.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional config file (json, yaml, toml)")
	fs.IntVar(&c.ScreenWidth, "width", c.ScreenWidth, "render width in pixels")
	fs.IntVar(&c.ScreenHeight, "height", c.ScreenHeight, "render height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for map generation")
	fs.StringVar(&c.Algorithm, "algorithm", c.Algorithm, "map source: default|recursive|dfs|cellular|rooms")
	fs.IntVar(&c.MapWidth, "map-width", c.MapWidth, "generated map width in cells")
	fs.IntVar(&c.MapHeight, "map-height", c.MapHeight, "generated map height in cells")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug|info|warn|error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
}

// Load resolves the final configuration. Precedence, lowest first: the
// defaults in c, the config file named by --config, environment variables,
// flags explicitly set on fs. fs may be nil.
func (c *Config) Load(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetDefault("screen.width", c.ScreenWidth)
	v.SetDefault("screen.height", c.ScreenHeight)
	v.SetDefault("scale", c.Scale)
	v.SetDefault("tps", c.TPS)
	v.SetDefault("seed", c.Seed)
	v.SetDefault("map.algorithm", c.Algorithm)
	v.SetDefault("map.width", c.MapWidth)
	v.SetDefault("map.height", c.MapHeight)
	v.SetDefault("log.level", c.LogLevel)
	v.SetDefault("log.file", c.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if c.File != "" {
		v.SetConfigFile(c.File)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c.ScreenWidth = v.GetInt("screen.width")
	c.ScreenHeight = v.GetInt("screen.height")
	c.Scale = v.GetInt("scale")
	c.TPS = v.GetInt("tps")
	c.Seed = v.GetInt64("seed")
	c.Algorithm = strings.ToLower(strings.TrimSpace(v.GetString("map.algorithm")))
	c.MapWidth = v.GetInt("map.width")
	c.MapHeight = v.GetInt("map.height")
	c.LogLevel = v.GetString("log.level")
	c.LogFile = v.GetString("log.file")
	return c.Validate()
}

// UsesDefaultMap reports whether the hand-made map is selected.
func (c *Config) UsesDefaultMap() bool {
	return c.Algorithm == DefaultAlgorithm
}

// MapAlgorithm resolves the configured generator. It fails for the default
// map, which has no generator.
func (c *Config) MapAlgorithm() (worldgen.Algorithm, error) {
	return worldgen.ParseAlgorithm(c.Algorithm)
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.ScreenWidth, c.ScreenHeight)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	}
	if c.UsesDefaultMap() {
		return nil
	}
	if _, err := c.MapAlgorithm(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := worldgen.ValidateSize(c.MapWidth, c.MapHeight); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
