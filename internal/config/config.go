// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Markers MarkersConfig `yaml:"markers" mapstructure:"markers"`
	Render  RenderConfig  `yaml:"render" mapstructure:"render"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// MarkersConfig configures where and how many markers are placed.
type MarkersConfig struct {
	Lat      float64 `yaml:"lat" mapstructure:"lat"`
	Lng      float64 `yaml:"lng" mapstructure:"lng"`
	Radius   string  `yaml:"radius" mapstructure:"radius"`
	Count    int     `yaml:"count" mapstructure:"count"`
	Seed     int64   `yaml:"seed" mapstructure:"seed"`
	Geometry string  `yaml:"geometry" mapstructure:"geometry"`
}

// RenderConfig configures the output.
type RenderConfig struct {
	Format  string `yaml:"format" mapstructure:"format"`
	Output  string `yaml:"output" mapstructure:"output"`
	Width   int    `yaml:"width" mapstructure:"width"`
	Height  int    `yaml:"height" mapstructure:"height"`
	Padding int    `yaml:"padding" mapstructure:"padding"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"lat":       "markers.lat",
	"lng":       "markers.lng",
	"radius":    "markers.radius",
	"count":     "markers.count",
	"seed":      "markers.seed",
	"geometry":  "markers.geometry",
	"format":    "render.format",
	"output":    "render.output",
	"width":     "render.width",
	"height":    "render.height",
	"padding":   "render.padding",
	"log-level": "log.level",
}

// Load reads configuration from file, environment and flags, in increasing order of
// precedence. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("S2SCATTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("markers.lat", 0.0)
	v.SetDefault("markers.lng", 0.0)
	v.SetDefault("markers.radius", "1000")
	v.SetDefault("markers.count", 10)
	v.SetDefault("markers.seed", 0)
	v.SetDefault("markers.geometry", "legacy")
	v.SetDefault("render.format", "geojson")
	v.SetDefault("render.output", "")
	v.SetDefault("render.width", 800)
	v.SetDefault("render.height", 600)
	v.SetDefault("render.padding", 50)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, eris.Wrapf(err, "config: bind flag %s", name)
			}
		}
	}

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// LoggerName names every logger built by NewLogger.
const LoggerName = "s2scatter"

// NewLogger builds a logger for cfg. Format "console" gives colored development
// output without stack traces; "json" or empty gives production JSON.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.DisableStacktrace = true
	case "json", "":
		zapCfg = zap.NewProductionConfig()
	default:
		return nil, eris.Errorf("config: unknown log format %q", cfg.Format)
	}

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, eris.Wrap(err, "config: parse log level")
		}
		zapCfg.Level.SetLevel(level)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, eris.Wrap(err, "config: build logger")
	}
	return logger.Named(LoggerName), nil
}

// InitLogger replaces the global zap logger with one built from cfg.
func InitLogger(cfg LogConfig) error {
	logger, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
