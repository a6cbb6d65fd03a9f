// Package config loads algoviz settings from a YAML file, ALGOVIZ_*
// environment variables and defaults, in that order of precedence after
// flags.
package config

import (
	"os"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/algoviz/internal/logging"
	"github.com/katalvlaran/algoviz/playback"
)

const (
	configName = ".algoviz"
	configType = "yaml"
	envPrefix  = "ALGOVIZ"
)

// Defaults.
const (
	DefaultSpeedMs      = 500
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultRenderColor  = true
	DefaultRenderFormat = "text"
)

// RenderFormats lists the accepted render.format values.
var RenderFormats = []string{"text", "yaml"}

// ErrInvalidConfig marks every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full set of settings. Field tags use mapstructure for viper.
type Config struct {
	Playback PlaybackConfig `mapstructure:"playback"`
	Log      LogConfig      `mapstructure:"log"`
	Render   RenderConfig   `mapstructure:"render"`
	Random   RandomConfig   `mapstructure:"random"`
}

// PlaybackConfig holds animation settings.
type PlaybackConfig struct {
	SpeedMs int `mapstructure:"speed_ms"`
}

// Speed returns SpeedMs as a duration.
func (p PlaybackConfig) Speed() time.Duration {
	return time.Duration(p.SpeedMs) * time.Millisecond
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Color  bool   `mapstructure:"color"`
	Format string `mapstructure:"format"`
}

// RandomConfig holds generator settings. A zero seed means "seed from the clock".
type RandomConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// Load reads configuration from path, or when path is empty from .algoviz.yaml
// in the working directory or $HOME. A missing file in the search path is not
// an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration Load yields with no file and no
// environment.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{SpeedMs: DefaultSpeedMs},
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Render:   RenderConfig{Color: DefaultRenderColor, Format: DefaultRenderFormat},
	}
}

func applyDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("playback.speed_ms", d.Playback.SpeedMs)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("render.color", d.Render.Color)
	v.SetDefault("render.format", d.Render.Format)
	v.SetDefault("random.seed", d.Random.Seed)
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if err := playback.CheckSpeed(c.Playback.Speed()); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "playback.speed_ms: %v", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log.level: %v", err)
	}
	if !slices.Contains(logging.Formats, strings.ToLower(c.Log.Format)) {
		return errors.Wrapf(ErrInvalidConfig, "log.format %q", c.Log.Format)
	}
	if !slices.Contains(RenderFormats, strings.ToLower(c.Render.Format)) {
		return errors.Wrapf(ErrInvalidConfig, "render.format %q", c.Render.Format)
	}
	return nil
}
