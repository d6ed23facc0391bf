package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangdaddy/cruise/pkg/logging"
	"github.com/golangdaddy/cruise/pkg/road"
	"github.com/golangdaddy/cruise/pkg/vehicle"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileName is looked up in the --config directory. It is optional.
	FileName  = "cruise.cfg.json"
	EnvPrefix = "CRUISE"
)

var (
	ErrSpeedExceedsWindow = errors.New("speed is larger than the recycle distance")
	ErrInvalidWindowSize  = errors.New("window size must be positive")
)

// WindowConfig holds host window settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
	File   string `json:"file" mapstructure:"file"`
}

// HUDConfig holds overlay settings
type HUDConfig struct {
	Debug bool `json:"debug" mapstructure:"debug"`
}

// Config is the full application configuration.
type Config struct {
	Motion vehicle.Motion `json:"motion" mapstructure:"motion"`
	World  road.Bounds    `json:"world" mapstructure:"world"`
	Window WindowConfig   `json:"window" mapstructure:"window"`
	Log    LogConfig      `json:"log" mapstructure:"log"`
	HUD    HUDConfig      `json:"hud" mapstructure:"hud"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"speed":        "motion.speed",
	"acceleration": "motion.acceleration",
	"deceleration": "motion.deceleration",
	"width":        "window.width",
	"height":       "window.height",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"log-file":     "log.file",
	"debug":        "hud.debug",
}

// Flags declares the command line flags understood by Load. --config is
// read by the caller and passed to Load as the directory.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", ".", "directory containing "+FileName)
	fs.Float64("speed", vehicle.DefaultSpeed, "cruise speed in units per tick")
	fs.Float64("acceleration", vehicle.DefaultAcceleration, "velocity gained per tick")
	fs.Float64("deceleration", vehicle.DefaultDeceleration, "velocity shed per tick")
	fs.Int("width", 800, "window width")
	fs.Int("height", 600, "window height")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.String("log-format", logging.FormatConsole, "console or json")
	fs.String("log-file", "", "also write logs to this file")
	fs.Bool("debug", false, "show the debug line on the HUD")
	return fs
}

func setDefaults() {
	viper.SetDefault("motion.speed", vehicle.DefaultSpeed)
	viper.SetDefault("motion.acceleration", vehicle.DefaultAcceleration)
	viper.SetDefault("motion.deceleration", vehicle.DefaultDeceleration)

	viper.SetDefault("world.segmentLength", road.DefaultSegmentLength)
	viper.SetDefault("world.recycleDistance", road.DefaultRecycleDistance)

	viper.SetDefault("window.width", 800)
	viper.SetDefault("window.height", 600)
	viper.SetDefault("window.title", "Cruise")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", logging.FormatConsole)
	viper.SetDefault("log.file", "")

	viper.SetDefault("hud.debug", false)
}

// Load reads configuration from defaults, the optional JSON file in
// configDir, CRUISE_* environment variables and changed flags, in rising
// priority. flags may be nil. The result is validated.
func Load(configDir string, flags *pflag.FlagSet) (Config, error) {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := viper.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if configDir != "" {
		viper.SetConfigName(FileName)
		viper.AddConfigPath(configDir)
		viper.SetConfigType("json")

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	errs := []error{c.Motion.Validate(), c.World.Validate()}
	if c.Motion.Speed > c.World.RecycleDistance {
		errs = append(errs, fmt.Errorf("%w: speed %v, recycle distance %v",
			ErrSpeedExceedsWindow, c.Motion.Speed, c.World.RecycleDistance))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrInvalidWindowSize, c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// Default returns the built-in configuration without touching viper.
func Default() Config {
	return Config{
		Motion: vehicle.DefaultMotion(),
		World:  road.DefaultBounds(),
		Window: WindowConfig{Width: 800, Height: 600, Title: "Cruise"},
		Log:    LogConfig{Level: "info", Format: logging.FormatConsole},
	}
}
