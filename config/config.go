// Package config loads game settings from config.yaml, GOPHERMAZE_*
// environment variables and command-line flags, in rising priority.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"gophermaze/caster"
	"gophermaze/logger"
	"gophermaze/model"
	"gophermaze/state"
)

const EnvPrefix = "GOPHERMAZE"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	World    WorldConfig    `mapstructure:"world" yaml:"world"`
	Camera   CameraConfig   `mapstructure:"camera" yaml:"camera"`
	Movement MovementConfig `mapstructure:"movement" yaml:"movement"`
	Ghosts   GhostConfig    `mapstructure:"ghosts" yaml:"ghosts"`
	Pills    PillConfig     `mapstructure:"pills" yaml:"pills"`
	Timing   TimingConfig   `mapstructure:"timing" yaml:"timing"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

type DisplayConfig struct {
	ScreenWidth  int    `mapstructure:"screen_width" yaml:"screen_width"`
	ScreenHeight int    `mapstructure:"screen_height" yaml:"screen_height"`
	WindowTitle  string `mapstructure:"window_title" yaml:"window_title"`
	VSync        bool   `mapstructure:"vsync" yaml:"vsync"`
}

type WorldConfig struct {
	CellSize float64 `mapstructure:"cell_size" yaml:"cell_size"`
	MazeFile string  `mapstructure:"maze_file" yaml:"maze_file"` // empty means the built-in maze
}

type CameraConfig struct {
	FieldOfView     float64 `mapstructure:"field_of_view" yaml:"field_of_view"` // degrees
	ProjectionPlane float64 `mapstructure:"projection_plane" yaml:"projection_plane"`
	Workers         int     `mapstructure:"workers" yaml:"workers"`
}

type MovementConfig struct {
	MoveSpeed     float64 `mapstructure:"move_speed" yaml:"move_speed"`
	RotationSpeed float64 `mapstructure:"rotation_speed" yaml:"rotation_speed"`
	PlayerRadius  float64 `mapstructure:"player_radius" yaml:"player_radius"`
}

type GhostConfig struct {
	Speed          float64       `mapstructure:"speed" yaml:"speed"`
	Radius         float64       `mapstructure:"radius" yaml:"radius"`
	SightRange     float64       `mapstructure:"sight_range" yaml:"sight_range"`
	CatchRadius    float64       `mapstructure:"catch_radius" yaml:"catch_radius"`
	WanderInterval time.Duration `mapstructure:"wander_interval" yaml:"wander_interval"`
	Scale          float64       `mapstructure:"scale" yaml:"scale"`
}

type PillConfig struct {
	PickupRadius float64 `mapstructure:"pickup_radius" yaml:"pickup_radius"`
	Scale        float64 `mapstructure:"scale" yaml:"scale"`
}

type TimingConfig struct {
	WarningSeconds  float64 `mapstructure:"warning_seconds" yaml:"warning_seconds"`
	ScreamerSeconds float64 `mapstructure:"screamer_seconds" yaml:"screamer_seconds"`
	// ScreamerAnchor places the screamer face: bottom, center or top.
	ScreamerAnchor string `mapstructure:"screamer_anchor" yaml:"screamer_anchor"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.screen_width", 1024)
	v.SetDefault("display.screen_height", 768)
	v.SetDefault("display.window_title", "Gopher Maze")
	v.SetDefault("display.vsync", true)

	v.SetDefault("world.cell_size", 100.0)
	v.SetDefault("world.maze_file", "")

	v.SetDefault("camera.field_of_view", 60.0)
	v.SetDefault("camera.projection_plane", 70.0)
	v.SetDefault("camera.workers", 0)

	v.SetDefault("movement.move_speed", 120.0)
	v.SetDefault("movement.rotation_speed", math.Pi/2)
	v.SetDefault("movement.player_radius", 20.0)

	v.SetDefault("ghosts.speed", 60.0)
	v.SetDefault("ghosts.radius", 20.0)
	v.SetDefault("ghosts.sight_range", 600.0)
	v.SetDefault("ghosts.catch_radius", 35.0)
	v.SetDefault("ghosts.wander_interval", 2*time.Second)
	v.SetDefault("ghosts.scale", 0.8)

	v.SetDefault("pills.pickup_radius", 40.0)
	v.SetDefault("pills.scale", 0.25)

	v.SetDefault("timing.warning_seconds", 3.0)
	v.SetDefault("timing.screamer_seconds", 2.0)
	v.SetDefault("timing.screamer_anchor", "bottom")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// flag name -> config key
var flagKeys = map[string]string{
	"maze":      "world.maze_file",
	"log-level": "log.level",
	"workers":   "camera.workers",
}

// Load reads the config. With an empty path it looks for config.yaml in the
// working directory and falls back to defaults when there is none; an
// explicit path must exist. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"file": v.ConfigFileUsed(),
	}).Debug("config loaded")

	return &cfg, nil
}

// Validate reports every setting that would break the game.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...))
		}
	}

	check(c.Display.ScreenWidth > 0, "display.screen_width must be positive, got %d", c.Display.ScreenWidth)
	check(c.Display.ScreenHeight > 0, "display.screen_height must be positive, got %d", c.Display.ScreenHeight)
	check(c.World.CellSize > 0, "world.cell_size must be positive, got %v", c.World.CellSize)
	check(c.Camera.FieldOfView > 0 && c.Camera.FieldOfView < 180,
		"camera.field_of_view must be between 0 and 180 degrees, got %v", c.Camera.FieldOfView)
	check(c.Camera.ProjectionPlane > 0, "camera.projection_plane must be positive, got %v", c.Camera.ProjectionPlane)
	check(c.Camera.Workers >= 0, "camera.workers must not be negative, got %d", c.Camera.Workers)
	check(c.Movement.PlayerRadius >= 0 && c.Movement.PlayerRadius < c.World.CellSize/2,
		"movement.player_radius must fit inside a cell, got %v", c.Movement.PlayerRadius)
	check(c.Ghosts.Radius >= 0 && c.Ghosts.Radius < c.World.CellSize/2,
		"ghosts.radius must fit inside a cell, got %v", c.Ghosts.Radius)
	check(c.Ghosts.WanderInterval >= 0, "ghosts.wander_interval must not be negative, got %v", c.Ghosts.WanderInterval)
	check(c.Timing.WarningSeconds >= 0, "timing.warning_seconds must not be negative, got %v", c.Timing.WarningSeconds)
	check(c.Timing.ScreamerSeconds >= 0, "timing.screamer_seconds must not be negative, got %v", c.Timing.ScreamerSeconds)
	_, ok := anchors[c.Timing.ScreamerAnchor]
	check(ok, "timing.screamer_anchor must be bottom, center or top, got %q", c.Timing.ScreamerAnchor)

	return errors.Join(errs...)
}

// FOV is the field of view in radians.
func (c *Config) FOV() float64 {
	return c.Camera.FieldOfView * math.Pi / 180
}

func (c *Config) View() caster.View {
	return caster.View{
		Width:         c.Display.ScreenWidth,
		Height:        c.Display.ScreenHeight,
		PlaneDistance: c.Camera.ProjectionPlane,
	}
}

func (c *Config) Tuning() model.Tuning {
	return model.Tuning{
		CellSize:       c.World.CellSize,
		FOV:            c.FOV(),
		MoveSpeed:      c.Movement.MoveSpeed,
		RotationSpeed:  c.Movement.RotationSpeed,
		PlayerRadius:   c.Movement.PlayerRadius,
		GhostSpeed:     c.Ghosts.Speed,
		GhostRadius:    c.Ghosts.Radius,
		SightRange:     c.Ghosts.SightRange,
		CatchRadius:    c.Ghosts.CatchRadius,
		WanderInterval: c.Ghosts.WanderInterval,
		GhostScale:     c.Ghosts.Scale,
		PickupRadius:   c.Pills.PickupRadius,
		PillScale:      c.Pills.Scale,
	}
}

func (c *Config) Durations() state.Durations {
	return state.Durations{
		Warning:  seconds(c.Timing.WarningSeconds),
		Screamer: seconds(c.Timing.ScreamerSeconds),
	}
}

var anchors = map[string]caster.Anchor{
	"bottom": caster.AnchorBottom,
	"center": caster.AnchorCenter,
	"top":    caster.AnchorTop,
}

// ScreamerAnchor is the vertical placement of the screamer face. Unknown
// names fall back to the bottom edge.
func (c *Config) ScreamerAnchor() caster.Anchor {
	return anchors[c.Timing.ScreamerAnchor]
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Dump writes the effective config as YAML.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: dump: %w", err)
	}
	return enc.Close()
}
