// Package config loads game settings from defaults, an optional YAML file
// and MAZECASTER_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "MAZECASTER"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  WindowConfig `mapstructure:"window"`
	Maze    MazeConfig   `mapstructure:"maze"`
	Player  PlayerConfig `mapstructure:"player"`
	Caster  CasterConfig `mapstructure:"caster"`
	Render  RenderConfig `mapstructure:"render"`
	Sprites SpriteConfig `mapstructure:"sprites"`
	HUD     HUDConfig    `mapstructure:"hud"`
}

type WindowConfig struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	TargetFPS int    `mapstructure:"target_fps"`
}

type MazeConfig struct {
	// Path to a .txt maze or a .png level image. Empty uses the built-in maze.
	Path      string  `mapstructure:"path"`
	BlockSize float64 `mapstructure:"block_size"`
}

type PlayerConfig struct {
	StartX float64 `mapstructure:"start_x"`
	StartY float64 `mapstructure:"start_y"`
	// StartAngle and FOV are in degrees.
	StartAngle       float64 `mapstructure:"start_angle"`
	FOV              float64 `mapstructure:"fov"`
	MoveSpeed        float64 `mapstructure:"move_speed"`
	RotateSpeed      float64 `mapstructure:"rotate_speed"`
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
}

type CasterConfig struct {
	MaxDistance float64 `mapstructure:"max_distance"`
	Step        float64 `mapstructure:"step"`
}

type RenderConfig struct {
	Projection     float64 `mapstructure:"projection"`
	WallTexture    string  `mapstructure:"wall_texture"`
	FloorTexture   string  `mapstructure:"floor_texture"`
	TextureMaxSize int     `mapstructure:"texture_max_size"`
}

type SpriteConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	GIF              string        `mapstructure:"gif"`
	MaxFrames        int           `mapstructure:"max_frames"`
	Seed             int64         `mapstructure:"seed"`
	TargetCount      int           `mapstructure:"target_count"`
	VisibilityRadius float64       `mapstructure:"visibility_radius"`
	Projection       float64       `mapstructure:"projection"`
	FrameDuration    time.Duration `mapstructure:"frame_duration"`
}

type HUDConfig struct {
	ShowFPS      bool   `mapstructure:"show_fps"`
	ShowMinimap  bool   `mapstructure:"show_minimap"`
	MinimapScale int    `mapstructure:"minimap_scale"`
	Font         string `mapstructure:"font"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1300)
	v.SetDefault("window.height", 900)
	v.SetDefault("window.title", "mazecaster")
	v.SetDefault("window.target_fps", 15)

	v.SetDefault("maze.path", "")
	v.SetDefault("maze.block_size", 100.0)

	v.SetDefault("player.start_x", 150.0)
	v.SetDefault("player.start_y", 150.0)
	v.SetDefault("player.start_angle", 60.0)
	v.SetDefault("player.fov", 60.0)
	v.SetDefault("player.move_speed", 5.0)
	v.SetDefault("player.rotate_speed", math.Pi/50)
	v.SetDefault("player.mouse_sensitivity", 0.003)

	v.SetDefault("caster.max_distance", 1000.0)
	v.SetDefault("caster.step", 1.0)

	v.SetDefault("render.projection", 70.0)
	v.SetDefault("render.wall_texture", "")
	v.SetDefault("render.floor_texture", "")
	v.SetDefault("render.texture_max_size", 256)

	v.SetDefault("sprites.enabled", true)
	v.SetDefault("sprites.gif", "")
	v.SetDefault("sprites.max_frames", 8)
	v.SetDefault("sprites.seed", 0)
	v.SetDefault("sprites.target_count", 8)
	v.SetDefault("sprites.visibility_radius", 300.0)
	v.SetDefault("sprites.projection", 50.0)
	v.SetDefault("sprites.frame_duration", "80ms")

	v.SetDefault("hud.show_fps", true)
	v.SetDefault("hud.show_minimap", true)
	v.SetDefault("hud.minimap_scale", 12)
	v.SetDefault("hud.font", "")
}

// Load reads settings. An empty path skips the file and uses defaults and
// the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive")
	check(c.Window.TargetFPS > 0, "window.target_fps must be positive")
	check(c.Maze.BlockSize > 0, "maze.block_size must be positive")
	check(c.Player.FOV > 0 && c.Player.FOV < 180, "player.fov must be in (0, 180) degrees")
	check(c.Caster.Step > 0, "caster.step must be positive")
	check(c.Caster.MaxDistance > 0, "caster.max_distance must be positive")
	check(c.Render.TextureMaxSize >= 0, "render.texture_max_size must not be negative")
	check(c.Sprites.TargetCount >= 0, "sprites.target_count must not be negative")
	check(c.Sprites.FrameDuration > 0, "sprites.frame_duration must be positive")
	check(c.HUD.MinimapScale > 0, "hud.minimap_scale must be positive")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// FOVRadians is the horizontal field of view in radians.
func (c *Config) FOVRadians() float64 { return radians(c.Player.FOV) }

// StartAngleRadians is the initial heading in radians.
func (c *Config) StartAngleRadians() float64 { return radians(c.Player.StartAngle) }

// FrameInterval is the target time per frame.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Window.TargetFPS)
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
