package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// WindowConfig contains window and viewport settings
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	PixelsPerMeter float64 `toml:"pixels_per_meter"`
	Gravity        float64 `toml:"gravity"`        // m/s^2, pointing down
	TicksPerSecond float64 `toml:"ticks_per_second"`
	MaxFallSpeed   float64 `toml:"max_fall_speed"` // pixels per tick
	CellSize       int     `toml:"cell_size"`      // resolv space cell size in pixels
}

// ShapeConfig describes a cuboid collider by its half extents, in pixels
type ShapeConfig struct {
	HalfWidth  float64 `toml:"half_width"`
	HalfHeight float64 `toml:"half_height"`
}

func (s ShapeConfig) Width() float64  { return s.HalfWidth * 2 }
func (s ShapeConfig) Height() float64 { return s.HalfHeight * 2 }

// CameraConfig contains camera placement
type CameraConfig struct {
	// Centered places the camera at the middle of the window so that world
	// coordinates equal screen coordinates.
	Centered bool    `toml:"centered"`
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
}

// DebugConfig contains debug render options
type DebugConfig struct {
	Render           bool    `toml:"render"`
	Labels           bool    `toml:"labels"`
	HighlightSeconds float64 `toml:"highlight_seconds"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// ArenaConfig toggles the extra colliders loaded from the Tiled map
type ArenaConfig struct {
	Enabled bool   `toml:"enabled"`
	Map     string `toml:"map"`
}

// Config holds the whole program configuration
type Config struct {
	Window    WindowConfig  `toml:"window"`
	Physics   PhysicsConfig `toml:"physics"`
	Character ShapeConfig   `toml:"character"`
	Object    ShapeConfig   `toml:"object"`
	Camera    CameraConfig  `toml:"camera"`
	Debug     DebugConfig   `toml:"debug"`
	Logging   LoggingConfig `toml:"logging"`
	Arena     ArenaConfig   `toml:"arena"`
}

// C is the global configuration instance
var C *Config

// Debug colors
var (
	CharacterColor = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	SensorColor    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	SolidColor     = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DynamicColor   = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	HighlightColor = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LabelColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	HintColor      = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

func init() {
	C = Defaults()
}

// Defaults returns a fresh configuration with built-in values.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "sensorbox",
		},
		Physics: PhysicsConfig{
			PixelsPerMeter: 100,
			Gravity:        9.81,
			TicksPerSecond: 60,
			MaxFallSpeed:   16,
			CellSize:       32,
		},
		Character: ShapeConfig{HalfWidth: 100, HalfHeight: 100},
		Object:    ShapeConfig{HalfWidth: 100, HalfHeight: 100},
		Camera: CameraConfig{
			Centered: true,
		},
		Debug: DebugConfig{
			Render:           true,
			Labels:           true,
			HighlightSeconds: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Arena: ArenaConfig{
			Enabled: false,
			Map:     "levels/arena.tmx",
		},
	}
}

// Load reads a TOML file on top of the defaults and installs the result as C.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	C = cfg
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Physics.TicksPerSecond <= 0 {
		return fmt.Errorf("physics.ticks_per_second must be positive")
	}
	if c.Physics.CellSize <= 0 {
		return fmt.Errorf("physics.cell_size must be positive")
	}
	if c.Character.HalfWidth <= 0 || c.Character.HalfHeight <= 0 ||
		c.Object.HalfWidth <= 0 || c.Object.HalfHeight <= 0 {
		return fmt.Errorf("collider half extents must be positive")
	}
	return nil
}

// CameraOrigin returns where the camera looks at startup.
func (c *Config) CameraOrigin() (float64, float64) {
	if c.Camera.Centered {
		return float64(c.Window.Width) / 2, float64(c.Window.Height) / 2
	}
	return c.Camera.X, c.Camera.Y
}

// GravityPerTick converts gravity to pixels per tick squared.
func (c *Config) GravityPerTick() float64 {
	tps := c.Physics.TicksPerSecond
	return c.Physics.Gravity * c.Physics.PixelsPerMeter / (tps * tps)
}
