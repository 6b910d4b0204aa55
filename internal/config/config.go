package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	ECS     ECSConfig     `toml:"ecs"`
	Loop    LoopConfig    `toml:"loop"`
	Paths   PathsConfig   `toml:"paths"`
	Logging LoggingConfig `toml:"logging"`
	Profile ProfileConfig `toml:"profile"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type ECSConfig struct {
	MaxEntities int `toml:"max_entities"`
}

type LoopConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	Frames   int           `toml:"frames"` // 0 = run until signalled
}

type PathsConfig struct {
	Scene   string `toml:"scene"`
	Scripts string `toml:"scripts"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ProfileConfig struct {
	Mode string `toml:"mode"` // "", "cpu" or "mem"
	Path string `toml:"path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML over the defaults. name is only used in errors.
func Parse(data []byte, name string) (*Config, error) {
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.ECS.MaxEntities <= 0 {
		return fmt.Errorf("ecs.max_entities %d must be positive", c.ECS.MaxEntities)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("loop.tick_rate %s must be positive", c.Loop.TickRate)
	}
	switch c.Profile.Mode {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("profile.mode %q: want cpu, mem or empty", c.Profile.Mode)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "quadgo",
			Width:  1280,
			Height: 720,
		},
		ECS: ECSConfig{
			MaxEntities: 8192,
		},
		Loop: LoopConfig{
			TickRate: 16 * time.Millisecond,
			Frames:   0,
		},
		Paths: PathsConfig{
			Scene:   "data/yaml/scene.yaml",
			Scripts: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Path: ".",
		},
	}
}
