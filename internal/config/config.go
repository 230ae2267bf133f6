// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	CurtainDelay     = 0.5 // seconds before the title accepts confirm
	CurtainBlinkRate = 1.2 // label fade cycles per second

	PlayerHealth        = 3
	PlayerFuel          = 20000.0
	PlayerSpeed         = 180.0
	PlayerRotationSpeed = 180.0 // degrees per second
	PlayerReloadSeconds = 1.0
	PlayerRadius        = 12.0

	BulletSpeed  = 800.0
	BulletOffset = 4.0
	BulletRadius = 3.0

	TractorRange = 160.0

	PlanetCount         = 4
	PlanetRadiusMin     = 18.0
	PlanetRadiusMax     = 34.0
	BunkersPerPlanet    = 3
	BunkerHealth        = 1
	BunkerRadius        = 14.0
	TerrainPerPlanet    = 2
	TerrainRadius       = 20.0
	GroundHeight        = 24.0
	SpawnKeepOut        = 90.0 // radius around the screen center kept free for the player
	PlacementAttempts   = 1000
	PlacementEdgeMargin = 40.0

	ReportFontSize = 18
)

var (
	BackgroundColor = color.RGBA{8, 8, 20, 255}
	ReportColor     = color.RGBA{105, 235, 245, 255}
	TitleColor      = color.RGBA{240, 240, 240, 255}
	LabelColor      = color.RGBA{200, 200, 90, 255}
	TractorColor    = color.RGBA{120, 255, 140, 160}
	HitBoxColor     = color.RGBA{255, 0, 0, 255}
	GroundColor     = color.RGBA{90, 60, 40, 255}
)

type Config struct {
	Window   WindowConfig   `toml:"window"`
	Player   PlayerConfig   `toml:"player"`
	World    WorldConfig    `toml:"world"`
	Controls ControlsConfig `toml:"controls"`
	Audio    AudioConfig    `toml:"audio"`
	Logging  LoggingConfig  `toml:"logging"`
	Debug    bool           `toml:"debug"` // draw hit circles
}

type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
}

type PlayerConfig struct {
	Health        int     `toml:"health"`
	Fuel          float64 `toml:"fuel"`
	Speed         float64 `toml:"speed"`
	RotationSpeed float64 `toml:"rotation_speed"`
	ReloadSeconds float64 `toml:"reload_seconds"`
	BulletSpeed   float64 `toml:"bullet_speed"`
	TractorRange  float64 `toml:"tractor_range"`
}

type WorldConfig struct {
	Seed              int64 `toml:"seed"` // 0 = time based
	Planets           int   `toml:"planets"`
	BunkersPerPlanet  int   `toml:"bunkers_per_planet"`
	TerrainPerPlanet  int   `toml:"terrain_per_planet"`
	PlacementAttempts int   `toml:"placement_attempts"`
}

// ControlsConfig maps actions to key names, e.g. "A", "Space", "F6".
type ControlsConfig struct {
	Left        string `toml:"left"`
	Right       string `toml:"right"`
	Thrust      string `toml:"thrust"`
	Reverse     string `toml:"reverse"`
	Confirm     string `toml:"confirm"`
	Tractor     string `toml:"tractor"`
	ToggleAudio string `toml:"toggle_audio"`
	Quit        string `toml:"quit"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the TOML file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Player.Health <= 0:
		return fmt.Errorf("player health %d must be positive", c.Player.Health)
	case c.Player.ReloadSeconds < 0:
		return fmt.Errorf("reload_seconds %v must not be negative", c.Player.ReloadSeconds)
	case c.World.Planets < 0 || c.World.BunkersPerPlanet < 0 || c.World.TerrainPerPlanet < 0:
		return errors.New("world entity counts must not be negative")
	case c.World.PlacementAttempts <= 0:
		return fmt.Errorf("placement_attempts %d must be positive", c.World.PlacementAttempts)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio volume %v outside [0, 1]", c.Audio.Volume)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "Gravitar",
		},
		Player: PlayerConfig{
			Health:        PlayerHealth,
			Fuel:          PlayerFuel,
			Speed:         PlayerSpeed,
			RotationSpeed: PlayerRotationSpeed,
			ReloadSeconds: PlayerReloadSeconds,
			BulletSpeed:   BulletSpeed,
			TractorRange:  TractorRange,
		},
		World: WorldConfig{
			Planets:           PlanetCount,
			BunkersPerPlanet:  BunkersPerPlanet,
			TerrainPerPlanet:  TerrainPerPlanet,
			PlacementAttempts: PlacementAttempts,
		},
		Controls: ControlsConfig{
			Left:        "A",
			Right:       "D",
			Thrust:      "W",
			Reverse:     "S",
			Confirm:     "Space",
			Tractor:     "E",
			ToggleAudio: "F6",
			Quit:        "Escape",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
