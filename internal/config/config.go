// Package config provides YAML-based configuration loading for the tile
// game runtime.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-tilegame/internal/core"
	"github.com/vovakirdan/tui-tilegame/internal/viewport"
)

// GameConfig contains all tunable settings for a play session.
type GameConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Player   PlayerConfig   `yaml:"player"`
	Controls ControlsConfig `yaml:"controls"`
	Camera   CameraConfig   `yaml:"camera"`
	Input    InputConfig    `yaml:"input"`
	Start    StartConfig    `yaml:"start"`
	Cache    CacheConfig    `yaml:"cache"`
}

// DisplayConfig defines how pixels map onto the terminal.
type DisplayConfig struct {
	TickRate        int     `yaml:"tick_rate"`
	Density         float64 `yaml:"density"`
	CellWidth       int     `yaml:"cell_width"`
	CellHeight      int     `yaml:"cell_height"`
	BackgroundGlyph string  `yaml:"background_glyph"`
	BackgroundColor string  `yaml:"background_color"`
}

// PlayerConfig defines the player unit.
type PlayerConfig struct {
	Speed    int `yaml:"speed"`
	Drawable int `yaml:"drawable"`
}

// ControlsConfig defines the on-screen direction controls.
type ControlsConfig struct {
	Padding int `yaml:"padding"`
	Up      int `yaml:"up"`
	Down    int `yaml:"down"`
	Left    int `yaml:"left"`
	Right   int `yaml:"right"`
}

// CameraConfig selects the viewport mode ("screen" or "world").
type CameraConfig struct {
	Mode string `yaml:"mode"`
}

// InputConfig defines how long a key press holds its direction.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// StartConfig names the level loaded at startup.
type StartConfig struct {
	Stage int `yaml:"stage"`
	Level int `yaml:"level"`
}

// CacheConfig bounds the image cache.
type CacheConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

// Validate fills zero values with defaults and rejects settings that cannot
// be used.
func (c *GameConfig) Validate() error {
	def := DefaultGameConfig()

	if c.Display.TickRate <= 0 {
		c.Display.TickRate = def.Display.TickRate
	}
	if c.Display.Density <= 0 {
		c.Display.Density = def.Display.Density
	}
	if c.Display.CellWidth <= 0 {
		c.Display.CellWidth = def.Display.CellWidth
	}
	if c.Display.CellHeight <= 0 {
		c.Display.CellHeight = def.Display.CellHeight
	}
	if c.Display.BackgroundGlyph == "" {
		c.Display.BackgroundGlyph = def.Display.BackgroundGlyph
	}
	if c.Display.BackgroundColor == "" {
		c.Display.BackgroundColor = def.Display.BackgroundColor
	}
	if _, ok := core.ParseColor(c.Display.BackgroundColor); !ok {
		return fmt.Errorf("config: unknown background color %q", c.Display.BackgroundColor)
	}
	if c.Player.Speed <= 0 {
		c.Player.Speed = def.Player.Speed
	}
	if c.Player.Drawable <= 0 {
		c.Player.Drawable = def.Player.Drawable
	}
	if c.Controls.Padding <= 0 {
		c.Controls.Padding = def.Controls.Padding
	}
	if c.Controls.Up <= 0 {
		c.Controls.Up = def.Controls.Up
	}
	if c.Controls.Down <= 0 {
		c.Controls.Down = def.Controls.Down
	}
	if c.Controls.Left <= 0 {
		c.Controls.Left = def.Controls.Left
	}
	if c.Controls.Right <= 0 {
		c.Controls.Right = def.Controls.Right
	}
	if c.Camera.Mode == "" {
		c.Camera.Mode = def.Camera.Mode
	}
	if _, err := viewport.ParseMode(c.Camera.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Input.HoldMS <= 0 {
		c.Input.HoldMS = def.Input.HoldMS
	}
	if c.Start.Stage <= 0 {
		c.Start.Stage = def.Start.Stage
	}
	if c.Start.Level <= 0 {
		c.Start.Level = def.Start.Level
	}
	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = def.Cache.MaxEntries
	}
	return nil
}

// Runtime builds the session's runtime configuration for a screen of w x h
// cells.
func (c GameConfig) Runtime(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: c.Display.TickRate,
		Density:  c.Display.Density,
		CellW:    c.Display.CellWidth,
		CellH:    c.Display.CellHeight,
	}
}

// Mode returns the parsed camera mode, falling back to screen mode.
func (c GameConfig) Mode() viewport.Mode {
	m, err := viewport.ParseMode(c.Camera.Mode)
	if err != nil {
		return viewport.ModeScreen
	}
	return m
}
