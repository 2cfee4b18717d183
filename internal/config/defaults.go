package config

import (
	_ "embed"
)

//go:embed defaults/tilegame.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Display: DisplayConfig{
			TickRate:        30,
			Density:         1.0,
			CellWidth:       4,
			CellHeight:      8,
			BackgroundGlyph: " ",
			BackgroundColor: "default",
		},
		Player: PlayerConfig{
			Speed:    3,
			Drawable: 10,
		},
		Controls: ControlsConfig{
			Padding: 10,
			Up:      20,
			Down:    21,
			Left:    22,
			Right:   23,
		},
		Camera: CameraConfig{
			Mode: "screen",
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Start: StartConfig{
			Stage: 1,
			Level: 1,
		},
		Cache: CacheConfig{
			MaxEntries: 64,
		},
	}
}
