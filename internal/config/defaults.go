package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings without touching the disk.
func DefaultSettings() Settings {
	return Settings{
		Display: DisplayConfig{
			Width:  800,
			Height: 480,
			FPS:    60,
		},
		Tiles: TilesConfig{
			Size: 40,
		},
		Player: PlayerConfig{
			Speed: 5,
		},
		Camera: CameraConfig{
			Step:         5,
			ClampToLevel: true,
		},
		Colors: ColorsConfig{
			Sky:        "#87ceeb",
			Background: "#3c7846",
			Block:      "#6e5032",
			Player:     "#ff0000",
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
			HoldTicks:  8,
		},
	}
}

// DefaultYAML returns the embedded default settings document.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
