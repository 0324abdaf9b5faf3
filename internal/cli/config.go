package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config collects the run's tunables and prompt wording. Everything has a
// default; a TOML file given via --config overrides individual keys.
type Config struct {
	// JPEGQuality is the encoder quality for .jpg/.jpeg output (1-100).
	JPEGQuality int `toml:"jpeg_quality"`

	// Prompts holds the console prompt labels, overridable for rewording or
	// localization.
	Prompts Prompts `toml:"prompts"`
}

// Prompts is the full set of console prompt labels, in the order they can
// appear during a run.
type Prompts struct {
	BasePath      string `toml:"base_path"`
	WatermarkPath string `toml:"watermark_path"`
	HonorAlpha    string `toml:"honor_alpha"`
	UseColorKey   string `toml:"use_color_key"`
	ColorKey      string `toml:"color_key"`
	BlendWeight   string `toml:"blend_weight"`
	TilePlacement string `toml:"tile_placement"`
	Coordinates   string `toml:"coordinates"`
	OutputPath    string `toml:"output_path"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		JPEGQuality: 95,
		Prompts: Prompts{
			BasePath:      "Base image path",
			WatermarkPath: "Watermark image path",
			HonorAlpha:    "The watermark has a transparency channel, use it? (yes/no)",
			UseColorKey:   "Make one color of the watermark transparent? (yes/no)",
			ColorKey:      "Transparency color as red, green and blue (e.g. 255 0 255)",
			BlendWeight:   "Watermark transparency percentage (0-100)",
			TilePlacement: "Tile the watermark across the whole image? (yes/no)",
			Coordinates:   "Watermark position as X and Y (e.g. 10 10)",
			OutputPath:    "Output image filename (.jpg or .png)",
		},
	}
}

// LoadConfig reads a TOML config file over the defaults. Keys absent from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
