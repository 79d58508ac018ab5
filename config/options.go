package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/z7z8th/windirstat/treemap"
)

// TreemapConfig is the TOML-persisted form of treemap.Options: style as a
// name, colors as "#rrggbb" hex strings, the rest as plain floats.
type TreemapConfig struct {
	Style       string  `toml:"style"`
	Grid        bool    `toml:"grid"`
	GridColor   string  `toml:"grid_color"`
	Brightness  float64 `toml:"brightness"`
	Height      float64 `toml:"height"`
	ScaleFactor float64 `toml:"scale_factor"`
	Ambient     float64 `toml:"ambient"`
	LightX      float64 `toml:"light_x"`
	LightY      float64 `toml:"light_y"`
}

// DefaultTreemapConfig mirrors treemap.DefaultOptions in TOML-friendly form.
func DefaultTreemapConfig() TreemapConfig {
	return fromOptions(treemap.DefaultOptions())
}

func fromOptions(o treemap.Options) TreemapConfig {
	return TreemapConfig{
		Style:       o.Style.String(),
		Grid:        o.Grid,
		GridColor:   formatHexColor(o.GridColor),
		Brightness:  o.Brightness,
		Height:      o.Height,
		ScaleFactor: o.ScaleFactor,
		Ambient:     o.Ambient,
		LightX:      o.LightX,
		LightY:      o.LightY,
	}
}

// ToOptions converts the config back into a normalized treemap.Options.
func (c TreemapConfig) ToOptions() treemap.Options {
	o := treemap.Options{
		Style:       parseStyle(c.Style),
		Grid:        c.Grid,
		Brightness:  c.Brightness,
		Height:      c.Height,
		ScaleFactor: c.ScaleFactor,
		Ambient:     c.Ambient,
		LightX:      c.LightX,
		LightY:      c.LightY,
	}

	color, err := parseHexColor(c.GridColor)
	if err != nil {
		log.Printf("Warning: invalid grid color %q: %v. Using black.", c.GridColor, err)
		color = treemap.RGB(0, 0, 0)
	}
	o.GridColor = color

	o.Normalize(false)
	return o
}

func parseStyle(name string) treemap.Style {
	switch name {
	case "kdirstat":
		return treemap.KDirStat
	case "sequoiaview":
		return treemap.SequoiaView
	case "simple":
		return treemap.Simple
	default:
		log.Printf("Warning: unknown treemap style %q. Using kdirstat.", name)
		return treemap.KDirStat
	}
}

func parseHexColor(s string) (treemap.GraphColor, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("invalid hex color format: %s", s)
	}
	r, errR := strconv.ParseUint(s[1:3], 16, 8)
	g, errG := strconv.ParseUint(s[3:5], 16, 8)
	b, errB := strconv.ParseUint(s[5:7], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return 0, fmt.Errorf("invalid hex value in color: %s", s)
	}
	return treemap.RGB(uint8(r), uint8(g), uint8(b)), nil
}

func formatHexColor(c treemap.GraphColor) string {
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// LoadTreemapConfig attempts to load treemap options from
// ~/.config/windirstat/treemap.toml, falling back to
// DefaultTreemapConfig if the file is missing or invalid.
func LoadTreemapConfig() TreemapConfig {
	cfg := DefaultTreemapConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Could not get user home directory: %v. Using default treemap options.", err)
		return cfg
	}

	configPath := filepath.Join(home, ".config", "windirstat", "treemap.toml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("Info: No treemap config found at %s. Using default options.", configPath)
		return cfg
	}

	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Printf("Warning: Failed to decode treemap config %s: %v. Using default options.", configPath, err)
		return DefaultTreemapConfig()
	}

	log.Printf("Loaded treemap options from %s", configPath)
	return cfg
}

// SaveTreemapConfig writes opts to ~/.config/windirstat/treemap.toml,
// creating the directory if needed.
func SaveTreemapConfig(opts treemap.Options) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("config: could not get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".config", "windirstat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: could not create config directory: %w", err)
	}

	configPath := filepath.Join(dir, "treemap.toml")
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("config: could not create %s: %w", configPath, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(fromOptions(opts)); err != nil {
		return fmt.Errorf("config: could not encode treemap config: %w", err)
	}

	log.Printf("Saved treemap options to %s", configPath)
	return nil
}
