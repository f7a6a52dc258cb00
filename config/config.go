package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for capture and annotation defaults.
// Fields may be loaded from a JSON file, overridden by a .env file, and
// finally by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Export defaults
	Format          string `json:"format"` // png, jpeg or bmp
	JPEGQuality     int    `json:"jpeg_quality"`
	SaveDir         string `json:"save_dir"`
	CopyToClipboard bool   `json:"copy_to_clipboard"`

	// Annotation styling defaults
	StrokeColor string  `json:"stroke_color"` // hex #rrggbb or a named color
	StrokeWidth float64 `json:"stroke_width"`
	FontSize    float64 `json:"font_size"`
	TextColor   string  `json:"text_color"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		Format:          "png",
		JPEGQuality:     90,
		SaveDir:         "",
		CopyToClipboard: false,
		StrokeColor:     "red",
		StrokeWidth:     2,
		FontSize:        14,
		TextColor:       "black",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	switch c.Format {
	case "png", "jpeg", "bmp":
	default:
		c.Format = "png"
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 90
	}
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = 2
	}
	if c.FontSize <= 0 {
		c.FontSize = 14
	}
	if c.StrokeColor == "" {
		c.StrokeColor = "red"
	}
	if c.TextColor == "" {
		c.TextColor = "black"
	}
	return nil
}

// DefaultPath returns the per-user config location, creating parent
// directories as needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("snapmark/config.json")
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). A .env file in the working
// directory (SNAPMARK_* keys) overrides the loaded values either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			_ = cfg.Validate()
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// applyEnv overlays SNAPMARK_* environment variables, loading a local .env
// first when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()
	if v := os.Getenv("SNAPMARK_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("SNAPMARK_SAVE_DIR"); v != "" {
		c.SaveDir = v
	}
	if v := os.Getenv("SNAPMARK_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if v := os.Getenv("SNAPMARK_JPEG_QUALITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 100 {
			c.JPEGQuality = n
		}
	}
}
