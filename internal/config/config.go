// Package config loads the storyedit TOML configuration.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iw2rmb/stylerun/internal/logging"
	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/story"
)

type Config struct {
	Placeholder  string
	Fonts        []string
	Palette      []string
	DefaultFont  string
	DefaultColor string

	Submit Submit
	Log    Log
}

type Submit struct {
	BaseURL string
	Timeout time.Duration
}

type Log struct {
	Level   string
	File    string
	NoColor bool
}

type fileConfig struct {
	Placeholder  string   `toml:"placeholder"`
	Fonts        []string `toml:"fonts"`
	Palette      []string `toml:"palette"`
	DefaultFont  string   `toml:"default_font"`
	DefaultColor string   `toml:"default_color"`

	Submit struct {
		BaseURL string `toml:"base_url"`
		Timeout string `toml:"timeout"`
	} `toml:"submit"`

	Log struct {
		Level   string `toml:"level"`
		File    string `toml:"file"`
		NoColor bool   `toml:"no_color"`
	} `toml:"log"`
}

func Default() Config {
	return Config{
		Placeholder:  "HELLO! TYPE HERE...",
		Fonts:        []string{"Bebas Neue", "Montserrat", "Graffiti Youth", "Redoura", "Super Woobly"},
		Palette:      []string{"#FF3B30", "#007AFF", "#34C759", "#AF52DE", "#FF9500", "#FFD60A"},
		DefaultFont:  "Bebas Neue",
		DefaultColor: "#FF3B30",
		Submit: Submit{
			BaseURL: story.DefaultBaseURL,
			Timeout: story.DefaultTimeout,
		},
		Log: Log{Level: "info"},
	}
}

// Load overlays the keys defined in the TOML file at path on Default and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("placeholder") {
		cfg.Placeholder = raw.Placeholder
	}
	if meta.IsDefined("fonts") {
		cfg.Fonts = normalizeList(raw.Fonts)
		if !meta.IsDefined("default_font") && len(cfg.Fonts) > 0 {
			cfg.DefaultFont = cfg.Fonts[0]
		}
	}
	if meta.IsDefined("palette") {
		cfg.Palette = normalizeList(raw.Palette)
		if !meta.IsDefined("default_color") && len(cfg.Palette) > 0 {
			cfg.DefaultColor = cfg.Palette[0]
		}
	}
	if meta.IsDefined("default_font") {
		cfg.DefaultFont = strings.TrimSpace(raw.DefaultFont)
	}
	if meta.IsDefined("default_color") {
		cfg.DefaultColor = strings.TrimSpace(raw.DefaultColor)
	}

	if meta.IsDefined("submit", "base_url") {
		cfg.Submit.BaseURL = strings.TrimSpace(raw.Submit.BaseURL)
	}
	if meta.IsDefined("submit", "timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Submit.Timeout))
		if err != nil {
			return Config{}, fmt.Errorf("parse submit.timeout: %w", err)
		}
		cfg.Submit.Timeout = d
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "file") {
		cfg.Log.File = strings.TrimSpace(raw.Log.File)
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if len(c.Fonts) == 0 {
		errs = append(errs, errors.New("fonts: at least one font is required"))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette: at least one color is required"))
	}
	for _, hex := range c.Palette {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("palette: %q is not a hex color", hex))
		}
	}
	if len(c.Fonts) > 0 && !slices.Contains(c.Fonts, c.DefaultFont) {
		errs = append(errs, fmt.Errorf("default_font: %q is not in fonts", c.DefaultFont))
	}
	if len(c.Palette) > 0 && !slices.Contains(c.Palette, c.DefaultColor) {
		errs = append(errs, fmt.Errorf("default_color: %q is not in palette", c.DefaultColor))
	}
	if c.Submit.Timeout < 0 {
		errs = append(errs, fmt.Errorf("submit.timeout: %s is negative", c.Submit.Timeout))
	}
	if c.Log.Level != "" {
		if _, ok := logging.ParseLevel(c.Log.Level); !ok {
			errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// DefaultStyle is the initial active style.
func (c Config) DefaultStyle() run.Style {
	return run.Style{FontFamily: c.DefaultFont, Color: c.DefaultColor}
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
