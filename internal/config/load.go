package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/blogsite/internal/palette"
)

// Load reads, defaults and validates the site config at path.
func Load(path string, logger zerolog.Logger) (*SiteConfig, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("site config path is required")
	}

	logger.Debug().Str("path", path).Msg("site config loading start")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config %s: %w", path, err)
	}

	cfg, err := parse(data, path, logger)
	if err != nil {
		return nil, fmt.Errorf("load site config %s: %w", path, err)
	}

	logger.Info().Str("path", path).Str("title", cfg.Title).Msg("site config loaded")
	return cfg, nil
}

// Parse decodes and validates a site config from YAML bytes.
func Parse(data []byte, logger zerolog.Logger) (*SiteConfig, error) {
	return parse(data, "", logger)
}

func parse(data []byte, source string, logger zerolog.Logger) (*SiteConfig, error) {
	var cfg SiteConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	cfg.Source = source
	cfg.ApplyDefaults()
	if err := cfg.Validate(logger); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Palettes resolves the configured prism themes. Custom palettes are looked
// up under projectDir before the built-ins.
func (c *SiteConfig) Palettes(projectDir string) (palette.Set, error) {
	light, err := palette.Find(projectDir, c.Prism.LightTheme)
	if err != nil {
		return palette.Set{}, fmt.Errorf("prism light theme: %w", err)
	}
	dark, err := palette.Find(projectDir, c.Prism.DarkTheme)
	if err != nil {
		return palette.Set{}, fmt.Errorf("prism dark theme: %w", err)
	}
	return palette.Set{Light: light, Dark: dark}, nil
}

// ProjectDir returns the directory the config was loaded from, or ".".
func (c *SiteConfig) ProjectDir() string {
	if c.Source == "" {
		return "."
	}
	return filepath.Dir(c.Source)
}

// SiteURL joins the canonical URL with the base path.
func (c *SiteConfig) SiteURL() string {
	return strings.TrimRight(c.URL, "/") + c.BaseURL
}

// BlogURL is the public URL of the blog's home route.
func (c *SiteConfig) BlogURL() string {
	route := strings.Trim(c.Blog.RouteBasePath, "/")
	if route == "" {
		return c.SiteURL()
	}
	return c.SiteURL() + route + "/"
}

// DefaultMode returns the configured initial color mode.
func (c *SiteConfig) DefaultMode() palette.Mode {
	mode, err := palette.ParseMode(c.ColorMode.DefaultMode)
	if err != nil {
		return palette.ModeLight
	}
	return mode
}
