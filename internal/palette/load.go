package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// paletteFile is the on-disk form of a palette, shaped like a prism theme.
type paletteFile struct {
	Name  string `yaml:"name"`
	Mode  string `yaml:"mode"`
	Plain struct {
		Color      string `yaml:"color"`
		Background string `yaml:"background"`
	} `yaml:"plain"`
	Entries []entryFile `yaml:"entries"`
}

type entryFile struct {
	Types []string  `yaml:"types"`
	Style styleFile `yaml:"style"`
}

type styleFile struct {
	Color      string  `yaml:"color"`
	FontStyle  string  `yaml:"fontStyle,omitempty"`
	FontWeight string  `yaml:"fontWeight,omitempty"`
	Opacity    float64 `yaml:"opacity,omitempty"`
}

// LoadPalette reads a single palette from disk.
func LoadPalette(path string) (*Palette, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("palette path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}

	p, err := ParsePalette(data)
	if err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}
	return p, nil
}

// ParsePalette decodes a palette from YAML.
func ParsePalette(data []byte) (*Palette, error) {
	var raw paletteFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil, errors.New("palette name is required")
	}
	mode, err := ParseMode(raw.Mode)
	if err != nil {
		return nil, err
	}

	entries := make([]PaletteEntry, 0, len(raw.Entries))
	for i, e := range raw.Entries {
		style, err := e.Style.toStyle()
		if err != nil {
			return nil, fmt.Errorf("entries[%d]: %w", i, err)
		}
		entries = append(entries, PaletteEntry{Categories: e.Types, Style: style})
	}

	return NewPalette(name, mode, raw.Plain.Color, raw.Plain.Background, entries), nil
}

func (s styleFile) toStyle() (TokenStyle, error) {
	style := TokenStyle{Color: s.Color, Opacity: s.Opacity}
	switch s.FontStyle {
	case "":
	case "italic":
		style.Italic = true
	default:
		return TokenStyle{}, fmt.Errorf("unsupported fontStyle %q", s.FontStyle)
	}
	switch s.FontWeight {
	case "", "normal":
	case "bold":
		style.Bold = true
	default:
		return TokenStyle{}, fmt.Errorf("unsupported fontWeight %q", s.FontWeight)
	}
	return style, nil
}

// MarshalYAML encodes p in the same shape LoadPalette reads.
func (p *Palette) MarshalYAML() (any, error) {
	raw := paletteFile{Name: p.Name, Mode: string(p.Mode)}
	raw.Plain.Color = p.PlainColor
	raw.Plain.Background = p.PlainBackground
	for _, entry := range p.Entries {
		style := styleFile{Color: entry.Style.Color, Opacity: entry.Style.Opacity}
		if entry.Style.Italic {
			style.FontStyle = "italic"
		}
		if entry.Style.Bold {
			style.FontWeight = "bold"
		}
		raw.Entries = append(raw.Entries, entryFile{Types: entry.Categories, Style: style})
	}
	return raw, nil
}

// LoadPalettesFromDir loads all palettes from a directory.
func LoadPalettesFromDir(dir string) ([]*Palette, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Palette{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Palette{}, nil
		}
		return nil, fmt.Errorf("read palettes dir %s: %w", dir, err)
	}

	palettes := make([]*Palette, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := LoadPalette(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}

	sort.Slice(palettes, func(i, j int) bool {
		return palettes[i].Name < palettes[j].Name
	})

	return palettes, nil
}
