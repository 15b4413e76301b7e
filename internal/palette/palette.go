// Package palette provides the syntax-highlighting palettes used for code samples.
package palette

// TokenStyle is the display style applied to a token category.
type TokenStyle struct {
	Color      string  `json:"color"`
	Background string  `json:"background,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
	Opacity    float64 `json:"opacity,omitempty"`
}

// HasAttributes reports whether the style carries anything beyond colors.
func (s TokenStyle) HasAttributes() bool {
	return s.Italic || s.Bold || s.Opacity != 0
}

// PaletteEntry maps a set of token categories to one style.
type PaletteEntry struct {
	Categories []string   `json:"types"`
	Style      TokenStyle `json:"style"`
}

// Palette is an ordered list of entries plus the plain fallback colors.
// Build it with NewPalette; the zero value resolves everything to empty styles.
type Palette struct {
	Name            string         `json:"name"`
	Mode            Mode           `json:"mode"`
	PlainColor      string         `json:"plainColor"`
	PlainBackground string         `json:"plainBackground"`
	Entries         []PaletteEntry `json:"entries"`

	index map[string]int
}

// NewPalette copies entries and indexes them by category. When a category
// appears in more than one entry the earliest entry owns it.
func NewPalette(name string, mode Mode, plainColor, plainBackground string, entries []PaletteEntry) *Palette {
	copied := make([]PaletteEntry, len(entries))
	index := make(map[string]int)
	for i, entry := range entries {
		categories := append([]string(nil), entry.Categories...)
		copied[i] = PaletteEntry{Categories: categories, Style: entry.Style}
		for _, category := range categories {
			if _, exists := index[category]; exists {
				continue
			}
			index[category] = i
		}
	}

	return &Palette{
		Name:            name,
		Mode:            mode,
		PlainColor:      plainColor,
		PlainBackground: plainBackground,
		Entries:         copied,
		index:           index,
	}
}

// Plain returns the fallback style used for unknown categories.
func (p *Palette) Plain() TokenStyle {
	if p == nil {
		return TokenStyle{}
	}
	return TokenStyle{Color: p.PlainColor, Background: p.PlainBackground}
}

// Lookup returns the style of the first entry containing category.
func (p *Palette) Lookup(category string) (TokenStyle, bool) {
	if p == nil || category == "" {
		return TokenStyle{}, false
	}
	if p.index != nil {
		i, ok := p.index[category]
		if !ok {
			return TokenStyle{}, false
		}
		return p.Entries[i].Style, true
	}

	for _, entry := range p.Entries {
		for _, c := range entry.Categories {
			if c == category {
				return entry.Style, true
			}
		}
	}
	return TokenStyle{}, false
}

// Resolve returns the style for category, falling back to the plain colors
// when no entry matches. It never fails.
func (p *Palette) Resolve(category string) TokenStyle {
	if style, ok := p.Lookup(category); ok {
		return style
	}
	return p.Plain()
}

// Categories lists each category once, in first-declaration order.
func (p *Palette) Categories() []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, entry := range p.Entries {
		for _, category := range entry.Categories {
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			out = append(out, category)
		}
	}
	return out
}

// Owner returns the index of the entry that styles category, or -1.
func (p *Palette) Owner(category string) int {
	if p == nil {
		return -1
	}
	for i, entry := range p.Entries {
		for _, c := range entry.Categories {
			if c == category {
				return i
			}
		}
	}
	return -1
}

// Set holds the light and dark palettes handed to the highlighter.
type Set struct {
	Light *Palette
	Dark  *Palette
}

// Palette returns the palette for mode. Unknown modes get the light palette.
func (s Set) Palette(mode Mode) *Palette {
	if mode == ModeDark && s.Dark != nil {
		return s.Dark
	}
	return s.Light
}

// Resolve returns the style for category under mode.
func (s Set) Resolve(category string, mode Mode) TokenStyle {
	return s.Palette(mode).Resolve(category)
}

// DefaultSet returns the built-in solarized pair.
func DefaultSet() Set {
	return Set{Light: SolarizedLight, Dark: SolarizedDark}
}

// Resolve resolves category against the built-in palettes.
func Resolve(category string, mode Mode) TokenStyle {
	return DefaultSet().Resolve(category, mode)
}
