package styles

import "github.com/opencode-ai/blogsite/internal/palette"

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background string
	Text       string
	TextMuted  string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles the tokens derived from one palette.
type Theme struct {
	Name   string
	Mode   palette.Mode
	Tokens ThemeTokens
}

// ThemeFrom borrows the TUI's colors from the palette being browsed, so the
// chrome always matches the code colors on screen.
func ThemeFrom(p *palette.Palette) Theme {
	return Theme{
		Name: p.Name,
		Mode: p.Mode,
		Tokens: ThemeTokens{
			Background: p.PlainBackground,
			Text:       p.PlainColor,
			TextMuted:  p.Resolve("comment").Color,
			Accent:     p.Resolve("keyword").Color,
			Focus:      p.Resolve("function").Color,
			Success:    p.Resolve("string").Color,
			Warning:    p.Resolve("class-name").Color,
			Error:      p.Resolve("important").Color,
			Info:       p.Resolve("builtin").Color,
		},
	}
}
