package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/blogsite/internal/palette"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Focus    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles builds styles from the built-in light palette.
func DefaultStyles() Styles {
	return BuildStyles(ThemeFrom(palette.SolarizedLight))
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	return Styles{
		Theme:    theme,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Focus:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Background)).Background(lipgloss.Color(tokens.Focus)),
	}
}

// Swatch renders text the way the palette would style a token: color on the
// plain background, with italic, bold and faint (for opacity) applied.
func Swatch(style palette.TokenStyle, background string) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Color))
	if background != "" {
		s = s.Background(lipgloss.Color(background))
	}
	if style.Italic {
		s = s.Italic(true)
	}
	if style.Bold {
		s = s.Bold(true)
	}
	if style.Opacity > 0 && style.Opacity < 1 {
		s = s.Faint(true)
	}
	return s
}
