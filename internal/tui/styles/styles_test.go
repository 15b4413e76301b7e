package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blogsite/internal/palette"
)

func TestThemeFromPalette(t *testing.T) {
	theme := ThemeFrom(palette.SolarizedDark)

	require.Equal(t, "solarized-dark", theme.Name)
	require.Equal(t, palette.ModeDark, theme.Mode)
	require.Equal(t, "#002b36", theme.Tokens.Background)
	require.Equal(t, "#839496", theme.Tokens.Text)
	require.Equal(t, "#586e75", theme.Tokens.TextMuted)
	require.Equal(t, "#859900", theme.Tokens.Accent)
}

func TestBuildStyles(t *testing.T) {
	s := BuildStyles(ThemeFrom(palette.SolarizedLight))
	require.Equal(t, lipgloss.Color("#859900"), s.Accent.GetForeground())
	require.True(t, s.Title.GetBold())
}

func TestSwatch(t *testing.T) {
	s := Swatch(palette.TokenStyle{Color: "#93a1a1", Italic: true}, "#fdf6e3")
	require.Equal(t, lipgloss.Color("#93a1a1"), s.GetForeground())
	require.Equal(t, lipgloss.Color("#fdf6e3"), s.GetBackground())
	require.True(t, s.GetItalic())
	require.False(t, s.GetBold())

	faint := Swatch(palette.TokenStyle{Color: "#657b83", Opacity: 0.7}, "")
	require.True(t, faint.GetFaint())
}
