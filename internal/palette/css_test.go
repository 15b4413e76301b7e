package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSSEmitsEachCategoryOnce(t *testing.T) {
	css := CSS(SolarizedLight, "[data-theme='light'] .prism-code")

	require.Contains(t, css, "[data-theme='light'] .prism-code {\n  color: #657b83;\n  background-color: #fdf6e3;\n}")
	require.Equal(t, 1, strings.Count(css, ".token.keyword"))
	require.Equal(t, 1, strings.Count(css, ".token.tag"))
	require.Contains(t, css, ".token.class-name {\n  color: #b58900;\n}")
	require.Contains(t, css, "font-style: italic")
	require.Contains(t, css, "opacity: 0.7")
}

func TestCSSWithoutSelector(t *testing.T) {
	p := NewPalette("mini", ModeDark, "#ffffff", "#000000", []PaletteEntry{
		{Categories: []string{"bold"}, Style: TokenStyle{Color: "#ff0000", Bold: true}},
	})

	css := CSS(p, "")
	require.True(t, strings.HasPrefix(css, "/* mini (dark) */\n:root {"))
	require.Contains(t, css, ".token.bold {\n  color: #ff0000;\n  font-weight: bold;\n}")
}

func TestCSSNilPalette(t *testing.T) {
	require.Empty(t, CSS(nil, ".x"))
}
