package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/blogsite/internal/palette"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestModeToggle(t *testing.T) {
	m := newModel(Options{Set: palette.DefaultSet()})
	require.Equal(t, palette.ModeLight, m.mode)
	require.Equal(t, "solarized-light", m.active().Name)

	m = press(t, m, runes("m"))
	require.Equal(t, palette.ModeDark, m.mode)
	require.Equal(t, "solarized-dark", m.active().Name)
	require.Equal(t, "#002b36", m.styles.Theme.Tokens.Background)
	require.Contains(t, m.View(), "solarized-dark (dark)")

	m = press(t, m, runes("m"))
	require.Equal(t, palette.ModeLight, m.mode)
}

func TestCursorMovement(t *testing.T) {
	m := newModel(Options{Set: palette.DefaultSet()})
	total := len(m.rows())
	require.Equal(t, len(palette.SolarizedLight.Categories()), total)

	m = press(t, m, runes("k"))
	require.Equal(t, 0, m.cursor)

	m = press(t, m, runes("j"), runes("j"))
	require.Equal(t, 2, m.cursor)

	m = press(t, m, runes("G"))
	require.Equal(t, total-1, m.cursor)

	m = press(t, m, runes("j"))
	require.Equal(t, total-1, m.cursor)

	m = press(t, m, runes("g"))
	require.Equal(t, 0, m.cursor)
}

func TestFilter(t *testing.T) {
	m := newModel(Options{Set: palette.DefaultSet()})
	m = press(t, m, runes("/"), runes("key"), tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.filtering)
	require.Equal(t, "key", m.filter)

	rows := m.rows()
	require.Len(t, rows, 1)
	require.Equal(t, "keyword", rows[0].category)
	require.Equal(t, "#859900", rows[0].style.Color)

	m = press(t, m, runes("/"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, runes("zz"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Empty(t, m.rows())
	require.Contains(t, m.View(), "No categories match 'zz'")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Empty(t, m.filter)
	require.Equal(t, len(palette.SolarizedLight.Categories()), len(m.rows()))
}

func TestFilterTypingDoesNotToggleMode(t *testing.T) {
	m := newModel(Options{Set: palette.DefaultSet()})
	m = press(t, m, runes("/"), runes("m"))
	require.Equal(t, palette.ModeLight, m.mode)
	require.Equal(t, "m", m.filter)
}

func TestRowsUseOwningEntry(t *testing.T) {
	m := newModel(Options{Set: palette.DefaultSet()})
	for _, r := range m.rows() {
		if r.category == "tag" {
			require.Equal(t, "#268bd2", r.style.Color)
			require.Equal(t, palette.SolarizedLight.Owner("tag"), r.entry)
			return
		}
	}
	t.Fatal("tag category not listed")
}

func TestQuit(t *testing.T) {
	m := newModel(Options{Set: palette.DefaultSet()})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSmallView(t *testing.T) {
	m := newModel(Options{Set: palette.DefaultSet()})
	m = press(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	require.Contains(t, m.View(), "Terminal too small (20x5)")
}

func TestEmptyPaletteView(t *testing.T) {
	empty := palette.NewPalette("mono", palette.ModeLight, "#000000", "#ffffff", nil)
	m := newModel(Options{Set: palette.Set{Light: empty, Dark: empty}, Source: "site.yaml"})
	view := m.View()
	require.Contains(t, view, "'mono' has no entries")
	require.Contains(t, view, "Source: site.yaml")
}

func TestReloadedSet(t *testing.T) {
	updates := make(chan palette.Set, 1)
	m := newModel(Options{Set: palette.DefaultSet(), Updates: updates})
	require.NotNil(t, m.Init())

	mono := palette.NewPalette("mono", palette.ModeLight, "#000000", "#ffffff", []palette.PaletteEntry{
		{Categories: []string{"keyword"}, Style: palette.TokenStyle{Color: "#111111", Bold: true}},
	})
	updates <- palette.Set{Light: mono, Dark: palette.SolarizedDark}
	msg := m.Init()()

	next, cmd := m.Update(msg)
	m = next.(model)
	require.NotNil(t, cmd)
	require.Equal(t, "mono", m.active().Name)
	require.Len(t, m.rows(), 1)
	require.True(t, strings.Contains(m.View(), "bold"))
}

func TestMissingSiteNotice(t *testing.T) {
	m := newModel(Options{Set: palette.DefaultSet(), MissingSite: "site.yaml"})
	view := m.View()
	require.Contains(t, view, "No site config at site.yaml")
	require.Contains(t, view, "blogsite init")
}
