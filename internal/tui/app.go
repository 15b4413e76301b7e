// Package tui implements the palette browser.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/blogsite/internal/palette"
	"github.com/opencode-ai/blogsite/internal/tui/components"
	"github.com/opencode-ai/blogsite/internal/tui/styles"
)

// Options configures the browser.
type Options struct {
	Set  palette.Set
	Mode palette.Mode
	// Source labels where the palettes came from, e.g. the site config path.
	Source string
	// MissingSite is the site config path that was not found; the
	// built-in palettes are shown instead.
	MissingSite string
	// Updates delivers reloaded palette sets, e.g. from a config watcher.
	Updates <-chan palette.Set
}

// Run launches the palette browser.
func Run(opts Options) error {
	program := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type row struct {
	category string
	entry    int
	style    palette.TokenStyle
}

type model struct {
	width       int
	height      int
	set         palette.Set
	mode        palette.Mode
	source      string
	missingSite string
	updates     <-chan palette.Set
	styles      styles.Styles
	cursor      int
	filter      string
	filtering   bool
	lastUpdated time.Time
}

const (
	minWidth  = 50
	minHeight = 12
)

func newModel(opts Options) model {
	mode := opts.Mode
	if mode != palette.ModeDark {
		mode = palette.ModeLight
	}
	m := model{
		set:         opts.Set,
		mode:        mode,
		source:      opts.Source,
		missingSite: opts.MissingSite,
		updates:     opts.Updates,
		lastUpdated: time.Now(),
	}
	m.restyle()
	return m
}

func (m *model) restyle() {
	if p := m.active(); p != nil {
		m.styles = styles.BuildStyles(styles.ThemeFrom(p))
		return
	}
	m.styles = styles.DefaultStyles()
}

func (m model) active() *palette.Palette {
	return m.set.Palette(m.mode)
}

type setMsg palette.Set

func waitForUpdate(updates <-chan palette.Set) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		set, ok := <-updates
		if !ok {
			return nil
		}
		return setMsg(set)
	}
}

func (m model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "m":
			m.mode = m.mode.Other()
			m.restyle()
			m.clampCursor()
		case "j", "down":
			m.cursor++
			m.clampCursor()
		case "k", "up":
			m.cursor--
			m.clampCursor()
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = len(m.rows()) - 1
			m.clampCursor()
		case "/":
			m.filtering = true
		case "esc":
			if m.filter != "" {
				m.filter = ""
				m.clampCursor()
				return m, nil
			}
			return m, tea.Quit
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case setMsg:
		m.set = palette.Set(msg)
		m.lastUpdated = time.Now()
		m.restyle()
		m.clampCursor()
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(msg.Runes)
	}
	m.clampCursor()
	return m, nil
}

func (m *model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// rows lists the categories of the active palette, each with the style of
// the entry that owns it.
func (m model) rows() []row {
	p := m.active()
	if p == nil {
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(m.filter))
	var out []row
	for _, category := range p.Categories() {
		if needle != "" && !strings.Contains(category, needle) {
			continue
		}
		out = append(out, row{category: category, entry: p.Owner(category), style: p.Resolve(category)})
	}
	return out
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	p := m.active()
	title := "Palette browser"
	if p != nil {
		title = fmt.Sprintf("Palette browser: %s (%s)", p.Name, m.mode)
	}
	lines := []string{m.styles.Title.Render(title)}
	if m.source != "" {
		lines = append(lines, m.styles.Muted.Render("Source: "+m.source))
	}
	if m.missingSite != "" {
		lines = append(lines, components.EmptySite(m.missingSite).RenderCompact(m.styles))
	}
	lines = append(lines, "")

	switch {
	case p == nil || len(p.Entries) == 0:
		name := ""
		if p != nil {
			name = p.Name
		}
		lines = append(lines, components.EmptyPalette(name).Render(m.styles))
	default:
		rows := m.rows()
		if len(rows) == 0 {
			lines = append(lines, components.EmptyCategoriesFiltered(m.filter).Render(m.styles))
		}
		lines = append(lines, m.rowLines(p, rows)...)
	}

	if m.filtering || m.filter != "" {
		cursor := ""
		if m.filtering {
			cursor = "_"
		}
		lines = append(lines, "", m.styles.Info.Render(fmt.Sprintf("Filter: %s%s", m.filter, cursor)))
	}

	lines = append(lines, "", m.styles.Muted.Render(m.lastUpdatedLine()))
	lines = append(lines, "", m.styles.Muted.Render("Shortcuts: q quit | m light/dark | j/k move | / filter | esc clear"))

	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) rowLines(p *palette.Palette, rows []row) []string {
	start, end := m.window(len(rows))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		r := rows[i]
		marker := "  "
		if i == m.cursor {
			marker = m.styles.Focus.Render("> ")
		}
		swatch := styles.Swatch(r.style, p.PlainBackground).Render(fmt.Sprintf(" %-18s ", r.category))
		detail := fmt.Sprintf("%-8s entry %d%s", r.style.Color, r.entry, attributes(r.style))
		lines = append(lines, marker+swatch+"  "+m.styles.Muted.Render(detail))
	}
	return lines
}

// window keeps the cursor visible when the list is taller than the screen.
func (m model) window(n int) (int, int) {
	visible := n
	if m.height > 0 {
		visible = m.height - 10
		if visible < 1 {
			visible = 1
		}
	}
	if visible >= n {
		return 0, n
	}
	start := m.cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > n {
		start = n - visible
	}
	return start, start + visible
}

func attributes(style palette.TokenStyle) string {
	var attrs []string
	if style.Italic {
		attrs = append(attrs, "italic")
	}
	if style.Bold {
		attrs = append(attrs, "bold")
	}
	if style.Opacity > 0 {
		attrs = append(attrs, fmt.Sprintf("opacity %.2g", style.Opacity))
	}
	if len(attrs) == 0 {
		return ""
	}
	return "  " + strings.Join(attrs, ", ")
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) lastUpdatedLine() string {
	if m.lastUpdated.IsZero() {
		return "Loaded: --"
	}
	return fmt.Sprintf("Loaded: %s", m.lastUpdated.Format("15:04:05"))
}
