// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/blogsite/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "🎨", "🔍").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands or keys.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command or key to use (e.g., "blogsite init").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// EmptyPalette returns an empty state for a palette with no entries.
func EmptyPalette(name string) EmptyState {
	return EmptyState{
		Icon:     "🎨",
		Title:    fmt.Sprintf("Palette '%s' has no entries", name),
		Subtitle: "Every token renders in the plain color.",
		Suggestions: []Suggestion{
			{Command: "blogsite palette list", Description: "show the available palettes"},
			{Command: "m", Description: "switch to the other mode"},
		},
	}
}

// EmptyCategoriesFiltered returns an empty state for when filter matches nothing.
func EmptyCategoriesFiltered(filter string) EmptyState {
	return EmptyState{
		Icon:     "🔍",
		Title:    fmt.Sprintf("No categories match '%s'", filter),
		Subtitle: "Press / to edit or esc to clear the filter.",
	}
}

// EmptySite returns an empty state for when no site config exists yet.
func EmptySite(path string) EmptyState {
	return EmptyState{
		Icon:     "🚀",
		Title:    fmt.Sprintf("No site config at %s", path),
		Subtitle: "The built-in solarized palettes are shown.",
		Suggestions: []Suggestion{
			{Command: "blogsite init", Description: "write a starter site.yaml"},
		},
	}
}
