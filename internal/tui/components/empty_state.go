// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	Icon        string
	Title       string
	Subtitle    string
	Suggestions []Suggestion // commands the user can type next
}

// Suggestion is a slash command with a short description.
type Suggestion struct {
	Command     string
	Description string
}

// Render renders the empty state with its suggestions underneath.
func (e EmptyState) Render(styleSet styles.Styles) string {
	title := e.Title
	if e.Icon != "" {
		title = e.Icon + "  " + title
	}
	lines := []string{styleSet.Muted.Render(title)}
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}
	if len(e.Suggestions) == 0 {
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "", styleSet.Text.Render("Get started:"))
	for _, s := range e.Suggestions {
		line := "  " + styleSet.Accent.Render(s.Command)
		if s.Description != "" {
			line += styleSet.Muted.Render("  # " + s.Description)
		}
		lines = append(lines, line)
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

// EmptyChat returns an empty state for a transcript with no messages.
func EmptyChat() EmptyState {
	return EmptyState{
		Icon:     "💬",
		Title:    "No messages yet",
		Subtitle: "Type in the command bar and press enter.",
		Suggestions: []Suggestion{
			{Command: "/theme <id>", Description: "switch theme"},
			{Command: "/dark on|off|auto", Description: "override dark mode"},
		},
	}
}

// EmptyThemesFiltered returns an empty state for a theme filter that
// matches nothing.
func EmptyThemesFiltered(filter string) EmptyState {
	return EmptyState{
		Icon:     "🔍",
		Title:    fmt.Sprintf("No themes match '%s'", filter),
		Subtitle: "Backspace to edit the filter, esc to close.",
	}
}
