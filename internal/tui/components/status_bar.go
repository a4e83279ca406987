package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/nexus/internal/store"
	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// RenderStatusBar renders the active theme, dark flag and device class.
func RenderStatusBar(styleSet styles.Styles, state store.State) string {
	mode := "light"
	if styleSet.Scheme.Dark {
		mode = "dark"
	}
	if state.DarkMode != store.DarkModeFollowTheme {
		mode += " (forced)"
	}

	parts := []string{
		styleSet.Accent.Render(state.ActiveThemeID),
		styleSet.Muted.Render(mode),
		styleSet.Muted.Render(state.Device.String()),
	}
	return strings.Join(parts, styleSet.Muted.Render(" | "))
}

// RenderNotice renders a one-line notice such as a rejected theme.
func RenderNotice(styleSet styles.Styles, format string, args ...any) string {
	return styleSet.Warning.Render(" " + fmt.Sprintf(format, args...) + " ")
}
