package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from a resolved scheme.
type Styles struct {
	Scheme      Scheme
	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Screen      lipgloss.Style
	Bubble      lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Warning     lipgloss.Style
}

// DefaultStyles builds styles from the catalog default theme.
func DefaultStyles() Styles {
	return BuildStyles(SchemeFor(DefaultCatalog().Default()))
}

// BuildStyles converts scheme colors into lipgloss styles. Interactive
// tokens are not baked in here; components resolve them per element.
func BuildStyles(scheme Scheme) Styles {
	return BuildStylesWith(scheme, nil)
}

// BuildStylesWith builds styles from colors already resolved against
// scheme. Tokens missing from colors are resolved from scheme.
func BuildStylesWith(scheme Scheme, colors map[Token]Color) Styles {
	color := func(token Token) lipgloss.Color {
		if c, ok := colors[token]; ok {
			return c.Lipgloss()
		}
		return scheme.Color(token, Interaction{}).Lipgloss()
	}

	return Styles{
		Scheme:      scheme,
		Title:       lipgloss.NewStyle().Foreground(color(TokenTextPrimary)).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(color(TokenTextPrimary)),
		Muted:       lipgloss.NewStyle().Foreground(color(TokenTextSecondary)),
		Accent:      lipgloss.NewStyle().Foreground(color(TokenAccent)).Bold(true),
		Screen:      lipgloss.NewStyle().Background(color(TokenBackground)),
		Bubble:      lipgloss.NewStyle().Background(color(TokenOverlay)).Padding(0, 1).MaxWidth(40),
		Input:       lipgloss.NewStyle().Background(color(TokenInput)).Foreground(color(TokenTextPrimary)),
		Placeholder: lipgloss.NewStyle().Foreground(color(TokenPlaceholder)),
		Warning:     lipgloss.NewStyle().Foreground(color(TokenTextPrimary)).Background(color(TokenAccent)).Bold(true),
	}
}
