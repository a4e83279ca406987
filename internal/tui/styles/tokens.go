package styles

import "fmt"

// Color is a concrete color value as understood by the renderer
// (hex such as "#282a36" or a css-like "hsl(0, 0%, 51%)").
type Color string

// ThemeTokens defines the semantic color roles for the chat UI.
type ThemeTokens struct {
	Background    Color
	Input         Color
	Overlay       Color
	Accent        Color
	TextPrimary   Color
	TextSecondary Color
}

// Theme bundles a palette with an identifier.
//
// IsDark is descriptive metadata supplied by the preset author; it is not
// derived from the colors.
type Theme struct {
	ID     string
	IsDark bool
	Tokens ThemeTokens
}

// validate reports the first missing token field.
func (t Theme) validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: theme id is required", ErrInvalidTheme)
	}
	fields := []struct {
		name  string
		value Color
	}{
		{"background", t.Tokens.Background},
		{"input", t.Tokens.Input},
		{"overlay", t.Tokens.Overlay},
		{"accent", t.Tokens.Accent},
		{"textPrimary", t.Tokens.TextPrimary},
		{"textSecondary", t.Tokens.TextSecondary},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: theme %q is missing token %s", ErrInvalidTheme, t.ID, f.name)
		}
	}
	return nil
}
