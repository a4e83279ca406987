package styles

import "fmt"

// Token names a semantic color role.
type Token string

// Static tokens read a theme field directly.
const (
	TokenBackground    Token = "background"
	TokenInput         Token = "input"
	TokenOverlay       Token = "overlay"
	TokenAccent        Token = "accent"
	TokenTextPrimary   Token = "textPrimary"
	TokenTextSecondary Token = "textSecondary"
)

// Interactive tokens switch on the element's own Interaction.
const (
	TokenText      Token = "text"
	TokenTimestamp Token = "timestamp"
)

// TokenPlaceholder follows the effective dark flag of the scheme.
const TokenPlaceholder Token = "placeholder"

// Placeholder shades for dark and light schemes.
const (
	placeholderDark  Color = "#71717a"
	placeholderLight Color = "#09090b"
)

// Tokens lists every token the resolver understands.
func Tokens() []Token {
	return []Token{
		TokenBackground,
		TokenInput,
		TokenOverlay,
		TokenAccent,
		TokenTextPrimary,
		TokenTextSecondary,
		TokenText,
		TokenTimestamp,
		TokenPlaceholder,
	}
}

// Interactive reports whether the token depends on Interaction.
func (t Token) Interactive() bool {
	return t == TokenText || t == TokenTimestamp
}

// Valid reports whether the token is known to the resolver.
func (t Token) Valid() bool {
	for _, known := range Tokens() {
		if t == known {
			return true
		}
	}
	return false
}

// Interaction is the transient state of a single rendered element.
// It belongs to that element and is never shared through the store.
type Interaction struct {
	// Selected is true while a pointer or focus interaction is active.
	Selected bool
}

// Scheme is a theme together with the effective dark flag, which may
// differ from Theme.IsDark when the user overrides dark mode.
type Scheme struct {
	Theme Theme
	Dark  bool
}

// SchemeFor returns the scheme that follows the theme's own dark flag.
func SchemeFor(theme Theme) Scheme {
	return Scheme{Theme: theme, Dark: theme.IsDark}
}

// ResolveColor resolves token against theme without a dark-mode override.
func ResolveColor(theme Theme, token Token, local Interaction) Color {
	return SchemeFor(theme).Color(token, local)
}

// Color resolves a single token. Unknown tokens panic.
func (s Scheme) Color(token Token, local Interaction) Color {
	tokens := s.Theme.Tokens
	switch token {
	case TokenBackground:
		return tokens.Background
	case TokenInput:
		return tokens.Input
	case TokenOverlay:
		return tokens.Overlay
	case TokenAccent:
		return tokens.Accent
	case TokenTextPrimary:
		return tokens.TextPrimary
	case TokenTextSecondary:
		return tokens.TextSecondary
	case TokenText, TokenTimestamp:
		if local.Selected {
			return tokens.TextPrimary
		}
		return tokens.TextSecondary
	case TokenPlaceholder:
		if s.Dark {
			return placeholderDark
		}
		return placeholderLight
	default:
		panic(fmt.Sprintf("styles: unknown color token %q", token))
	}
}

// Resolve resolves a set of tokens for one element.
func (s Scheme) Resolve(tokens []Token, local Interaction) map[Token]Color {
	colors := make(map[Token]Color, len(tokens))
	for _, token := range tokens {
		colors[token] = s.Color(token, local)
	}
	return colors
}
