package styles

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestResolveColorStaticTokens(t *testing.T) {
	for _, id := range DefaultCatalog().IDs() {
		theme := DefaultCatalog().Lookup(id)
		for _, selected := range []bool{false, true} {
			local := Interaction{Selected: selected}
			checks := map[Token]Color{
				TokenBackground:    theme.Tokens.Background,
				TokenInput:         theme.Tokens.Input,
				TokenOverlay:       theme.Tokens.Overlay,
				TokenAccent:        theme.Tokens.Accent,
				TokenTextPrimary:   theme.Tokens.TextPrimary,
				TokenTextSecondary: theme.Tokens.TextSecondary,
			}
			for token, want := range checks {
				if got := ResolveColor(theme, token, local); got != want {
					t.Errorf("%s/%s selected=%t: got %q, want %q", id, token, selected, got, want)
				}
			}
		}
	}
}

func TestResolveColorInteractiveTokens(t *testing.T) {
	for _, id := range DefaultCatalog().IDs() {
		theme := DefaultCatalog().Lookup(id)
		for _, token := range []Token{TokenText, TokenTimestamp} {
			if got := ResolveColor(theme, token, Interaction{Selected: true}); got != theme.Tokens.TextPrimary {
				t.Errorf("%s/%s selected: got %q, want %q", id, token, got, theme.Tokens.TextPrimary)
			}
			if got := ResolveColor(theme, token, Interaction{}); got != theme.Tokens.TextSecondary {
				t.Errorf("%s/%s unselected: got %q, want %q", id, token, got, theme.Tokens.TextSecondary)
			}
		}
	}
}

func TestSchemeDarkOnlyAffectsPlaceholder(t *testing.T) {
	theme := LightTheme
	light := SchemeFor(theme)
	forcedDark := Scheme{Theme: theme, Dark: true}

	if light.Dark {
		t.Fatal("light theme scheme should not be dark")
	}
	if light.Color(TokenPlaceholder, Interaction{}) != placeholderLight {
		t.Fatalf("light placeholder = %q", light.Color(TokenPlaceholder, Interaction{}))
	}
	if forcedDark.Color(TokenPlaceholder, Interaction{}) != placeholderDark {
		t.Fatalf("forced dark placeholder = %q", forcedDark.Color(TokenPlaceholder, Interaction{}))
	}

	for _, token := range Tokens() {
		if token == TokenPlaceholder {
			continue
		}
		if light.Color(token, Interaction{}) != forcedDark.Color(token, Interaction{}) {
			t.Errorf("token %s changed with dark override", token)
		}
	}
}

func TestSchemeResolve(t *testing.T) {
	colors := SchemeFor(DraculaTheme).Resolve([]Token{TokenOverlay, TokenText}, Interaction{Selected: true})
	if len(colors) != 2 {
		t.Fatalf("expected 2 colors, got %v", colors)
	}
	if colors[TokenOverlay] != "#282a36" || colors[TokenText] != "#ffffff" {
		t.Fatalf("unexpected colors: %v", colors)
	}
}

func TestResolveColorUnknownTokenPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown token")
		}
	}()
	ResolveColor(DarkTheme, Token("border"), Interaction{})
}

func TestTokenClassification(t *testing.T) {
	for _, token := range Tokens() {
		if !token.Valid() {
			t.Errorf("%s should be valid", token)
		}
	}
	if Token("border").Valid() {
		t.Error("border should not be valid")
	}
	if !TokenText.Interactive() || !TokenTimestamp.Interactive() || TokenTextPrimary.Interactive() {
		t.Error("unexpected interactive classification")
	}
}

func TestInteractiveResolutionIsPerInstance_PropertyBased(t *testing.T) {
	ids := DefaultCatalog().IDs()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("toggling one instance never changes another", prop.ForAll(
		func(idx int, a, b bool) bool {
			scheme := SchemeFor(DefaultCatalog().Lookup(ids[idx]))
			instanceA := Interaction{Selected: a}
			instanceB := Interaction{Selected: b}

			before := scheme.Color(TokenText, instanceB)
			instanceA.Selected = !instanceA.Selected
			_ = scheme.Color(TokenText, instanceA)
			return scheme.Color(TokenText, instanceB) == before
		},
		gen.IntRange(0, len(ids)-1),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("selected resolves to textPrimary, unselected to textSecondary", prop.ForAll(
		func(idx int, selected bool) bool {
			theme := DefaultCatalog().Lookup(ids[idx])
			got := ResolveColor(theme, TokenText, Interaction{Selected: selected})
			if selected {
				return got == theme.Tokens.TextPrimary
			}
			return got == theme.Tokens.TextSecondary
		},
		gen.IntRange(0, len(ids)-1),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
