package styles

// LightTheme is the default light palette.
var LightTheme = Theme{
	ID:     "light",
	IsDark: false,
	Tokens: ThemeTokens{
		Background:    "hsl(0, 0%, 51%)", // rendered as #828282, see Color.Lipgloss
		Input:         "#646464",
		Overlay:       "#656565",
		Accent:        "#ffffff",
		TextPrimary:   "#000000",
		TextSecondary: "#151515",
	},
}
