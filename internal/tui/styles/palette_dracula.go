package styles

// DraculaTheme uses the Dracula background for every surface.
var DraculaTheme = Theme{
	ID:     "dracula",
	IsDark: true,
	Tokens: ThemeTokens{
		Background:    "#282a36",
		Input:         "#282a36",
		Overlay:       "#282a36",
		Accent:        "#282a36",
		TextPrimary:   "#ffffff",
		TextSecondary: "#09090b",
	},
}
