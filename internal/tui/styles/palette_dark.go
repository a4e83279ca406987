package styles

// DarkTheme is the default dark palette and the catalog fallback.
var DarkTheme = Theme{
	ID:     "dark",
	IsDark: true,
	Tokens: ThemeTokens{
		Background:    "#18181b",
		Input:         "#000000",
		Overlay:       "#09090b",
		Accent:        "#000000",
		TextPrimary:   "#717571",
		TextSecondary: "#65658f",
	},
}
