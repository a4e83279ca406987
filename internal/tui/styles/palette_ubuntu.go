package styles

// UbuntuTheme paints every surface in Ubuntu orange.
var UbuntuTheme = Theme{
	ID:     "ubuntu",
	IsDark: true,
	Tokens: ThemeTokens{
		Background:    "#dd4814",
		Input:         "#dd4814",
		Overlay:       "#dd4814",
		Accent:        "#dd4814",
		TextPrimary:   "#ffffff",
		TextSecondary: "#09090b",
	},
}
