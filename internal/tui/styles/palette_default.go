package styles

// DefaultTheme is the baseline palette.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Text:      "#E6EDF3",
		TextMuted: "#8B9AAE",
		Border:    "#223043",
		Accent:    "#5B8DEF",
		Track:     "#2D3B4F",
		Fill:      "#3FB950",
		Paused:    "#D29922",
		Error:     "#F85149",
	},
}
