package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Lipgloss converts c for rendering. lipgloss understands hex and ANSI
// numbers only, so css-like hsl() and rgb() values are converted to hex.
// Anything unparseable is passed through unchanged and renders uncolored.
func (c Color) Lipgloss() lipgloss.Color {
	value := strings.ToLower(strings.TrimSpace(string(c)))
	switch {
	case strings.HasPrefix(value, "hsl("):
		args, ok := cssArgs(value, "hsl(")
		if !ok {
			break
		}
		return lipgloss.Color(colorful.Hsl(args[0], args[1]/100, args[2]/100).Clamped().Hex())
	case strings.HasPrefix(value, "rgb("):
		args, ok := cssArgs(value, "rgb(")
		if !ok {
			break
		}
		return lipgloss.Color(colorful.Color{R: args[0] / 255, G: args[1] / 255, B: args[2] / 255}.Clamped().Hex())
	}
	return lipgloss.Color(c)
}

// cssArgs parses the three comma separated numbers of a css color
// function, ignoring percent signs.
func cssArgs(value, prefix string) ([3]float64, bool) {
	var out [3]float64
	if !strings.HasSuffix(value, ")") {
		return out, false
	}
	parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(value, prefix), ")"), ",")
	if len(parts) != 3 {
		return out, false
	}
	for i, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(part), "%"), 64)
		if err != nil {
			return out, false
		}
		out[i] = n
	}
	return out, true
}
