package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColorLipgloss(t *testing.T) {
	tests := []struct {
		in   Color
		want lipgloss.Color
	}{
		{"#282a36", "#282a36"},
		{"hsl(0, 0%, 51%)", "#828282"},
		{"HSL(0, 100%, 50%)", "#ff0000"},
		{"rgb(255, 255, 255)", "#ffffff"},
		{"rgb(0, 128)", "rgb(0, 128)"},
		{"hsl(red, 0%, 0%)", "hsl(red, 0%, 0%)"},
		{"212", "212"},
	}
	for _, tt := range tests {
		if got := tt.in.Lipgloss(); got != tt.want {
			t.Errorf("Color(%q).Lipgloss() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLightBackgroundRendersAsHex(t *testing.T) {
	got := BuildStyles(SchemeFor(LightTheme)).Screen.GetBackground()
	if got != lipgloss.Color("#828282") {
		t.Fatalf("light background = %v, want #828282", got)
	}
}
