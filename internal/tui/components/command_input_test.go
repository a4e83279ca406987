package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

func TestCommandInputHiddenOnMobile(t *testing.T) {
	c := NewCommandInput()
	if got := c.View(styles.DefaultStyles(), true, 80); got != "" {
		t.Fatalf("expected empty view on mobile, got %q", got)
	}
}

func TestCommandInputPlaceholderFollowsFocus(t *testing.T) {
	c := NewCommandInput()
	if !strings.Contains(c.View(styles.DefaultStyles(), false, 40), CommandPlaceholder) {
		t.Fatal("expected placeholder while blurred")
	}

	c.Focus()
	if !c.Focused() {
		t.Fatal("expected focus")
	}
	if strings.Contains(c.View(styles.DefaultStyles(), false, 40), CommandPlaceholder) {
		t.Fatal("placeholder should disappear while focused")
	}

	c.Blur()
	if c.Focused() {
		t.Fatal("expected blur")
	}
}

func TestCommandInputValue(t *testing.T) {
	c := NewCommandInput()
	c.SetValue("/theme dracula")
	if c.Value() != "/theme dracula" {
		t.Fatalf("unexpected value %q", c.Value())
	}
	c.Reset()
	if c.Value() != "" {
		t.Fatal("expected reset")
	}
}
