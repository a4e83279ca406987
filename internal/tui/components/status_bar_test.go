package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/nexus/internal/store"
	"github.com/opencode-ai/nexus/internal/tui/styles"
)

func TestRenderStatusBar(t *testing.T) {
	s := store.New(styles.DefaultCatalog(), store.WithTheme("light"))
	s.SetDarkModeOverride(store.DarkModeOn)
	s.SetDeviceClass(store.DeviceMobile)

	out := RenderStatusBar(styles.BuildStyles(s.Scheme()), s.State())
	for _, want := range []string{"light", "dark (forced)", "mobile"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestRenderNotice(t *testing.T) {
	out := RenderNotice(styles.DefaultStyles(), "unknown theme %q", "nope")
	if !strings.Contains(out, `unknown theme "nope"`) {
		t.Fatalf("unexpected notice: %q", out)
	}
}
