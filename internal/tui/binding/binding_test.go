package binding

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/nexus/internal/store"
	"github.com/opencode-ai/nexus/internal/tui/styles"
)

var messageTokens = []styles.Token{styles.TokenOverlay, styles.TokenText, styles.TokenTimestamp}

func TestUseResolvedColors(t *testing.T) {
	s := store.New(styles.DefaultCatalog(), store.WithTheme("dracula"))

	colors := UseResolvedColors(s, messageTokens, styles.Interaction{})
	require.Equal(t, styles.Color("#282a36"), colors[styles.TokenOverlay])
	require.Equal(t, styles.Color("#09090b"), colors[styles.TokenText])

	colors = UseResolvedColors(s, messageTokens, styles.Interaction{Selected: true})
	require.Equal(t, styles.Color("#ffffff"), colors[styles.TokenTimestamp])
}

func TestBindingFollowsStore(t *testing.T) {
	s := store.New(styles.DefaultCatalog(), store.WithTheme("light"))
	calls := 0
	b := Bind(s, messageTokens, func(Colors) { calls++ })
	defer b.Close()

	require.Equal(t, styles.LightTheme.Tokens.Overlay, b.Colors()[styles.TokenOverlay])

	require.NoError(t, s.SetActiveTheme("ubuntu"))
	require.Equal(t, 1, calls)
	require.Equal(t, styles.UbuntuTheme.Tokens.Overlay, b.Colors()[styles.TokenOverlay])
}

func TestBindingEndsOnRedirectedTheme(t *testing.T) {
	s := store.New(styles.DefaultCatalog(), store.WithTheme("dark"))
	s.Subscribe(func(state store.State) {
		if state.ActiveThemeID == "light" {
			require.NoError(t, s.SetActiveTheme("ubuntu"))
		}
	})
	b := Bind(s, messageTokens, nil)
	defer b.Close()

	require.NoError(t, s.SetActiveTheme("light"))
	require.Equal(t, "ubuntu", s.State().ActiveThemeID)
	require.Equal(t, styles.UbuntuTheme.Tokens.Overlay, b.Colors()[styles.TokenOverlay])
}

func TestBindingLocalStateIsPerInstance(t *testing.T) {
	s := store.New(styles.DefaultCatalog(), store.WithTheme("dracula"))
	a := Bind(s, messageTokens, nil)
	b := Bind(s, messageTokens, nil)
	defer a.Close()
	defer b.Close()

	a.SetLocal(styles.Interaction{Selected: true})
	require.Equal(t, styles.Color("#ffffff"), a.Colors()[styles.TokenText])
	require.Equal(t, styles.Color("#09090b"), b.Colors()[styles.TokenText])

	require.NoError(t, s.SetActiveTheme("light"))
	require.Equal(t, styles.LightTheme.Tokens.TextPrimary, a.Colors()[styles.TokenText])
	require.Equal(t, styles.LightTheme.Tokens.TextSecondary, b.Colors()[styles.TokenText])
	require.False(t, s.State().Flag("selected"), "local interaction must not reach the store")
}

func TestBindingSetLocalOnlyNotifiesOnChange(t *testing.T) {
	s := store.New(nil)
	calls := 0
	b := Bind(s, messageTokens, func(Colors) { calls++ })
	defer b.Close()

	b.SetLocal(styles.Interaction{})
	require.Zero(t, calls)
	b.SetLocal(styles.Interaction{Selected: true})
	require.Equal(t, 1, calls)
	require.True(t, b.Local().Selected)
}

func TestBindingClose(t *testing.T) {
	s := store.New(nil)
	calls := 0
	b := Bind(s, messageTokens, func(Colors) { calls++ })

	b.Close()
	require.NotPanics(t, b.Close)
	require.Zero(t, s.Subscribers())

	require.NoError(t, s.SetActiveTheme("ubuntu"))
	require.Zero(t, calls)
}

func TestBindingColorsIsACopy(t *testing.T) {
	s := store.New(nil)
	b := Bind(s, messageTokens, nil)
	defer b.Close()

	colors := b.Colors()
	colors[styles.TokenOverlay] = "#123456"
	require.NotEqual(t, styles.Color("#123456"), b.Colors()[styles.TokenOverlay])
}

func TestBindRejectsUnknownToken(t *testing.T) {
	s := store.New(nil)
	require.Panics(t, func() { Bind(s, []styles.Token{"border"}, nil) })
}

type fakeProgram struct {
	msgs chan tea.Msg
}

func (p *fakeProgram) Send(msg tea.Msg) {
	p.msgs <- msg
}

func TestNotifyProgram(t *testing.T) {
	s := store.New(nil)
	program := &fakeProgram{msgs: make(chan tea.Msg, 4)}
	stop := NotifyProgram(s, program)

	s.SetDeviceClass(store.DeviceMobile)
	select {
	case raw := <-program.msgs:
		msg, ok := raw.(StoreChangedMsg)
		require.True(t, ok)
		require.True(t, msg.State.Mobile())
	case <-time.After(time.Second):
		t.Fatal("expected a StoreChangedMsg")
	}

	stop()
	stop()
	require.Zero(t, s.Subscribers())
	s.SetDeviceClass(store.DeviceDesktop)
	select {
	case msg := <-program.msgs:
		t.Fatalf("unexpected message after stop: %#v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBindingSchemeTracksResolution(t *testing.T) {
	s := store.New(styles.DefaultCatalog(), store.WithTheme("light"))
	b := Bind(s, messageTokens, nil)
	defer b.Close()
	require.Equal(t, "light", b.Scheme().Theme.ID)
	require.False(t, b.Scheme().Dark)

	s.SetDarkModeOverride(store.DarkModeOn)
	require.True(t, b.Scheme().Dark)
	require.Equal(t, "light", b.Scheme().Theme.ID)
}
