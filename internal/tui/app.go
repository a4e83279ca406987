// Package tui implements the Nexus chat terminal user interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/nexus/internal/store"
	"github.com/opencode-ai/nexus/internal/tui/binding"
	"github.com/opencode-ai/nexus/internal/tui/components"
	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// InputFocusFlag is the transient store flag that tracks command input focus.
const InputFocusFlag = "command-input/focused"

const (
	// Terminals narrower than this are treated as mobile.
	mobileBreakpoint   = 80
	minHeight          = 10
	defaultMaxMessages = 500
	chromeLines        = 8
	linesPerMessage    = 3
)

// Config configures the TUI.
type Config struct {
	Catalog  *styles.Catalog
	Theme    string
	DarkMode store.DarkModeOverride
	// Device pins the device class. Nil derives it from the terminal width.
	Device      *store.DeviceClass
	MaxMessages int
	Logger      *zerolog.Logger
}

// Run launches the TUI with the default catalog.
func Run() error {
	return RunWithConfig(Config{})
}

// RunWithConfig launches the TUI and blocks until it exits.
func RunWithConfig(cfg Config) error {
	m := newModel(cfg)
	defer m.close()

	program := tea.NewProgram(m, tea.WithAltScreen())
	stop := binding.NotifyProgram(m.store, program)
	defer stop()

	_, err := program.Run()
	return err
}

// screenTokens are the colors the chrome around the transcript depends on.
var screenTokens = []styles.Token{
	styles.TokenBackground,
	styles.TokenInput,
	styles.TokenOverlay,
	styles.TokenAccent,
	styles.TokenTextPrimary,
	styles.TokenTextSecondary,
	styles.TokenPlaceholder,
}

type model struct {
	store  *store.Store
	logger zerolog.Logger
	screen *binding.Binding
	styles styles.Styles

	transcript  *components.ChatTranscript
	input       *components.CommandInput
	palette     *components.ThemePalette
	paletteOpen bool
	notice      string

	fixedDevice bool
	width       int
	height      int
	now         time.Time
}

func newModel(cfg Config) *model {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	maxMessages := cfg.MaxMessages
	if maxMessages <= 0 {
		maxMessages = defaultMaxMessages
	}

	m := &model{
		logger:     logger,
		transcript: components.NewChatTranscript(),
		input:      components.NewCommandInput(),
		now:        time.Now(),
	}
	opts := []store.Option{
		store.WithLogger(logger),
		store.WithTheme(cfg.Theme),
		store.WithDarkMode(cfg.DarkMode),
	}
	if cfg.Device != nil {
		m.fixedDevice = true
		opts = append(opts, store.WithDevice(*cfg.Device))
	}
	m.store = store.New(cfg.Catalog, opts...)
	m.palette = components.NewThemePalette(m.store.Catalog())
	m.screen = binding.Bind(m.store, screenTokens, func(colors binding.Colors) {
		m.styles = styles.BuildStylesWith(m.screen.Scheme(), colors)
	})
	m.styles = styles.BuildStylesWith(m.screen.Scheme(), m.screen.Colors())

	m.transcript.SetMaxMessages(maxMessages)
	m.transcript.Append(components.NewChatMessage(
		components.ChatSourceSystem,
		"Press tab to type. /themes lists themes, ctrl+t cycles them.",
		m.now,
	))
	return m
}

func (m *model) close() {
	m.screen.Close()
}

func (m *model) Init() tea.Cmd {
	return tickCmd()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, tea.Batch(cmd, m.syncFocus())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.transcript.Height = max(1, (msg.Height-chromeLines)/linesPerMessage)
		if !m.fixedDevice {
			m.store.SetDeviceClass(store.DeviceFromMobile(msg.Width < mobileBreakpoint))
		}
		return m, m.syncFocus()
	case binding.StoreChangedMsg:
		m.logger.Debug().
			Str("theme", msg.State.ActiveThemeID).
			Bool("input_focused", msg.State.Flag(InputFocusFlag)).
			Msg("store change delivered")
		return m, m.syncFocus()
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	}

	if m.input.Focused() {
		return m, m.input.Update(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+t":
		m.notice = ""
		m.store.CycleTheme()
		m.palette.Reset(m.store.State().ActiveThemeID)
		return nil
	case "ctrl+d":
		m.store.SetDarkModeOverride(m.store.State().DarkMode.Next())
		return nil
	}

	if m.paletteOpen {
		return m.handlePaletteKey(msg)
	}

	switch msg.String() {
	case "esc":
		if m.input.Focused() {
			m.store.ClearTransientFlag(InputFocusFlag)
			return nil
		}
		return tea.Quit
	case "tab":
		focused := m.store.State().Flag(InputFocusFlag)
		m.store.SetTransientFlag(InputFocusFlag, !focused)
		return nil
	case "up":
		m.transcript.MoveCursor(-1)
		return nil
	case "down":
		m.transcript.MoveCursor(1)
		return nil
	case "pgup":
		m.transcript.ScrollUp(m.transcript.Height)
		return nil
	case "pgdown":
		m.transcript.ScrollDown(m.transcript.Height)
		return nil
	case "ctrl+n":
		m.transcript.NextSearchHit()
		return nil
	}

	if m.input.Focused() {
		if msg.Type == tea.KeyEnter {
			value := m.input.Value()
			m.input.Reset()
			m.submit(value)
			if m.notice != "" {
				m.input.SetValue(value)
			}
			return nil
		}
		return m.input.Update(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "enter":
		m.transcript.ClearSelection()
	}
	return nil
}

func (m *model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.paletteOpen = false
	case tea.KeyUp:
		m.palette.Move(-1)
	case tea.KeyDown:
		m.palette.Move(1)
	case tea.KeyEnter:
		if item := m.palette.SelectedItem(); item != nil {
			m.applyTheme(item.ID)
		}
		m.paletteOpen = false
	case tea.KeyBackspace:
		if query := []rune(m.palette.Query); len(query) > 0 {
			m.palette.SetQuery(string(query[:len(query)-1]))
		}
	case tea.KeyRunes, tea.KeySpace:
		m.palette.SetQuery(m.palette.Query + string(msg.Runes))
	}
	return nil
}

// submit appends a user message or runs a slash command.
func (m *model) submit(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if strings.HasPrefix(value, "/") {
		m.runCommand(strings.Fields(value))
		return
	}
	m.notice = ""
	m.transcript.Append(components.NewChatMessage(components.ChatSourceUser, value, m.now))
}

func (m *model) runCommand(fields []string) {
	m.logger.Debug().Strs("args", fields).Msg("command")
	m.notice = ""

	switch fields[0] {
	case "/theme":
		if len(fields) != 2 {
			m.notice = "usage: /theme <id>"
			return
		}
		m.applyTheme(fields[1])
	case "/dark":
		if len(fields) != 2 {
			m.notice = "usage: /dark on|off|auto"
			return
		}
		override, err := store.ParseDarkMode(fields[1])
		if err != nil {
			m.notice = err.Error()
			return
		}
		m.store.SetDarkModeOverride(override)
	case "/search":
		query := strings.Join(fields[1:], " ")
		if query == "" {
			m.transcript.ClearSearch()
			return
		}
		m.transcript.SetSearch(query)
		if m.transcript.SearchHitCount() == 0 {
			m.notice = fmt.Sprintf("no messages match %q", query)
		}
	case "/themes":
		m.store.ClearTransientFlag(InputFocusFlag)
		m.palette.Reset(m.store.State().ActiveThemeID)
		m.palette.SetQuery(strings.Join(fields[1:], " "))
		m.paletteOpen = true
	default:
		m.notice = fmt.Sprintf("unknown command %s", fields[0])
	}
}

func (m *model) applyTheme(id string) {
	if err := m.store.SetActiveTheme(id); err != nil {
		m.notice = err.Error()
		return
	}
	m.palette.Reset(id)
}

// syncFocus makes the command input follow the store flag. The input is
// never focused on mobile, where it is hidden.
func (m *model) syncFocus() tea.Cmd {
	state := m.store.State()
	want := state.Flag(InputFocusFlag) && !state.Mobile()
	switch {
	case want && !m.input.Focused():
		return m.input.Focus()
	case !want && m.input.Focused():
		m.input.Blur()
	}
	return nil
}

func (m *model) View() string {
	if m.width > 0 && m.height > 0 && m.height < minHeight {
		return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
	}

	state := m.store.State()
	lines := []string{
		m.styles.Title.Render("nexus") + "  " + components.RenderStatusBar(m.styles, state),
		"",
	}

	if m.paletteOpen {
		lines = append(lines, m.palette.Render(m.styles)...)
	} else {
		lines = append(lines, m.transcript.Render(m.styles, m.now))
	}

	if m.notice != "" {
		lines = append(lines, "", components.RenderNotice(m.styles, "%s", m.notice))
	}
	if input := m.input.View(m.styles, state.Mobile(), m.width); input != "" {
		lines = append(lines, "", input)
	}
	lines = append(lines, "", m.styles.Muted.Render(m.helpLine(state)))

	content := joinLines(lines)
	if m.width > 0 && m.height > 0 {
		return m.styles.Screen.Width(m.width).Height(m.height).Render(content)
	}
	return content + "\n"
}

func (m *model) helpLine(state store.State) string {
	if state.Mobile() {
		return "ctrl+t theme | ctrl+d dark | q quit"
	}
	return "tab input | up/down select | ctrl+t theme | ctrl+d dark | /themes | /search, ctrl+n next | esc quit"
}

func (m *model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %d rows.", minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
