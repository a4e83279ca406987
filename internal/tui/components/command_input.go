package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// CommandPlaceholder is shown while the input is not focused.
const CommandPlaceholder = "Command"

// focusBorder outlines the input while it has focus.
const focusBorder = lipgloss.Color("#57534e")

// CommandInput is the single-line command bar. It is hidden on mobile.
type CommandInput struct {
	input textinput.Model
}

// NewCommandInput creates an unfocused command bar.
func NewCommandInput() *CommandInput {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = CommandPlaceholder
	input.CharLimit = 512
	return &CommandInput{input: input}
}

// Focus gives the input keyboard focus.
func (c *CommandInput) Focus() tea.Cmd {
	c.input.Placeholder = ""
	return c.input.Focus()
}

// Blur removes keyboard focus.
func (c *CommandInput) Blur() {
	c.input.Placeholder = CommandPlaceholder
	c.input.Blur()
}

// Focused reports whether the input has focus.
func (c *CommandInput) Focused() bool {
	return c.input.Focused()
}

// Update forwards msg to the underlying text input.
func (c *CommandInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// Value returns the current text.
func (c *CommandInput) Value() string {
	return c.input.Value()
}

// SetValue replaces the current text.
func (c *CommandInput) SetValue(value string) {
	c.input.SetValue(value)
}

// Reset clears the text.
func (c *CommandInput) Reset() {
	c.input.Reset()
}

// View renders the command bar with the scheme's input colors.
func (c *CommandInput) View(styleSet styles.Styles, mobile bool, width int) string {
	if mobile {
		return ""
	}
	if width < 10 {
		width = 10
	}

	c.input.Width = width - 4
	c.input.TextStyle = styleSet.Input
	c.input.PlaceholderStyle = styleSet.Placeholder.Background(styleSet.Input.GetBackground())

	box := styleSet.Input.
		Width(width - 2).
		Align(lipgloss.Center).
		Border(lipgloss.HiddenBorder())
	if c.input.Focused() {
		box = box.Border(lipgloss.NormalBorder()).BorderForeground(focusBorder)
	}
	return box.Render(c.input.View())
}
