package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// ChatSource identifies who wrote a message.
type ChatSource string

const (
	ChatSourceUser      ChatSource = "user"
	ChatSourceAssistant ChatSource = "assistant"
	ChatSourceSystem    ChatSource = "system"
)

var chatMessageTokens = []styles.Token{
	styles.TokenOverlay,
	styles.TokenText,
	styles.TokenTimestamp,
}

// ChatMessage is one entry in the chat transcript. Its selection state is
// private to the message.
type ChatMessage struct {
	Key       string
	Source    ChatSource
	Content   string
	Timestamp time.Time

	local styles.Interaction
}

// NewChatMessage creates a message with a fresh key.
func NewChatMessage(source ChatSource, content string, ts time.Time) *ChatMessage {
	return &ChatMessage{
		Key:       uuid.New().String(),
		Source:    source,
		Content:   content,
		Timestamp: ts,
	}
}

// SetSelected toggles the message's own interaction state.
func (m *ChatMessage) SetSelected(selected bool) {
	m.local.Selected = selected
}

// Selected reports whether the message is selected.
func (m *ChatMessage) Selected() bool {
	return m.local.Selected
}

// Colors resolves the message colors for its current interaction state.
func (m *ChatMessage) Colors(scheme styles.Scheme) map[styles.Token]styles.Color {
	return scheme.Resolve(chatMessageTokens, m.local)
}

// Render draws the message bubble: a small timestamp line above the content.
func (m *ChatMessage) Render(styleSet styles.Styles, now time.Time) string {
	colors := m.Colors(styleSet.Scheme)
	overlay := colors[styles.TokenOverlay].Lipgloss()

	stamp := lipgloss.NewStyle().
		Foreground(colors[styles.TokenTimestamp].Lipgloss()).
		Background(overlay).
		Faint(true)
	text := lipgloss.NewStyle().
		Foreground(colors[styles.TokenText].Lipgloss()).
		Background(overlay)

	header := string(m.Source)
	if formatted := FormatTimestamp(m.Timestamp, now); formatted != "" {
		header += " · " + formatted
	}

	lines := []string{stamp.Render(header)}
	for _, line := range strings.Split(m.Content, "\n") {
		lines = append(lines, text.Render(line))
	}
	return styleSet.Bubble.Background(overlay).Render(strings.Join(lines, "\n"))
}
