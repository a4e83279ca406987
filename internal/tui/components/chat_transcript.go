package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// ChatTranscript displays a scrollable list of chat messages with a
// keyboard selection cursor.
type ChatTranscript struct {
	Messages     []*ChatMessage
	ScrollOffset int
	Height       int // visible messages
	Cursor       int // -1 when nothing is selected
	SearchQuery  string
	SearchIndex  int
	maxMessages  int
	searchHits   []int
}

// NewChatTranscript creates an empty transcript.
func NewChatTranscript() *ChatTranscript {
	return &ChatTranscript{
		Height: 5,
		Cursor: -1,
	}
}

// SetMaxMessages caps the transcript length; older messages are dropped.
// Zero disables the cap.
func (v *ChatTranscript) SetMaxMessages(limit int) {
	if limit < 0 {
		limit = 0
	}
	v.maxMessages = limit
	v.trim()
}

// Append adds a message and keeps the newest messages in view.
func (v *ChatTranscript) Append(msg *ChatMessage) {
	v.Messages = append(v.Messages, msg)
	v.trim()
	v.ScrollToBottom()
	v.updateSearchHits()
}

// Select moves the cursor to idx. Only the previously selected message and
// the newly selected one change their interaction state.
func (v *ChatTranscript) Select(idx int) {
	if idx < 0 || idx >= len(v.Messages) {
		v.ClearSelection()
		return
	}
	if current := v.SelectedMessage(); current != nil {
		current.SetSelected(false)
	}
	v.Cursor = idx
	v.Messages[idx].SetSelected(true)
	v.scrollToMessage(idx)
}

// MoveCursor shifts the selection by delta, starting from the newest
// message when nothing is selected.
func (v *ChatTranscript) MoveCursor(delta int) {
	if len(v.Messages) == 0 {
		return
	}
	idx := v.Cursor
	if idx < 0 {
		idx = len(v.Messages)
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(v.Messages) {
		idx = len(v.Messages) - 1
	}
	v.Select(idx)
}

// ClearSelection deselects the current message.
func (v *ChatTranscript) ClearSelection() {
	if current := v.SelectedMessage(); current != nil {
		current.SetSelected(false)
	}
	v.Cursor = -1
}

// SelectedMessage returns the selected message or nil.
func (v *ChatTranscript) SelectedMessage() *ChatMessage {
	if v.Cursor < 0 || v.Cursor >= len(v.Messages) {
		return nil
	}
	return v.Messages[v.Cursor]
}

// ScrollUp scrolls the view up by n messages.
func (v *ChatTranscript) ScrollUp(n int) {
	v.ScrollOffset -= n
	v.clampScroll()
}

// ScrollDown scrolls the view down by n messages.
func (v *ChatTranscript) ScrollDown(n int) {
	v.ScrollOffset += n
	v.clampScroll()
}

// ScrollToBottom scrolls to the newest message.
func (v *ChatTranscript) ScrollToBottom() {
	maxOffset := len(v.Messages) - v.visibleMessages()
	if maxOffset < 0 {
		maxOffset = 0
	}
	v.ScrollOffset = maxOffset
}

// SetSearch sets the search query and selects the first match.
func (v *ChatTranscript) SetSearch(query string) {
	v.SearchQuery = query
	v.SearchIndex = 0
	v.updateSearchHits()
	if len(v.searchHits) > 0 {
		v.Select(v.searchHits[0])
	}
}

// ClearSearch clears the search.
func (v *ChatTranscript) ClearSearch() {
	v.SearchQuery = ""
	v.SearchIndex = 0
	v.searchHits = nil
}

// NextSearchHit selects the next matching message.
func (v *ChatTranscript) NextSearchHit() {
	if len(v.searchHits) == 0 {
		return
	}
	v.SearchIndex = (v.SearchIndex + 1) % len(v.searchHits)
	v.Select(v.searchHits[v.SearchIndex])
}

// SearchHitCount returns the number of matching messages.
func (v *ChatTranscript) SearchHitCount() int {
	return len(v.searchHits)
}

// Render renders the visible part of the transcript.
func (v *ChatTranscript) Render(styleSet styles.Styles, now time.Time) string {
	if len(v.Messages) == 0 {
		return EmptyChat().Render(styleSet)
	}

	end := v.ScrollOffset + v.visibleMessages()
	if end > len(v.Messages) {
		end = len(v.Messages)
	}

	rendered := make([]string, 0, end-v.ScrollOffset+1)
	for i := v.ScrollOffset; i < end; i++ {
		rendered = append(rendered, v.Messages[i].Render(styleSet, now))
	}
	if info := v.scrollIndicator(styleSet); info != "" {
		rendered = append(rendered, info)
	}
	return strings.Join(rendered, "\n")
}

func (v *ChatTranscript) scrollIndicator(styleSet styles.Styles) string {
	total := len(v.Messages)
	visible := v.visibleMessages()
	if total <= visible && v.SearchQuery == "" {
		return ""
	}

	end := v.ScrollOffset + visible
	if end > total {
		end = total
	}
	info := fmt.Sprintf("─── %d-%d of %d ───", v.ScrollOffset+1, end, total)
	if v.SearchQuery != "" {
		info = fmt.Sprintf("─── %d-%d of %d | /%s %d match(es) ───", v.ScrollOffset+1, end, total, v.SearchQuery, len(v.searchHits))
	}
	return styleSet.Muted.Render(info)
}

func (v *ChatTranscript) trim() {
	if v.maxMessages == 0 || len(v.Messages) <= v.maxMessages {
		return
	}
	drop := len(v.Messages) - v.maxMessages
	v.Messages = append([]*ChatMessage(nil), v.Messages[drop:]...)
	if v.Cursor >= 0 {
		v.Cursor -= drop
		if v.Cursor < 0 {
			v.Cursor = -1
		}
	}
	v.ScrollOffset -= drop
	v.clampScroll()
}

func (v *ChatTranscript) updateSearchHits() {
	v.searchHits = nil
	if v.SearchQuery == "" {
		return
	}
	query := strings.ToLower(v.SearchQuery)
	for i, msg := range v.Messages {
		if strings.Contains(strings.ToLower(msg.Content), query) {
			v.searchHits = append(v.searchHits, i)
		}
	}
}

func (v *ChatTranscript) scrollToMessage(idx int) {
	visible := v.visibleMessages()
	if idx < v.ScrollOffset {
		v.ScrollOffset = idx
	} else if idx >= v.ScrollOffset+visible {
		v.ScrollOffset = idx - visible + 1
	}
	v.clampScroll()
}

func (v *ChatTranscript) visibleMessages() int {
	if v.Height < 1 {
		return 1
	}
	return v.Height
}

func (v *ChatTranscript) clampScroll() {
	maxOffset := len(v.Messages) - v.visibleMessages()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.ScrollOffset > maxOffset {
		v.ScrollOffset = maxOffset
	}
	if v.ScrollOffset < 0 {
		v.ScrollOffset = 0
	}
}
