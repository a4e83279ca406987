package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

func newTranscript(n int) *ChatTranscript {
	v := NewChatTranscript()
	now := time.Now()
	for i := 0; i < n; i++ {
		v.Append(NewChatMessage(ChatSourceUser, fmt.Sprintf("message %d", i), now))
	}
	return v
}

func TestChatTranscriptSelectionIsExclusive(t *testing.T) {
	v := newTranscript(3)

	v.Select(1)
	if !v.Messages[1].Selected() || v.Messages[0].Selected() || v.Messages[2].Selected() {
		t.Fatal("only message 1 should be selected")
	}

	v.MoveCursor(1)
	if v.Cursor != 2 || v.Messages[1].Selected() || !v.Messages[2].Selected() {
		t.Fatalf("expected cursor on 2, got %d", v.Cursor)
	}

	v.ClearSelection()
	if v.Cursor != -1 || v.Messages[2].Selected() {
		t.Fatal("selection should be cleared")
	}
}

func TestChatTranscriptMoveCursorFromNothing(t *testing.T) {
	v := newTranscript(4)
	v.MoveCursor(-1)
	if v.Cursor != 3 {
		t.Fatalf("expected newest message selected, got %d", v.Cursor)
	}
	v.MoveCursor(-10)
	if v.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", v.Cursor)
	}
}

func TestChatTranscriptMaxMessages(t *testing.T) {
	v := newTranscript(0)
	v.SetMaxMessages(2)
	now := time.Now()
	for _, content := range []string{"one", "two", "three"} {
		v.Append(NewChatMessage(ChatSourceUser, content, now))
	}
	if len(v.Messages) != 2 || v.Messages[0].Content != "two" || v.Messages[1].Content != "three" {
		t.Fatalf("unexpected messages after trim: %d", len(v.Messages))
	}
}

func TestChatTranscriptScrollFollowsAppend(t *testing.T) {
	v := newTranscript(0)
	v.Height = 2
	now := time.Now()
	for i := 0; i < 5; i++ {
		v.Append(NewChatMessage(ChatSourceUser, "x", now))
	}
	if v.ScrollOffset != 3 {
		t.Fatalf("expected ScrollOffset 3, got %d", v.ScrollOffset)
	}
	v.Select(0)
	if v.ScrollOffset != 0 {
		t.Fatalf("selecting the first message should scroll to it, got %d", v.ScrollOffset)
	}
}

func TestChatTranscriptSearch(t *testing.T) {
	v := newTranscript(5)
	v.SetSearch("message 3")
	if v.SearchHitCount() != 1 || v.Cursor != 3 {
		t.Fatalf("expected a single hit on 3, got %d hits cursor %d", v.SearchHitCount(), v.Cursor)
	}
	v.ClearSearch()
	if v.SearchHitCount() != 0 {
		t.Fatal("search should be cleared")
	}
}

func TestChatTranscriptRenderEmpty(t *testing.T) {
	out := NewChatTranscript().Render(styles.DefaultStyles(), time.Now())
	if !strings.Contains(out, "No messages yet") {
		t.Fatalf("expected empty state, got %q", out)
	}
}

func TestChatTranscriptRenderIndicator(t *testing.T) {
	v := newTranscript(8)
	v.Height = 3
	v.ScrollToBottom()
	out := v.Render(styles.DefaultStyles(), time.Now())
	if !strings.Contains(out, "6-8 of 8") || !strings.Contains(out, "message 7") {
		t.Fatalf("unexpected render: %q", out)
	}
	if strings.Contains(out, "message 0") {
		t.Fatal("scrolled-out messages should not render")
	}
}
