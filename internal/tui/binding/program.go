package binding

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/nexus/internal/store"
)

// StoreChangedMsg carries a new UI state snapshot into the TUI. Messages
// may arrive out of order; handlers should re-read the store when they
// need the latest state.
type StoreChangedMsg struct {
	State store.State
}

// Sender is the part of *tea.Program the notifier needs.
type Sender interface {
	Send(msg tea.Msg)
}

// storeSubscriber bridges the store to a running program.
type storeSubscriber struct {
	program Sender
}

// onStateChange runs on whichever goroutine mutated the store, which is
// usually the program's own update loop, so the send must not block it.
func (s *storeSubscriber) onStateChange(state store.State) {
	if s.program != nil {
		go s.program.Send(StoreChangedMsg{State: state})
	}
}

// NotifyProgram forwards every store change to program as a
// StoreChangedMsg. The returned function stops forwarding.
func NotifyProgram(s *store.Store, program Sender) (stop func()) {
	subscriber := &storeSubscriber{program: program}
	return s.Subscribe(subscriber.onStateChange)
}
