// Package binding connects views to the UI store: it re-resolves the colors
// a view needs whenever the store changes or the view's own interaction
// state changes.
package binding

import (
	"maps"
	"sync"

	"github.com/opencode-ai/nexus/internal/store"
	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// Colors maps tokens to resolved colors for one element.
type Colors map[styles.Token]styles.Color

// UseResolvedColors resolves tokens against the current store snapshot.
func UseResolvedColors(s *store.Store, tokens []styles.Token, local styles.Interaction) Colors {
	return s.Scheme().Resolve(tokens, local)
}

// Binding keeps one element's colors current.
type Binding struct {
	store    *store.Store
	tokens   []styles.Token
	onChange func(Colors)

	mu          sync.Mutex
	local       styles.Interaction
	scheme      styles.Scheme
	colors      Colors
	unsubscribe func()
}

// Bind subscribes to s and resolves tokens immediately. onChange, if not
// nil, runs after every re-resolution.
func Bind(s *store.Store, tokens []styles.Token, onChange func(Colors)) *Binding {
	for _, token := range tokens {
		if !token.Valid() {
			panic("binding: unknown token " + string(token))
		}
	}
	b := &Binding{
		store:    s,
		tokens:   append([]styles.Token(nil), tokens...),
		onChange: onChange,
	}
	b.mu.Lock()
	b.scheme = s.Scheme()
	b.colors = b.scheme.Resolve(b.tokens, b.local)
	b.mu.Unlock()

	b.unsubscribe = s.Subscribe(func(state store.State) {
		b.refresh(state.Scheme(s.Catalog()))
	})
	return b
}

// SetLocal updates the element's interaction state. Colors are
// re-resolved only when it actually changes.
func (b *Binding) SetLocal(local styles.Interaction) {
	b.mu.Lock()
	if b.local == local {
		b.mu.Unlock()
		return
	}
	b.local = local
	b.mu.Unlock()
	b.refresh(b.store.Scheme())
}

// Local returns the element's interaction state.
func (b *Binding) Local() styles.Interaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.local
}

// Colors returns a copy of the last resolved colors.
func (b *Binding) Colors() Colors {
	b.mu.Lock()
	defer b.mu.Unlock()
	return maps.Clone(b.colors)
}

// Scheme returns the scheme the current colors were resolved against.
func (b *Binding) Scheme() styles.Scheme {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scheme
}

// Close detaches the binding from the store. It is safe to call twice.
func (b *Binding) Close() {
	b.unsubscribe()
}

func (b *Binding) refresh(scheme styles.Scheme) {
	b.mu.Lock()
	b.scheme = scheme
	b.colors = scheme.Resolve(b.tokens, b.local)
	colors := maps.Clone(b.colors)
	b.mu.Unlock()

	if b.onChange != nil {
		b.onChange(colors)
	}
}
