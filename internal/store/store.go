package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// Subscriber is invoked with the new snapshot after a state change.
type Subscriber func(State)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithTheme selects the initial theme. Unknown ids fall back to the
// catalog default.
func WithTheme(id string) Option {
	return func(s *Store) {
		s.initialTheme = id
	}
}

// WithDarkMode sets the initial dark-mode override.
func WithDarkMode(override DarkModeOverride) Option {
	return func(s *Store) {
		s.state.DarkMode = override
	}
}

// WithDevice sets the initial device class.
func WithDevice(device DeviceClass) Option {
	return func(s *Store) {
		s.state.Device = device
	}
}

type subscription struct {
	id string
	fn Subscriber
}

// Store owns the UI state. All writes go through its action methods. Each
// state-changing action queues its snapshot and notifies subscribers, in
// subscription order, before returning. A mutation made while a round is
// being delivered (from a subscriber or another goroutine) is delivered by
// that round once the current snapshot has reached every subscriber, so
// snapshots are always observed in commit order.
type Store struct {
	catalog      *styles.Catalog
	logger       zerolog.Logger
	initialTheme string

	mu          sync.Mutex
	state       State
	subscribers []subscription
	pending     []State
	dispatching bool
}

// New creates a store over catalog. The initial state uses the catalog
// default theme, the desktop device class and no override.
func New(catalog *styles.Catalog, opts ...Option) *Store {
	if catalog == nil {
		catalog = styles.DefaultCatalog()
	}
	s := &Store{
		catalog: catalog,
		logger:  zerolog.Nop(),
		state: State{
			ActiveThemeID: catalog.Default().ID,
			DarkMode:      DarkModeFollowTheme,
			Device:        DeviceDesktop,
			flags:         map[string]bool{},
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.initialTheme != "" {
		if catalog.Has(s.initialTheme) {
			s.state.ActiveThemeID = s.initialTheme
		} else {
			s.logger.Warn().
				Str("theme", s.initialTheme).
				Str("fallback", s.state.ActiveThemeID).
				Msg("unknown initial theme, using default")
		}
	}
	if !s.state.DarkMode.valid() {
		panic("store: invalid initial dark mode override")
	}
	if !validDevice(s.state.Device) {
		panic("store: invalid initial device class")
	}
	return s
}

// Catalog returns the catalog the store validates against.
func (s *Store) Catalog() *styles.Catalog {
	return s.catalog
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Theme returns the active theme.
func (s *Store) Theme() styles.Theme {
	return s.catalog.Lookup(s.State().ActiveThemeID)
}

// Scheme returns the active theme with the dark-mode override applied.
func (s *Store) Scheme() styles.Scheme {
	return s.State().Scheme(s.catalog)
}

// SetActiveTheme switches the active theme. Unknown ids leave the state
// unchanged and return *styles.UnknownThemeError.
func (s *Store) SetActiveTheme(id string) error {
	if _, err := s.catalog.Get(id); err != nil {
		s.logger.Debug().Str("theme", id).Msg("rejected unknown theme")
		return err
	}
	s.update("theme", func(st *State) bool {
		if st.ActiveThemeID == id {
			return false
		}
		st.ActiveThemeID = id
		return true
	})
	return nil
}

// CycleTheme activates the theme registered after the current one and
// returns its id.
func (s *Store) CycleTheme() string {
	next := s.catalog.Next(s.State().ActiveThemeID)
	// next always comes from the catalog.
	_ = s.SetActiveTheme(next)
	return next
}

// SetDarkModeOverride sets or clears (DarkModeFollowTheme) the override.
func (s *Store) SetDarkModeOverride(override DarkModeOverride) {
	if !override.valid() {
		panic("store: invalid dark mode override")
	}
	s.update("dark_mode", func(st *State) bool {
		if st.DarkMode == override {
			return false
		}
		st.DarkMode = override
		return true
	})
}

// SetDeviceClass records the device class. Repeating the current value
// does not notify.
func (s *Store) SetDeviceClass(device DeviceClass) {
	if !validDevice(device) {
		panic("store: invalid device class")
	}
	s.update("device", func(st *State) bool {
		if st.Device == device {
			return false
		}
		st.Device = device
		return true
	})
}

// SetTransientFlag sets a component-scoped flag. Keys are chosen by the
// caller and must be unique per UI element.
func (s *Store) SetTransientFlag(key string, value bool) {
	mustKey(key)
	s.update("flag", func(st *State) bool {
		if st.flags[key] == value {
			return false
		}
		if value {
			st.flags[key] = true
		} else {
			delete(st.flags, key)
		}
		return true
	})
}

// ClearTransientFlag removes a flag.
func (s *Store) ClearTransientFlag(key string) {
	s.SetTransientFlag(key, false)
}

// Subscribe registers fn and returns a function that removes it. The
// returned function may be called any number of times.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	if fn == nil {
		panic("store: nil subscriber")
	}
	id := uuid.New().String()

	s.mu.Lock()
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.remove(id)
		})
	}
}

// Subscribers returns the number of registered subscribers.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

func (s *Store) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subscribers {
		if sub.id == id {
			s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
			return
		}
	}
}

// update applies mutate under the lock and, when it reports a change,
// queues the new snapshot for delivery.
func (s *Store) update(action string, mutate func(*State) bool) {
	s.mu.Lock()
	if !mutate(&s.state) {
		s.mu.Unlock()
		return
	}
	snapshot := s.state.clone()
	s.pending = append(s.pending, snapshot)
	queued := len(s.pending)
	nested := s.dispatching
	s.dispatching = true
	s.mu.Unlock()

	s.logger.Debug().
		Str("action", action).
		Str("theme", snapshot.ActiveThemeID).
		Stringer("dark_mode", snapshot.DarkMode).
		Stringer("device", snapshot.Device).
		Int("queued", queued).
		Msg("ui state changed")

	if nested {
		return
	}
	s.drain()
}

// drain delivers queued snapshots in FIFO order until the queue is empty.
// Only one drain runs at a time, so subscribers are never called
// concurrently.
func (s *Store) drain() {
	defer func() {
		if recovered := recover(); recovered != nil {
			s.mu.Lock()
			s.pending = nil
			s.dispatching = false
			s.mu.Unlock()
			panic(recovered)
		}
	}()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.dispatching = false
			s.mu.Unlock()
			return
		}
		snapshot := s.pending[0]
		s.pending = s.pending[1:]
		subscribers := make([]subscription, len(s.subscribers))
		copy(subscribers, s.subscribers)
		s.mu.Unlock()

		for _, sub := range subscribers {
			sub.fn(snapshot)
		}
	}
}

func validDevice(device DeviceClass) bool {
	return device == DeviceDesktop || device == DeviceMobile
}

func mustKey(key string) {
	if key == "" {
		panic("store: transient flag key must not be empty")
	}
}
