package styles

import (
	"errors"
	"fmt"
)

// Catalog errors.
var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrInvalidTheme = errors.New("invalid theme")
)

// UnknownThemeError is returned when a theme id is not registered.
type UnknownThemeError struct {
	ID string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownTheme, e.ID)
}

// Is lets errors.Is(err, ErrUnknownTheme) match.
func (e *UnknownThemeError) Is(target error) bool {
	return target == ErrUnknownTheme
}

// Catalog is an immutable set of themes keyed by id.
type Catalog struct {
	themes    map[string]Theme
	order     []string
	defaultID string
}

// CatalogOption customizes catalog construction.
type CatalogOption func(*Catalog)

// WithDefault selects the fallback theme. It must name a registered theme.
func WithDefault(id string) CatalogOption {
	return func(c *Catalog) {
		c.defaultID = id
	}
}

// NewCatalog registers themes in order. The first theme is the default
// unless WithDefault says otherwise.
func NewCatalog(themes []Theme, opts ...CatalogOption) (*Catalog, error) {
	if len(themes) == 0 {
		return nil, fmt.Errorf("%w: catalog needs at least one theme", ErrInvalidTheme)
	}

	c := &Catalog{
		themes: make(map[string]Theme, len(themes)),
		order:  make([]string, 0, len(themes)),
	}
	for _, theme := range themes {
		if err := theme.validate(); err != nil {
			return nil, err
		}
		if _, exists := c.themes[theme.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate theme id %q", ErrInvalidTheme, theme.ID)
		}
		c.themes[theme.ID] = theme
		c.order = append(c.order, theme.ID)
	}
	c.defaultID = c.order[0]

	for _, opt := range opts {
		opt(c)
	}
	if _, ok := c.themes[c.defaultID]; !ok {
		return nil, fmt.Errorf("default theme: %w", &UnknownThemeError{ID: c.defaultID})
	}
	return c, nil
}

// MustCatalog is NewCatalog for statically defined presets.
func MustCatalog(themes []Theme, opts ...CatalogOption) *Catalog {
	c, err := NewCatalog(themes, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = MustCatalog(
	[]Theme{LightTheme, DarkTheme, UbuntuTheme, DraculaTheme},
	WithDefault(DarkTheme.ID),
)

// DefaultCatalog returns the built-in presets.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Get returns the theme registered under id.
func (c *Catalog) Get(id string) (Theme, error) {
	theme, ok := c.themes[id]
	if !ok {
		return Theme{}, &UnknownThemeError{ID: id}
	}
	return theme, nil
}

// Lookup returns the theme registered under id, or the default theme.
func (c *Catalog) Lookup(id string) Theme {
	if theme, ok := c.themes[id]; ok {
		return theme
	}
	return c.themes[c.defaultID]
}

// Has reports whether id is registered.
func (c *Catalog) Has(id string) bool {
	_, ok := c.themes[id]
	return ok
}

// Default returns the fallback theme.
func (c *Catalog) Default() Theme {
	return c.themes[c.defaultID]
}

// IDs lists theme ids in registration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Len returns the number of registered themes.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Next returns the id registered after id, wrapping at the end.
// Unknown ids yield the first registered theme.
func (c *Catalog) Next(id string) string {
	for i, candidate := range c.order {
		if candidate == id {
			return c.order[(i+1)%len(c.order)]
		}
	}
	return c.order[0]
}
