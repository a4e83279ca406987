// Package store holds the process-wide UI state: the active theme, the
// dark-mode override, the device class and component-scoped transient flags.
package store

import (
	"fmt"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// DarkModeOverride replaces the active theme's own dark flag when set.
type DarkModeOverride int

const (
	// DarkModeFollowTheme uses Theme.IsDark.
	DarkModeFollowTheme DarkModeOverride = iota
	DarkModeOn
	DarkModeOff
)

// DarkModeFromBool maps an optional bool onto an override; nil follows the theme.
func DarkModeFromBool(value *bool) DarkModeOverride {
	switch {
	case value == nil:
		return DarkModeFollowTheme
	case *value:
		return DarkModeOn
	default:
		return DarkModeOff
	}
}

// ParseDarkMode accepts "on", "off" and "auto".
func ParseDarkMode(value string) (DarkModeOverride, error) {
	switch value {
	case "on", "dark", "true":
		return DarkModeOn, nil
	case "off", "light", "false":
		return DarkModeOff, nil
	case "auto", "", "theme":
		return DarkModeFollowTheme, nil
	default:
		return DarkModeFollowTheme, fmt.Errorf("invalid dark mode %q (want on, off or auto)", value)
	}
}

// Apply returns the effective dark flag for a theme.
func (o DarkModeOverride) Apply(themeIsDark bool) bool {
	switch o {
	case DarkModeOn:
		return true
	case DarkModeOff:
		return false
	default:
		return themeIsDark
	}
}

// Next cycles follow-theme -> on -> off -> follow-theme.
func (o DarkModeOverride) Next() DarkModeOverride {
	switch o {
	case DarkModeFollowTheme:
		return DarkModeOn
	case DarkModeOn:
		return DarkModeOff
	default:
		return DarkModeFollowTheme
	}
}

func (o DarkModeOverride) String() string {
	switch o {
	case DarkModeOn:
		return "on"
	case DarkModeOff:
		return "off"
	case DarkModeFollowTheme:
		return "auto"
	default:
		return fmt.Sprintf("DarkModeOverride(%d)", int(o))
	}
}

func (o DarkModeOverride) valid() bool {
	return o == DarkModeFollowTheme || o == DarkModeOn || o == DarkModeOff
}

// DeviceClass distinguishes desktop and mobile layouts.
type DeviceClass int

const (
	DeviceDesktop DeviceClass = iota
	DeviceMobile
)

// DeviceFromMobile maps the opaque "is mobile" signal onto a device class.
func DeviceFromMobile(mobile bool) DeviceClass {
	if mobile {
		return DeviceMobile
	}
	return DeviceDesktop
}

func (d DeviceClass) String() string {
	switch d {
	case DeviceDesktop:
		return "desktop"
	case DeviceMobile:
		return "mobile"
	default:
		return fmt.Sprintf("DeviceClass(%d)", int(d))
	}
}

// State is an immutable snapshot of the UI state.
type State struct {
	ActiveThemeID string
	DarkMode      DarkModeOverride
	Device        DeviceClass

	flags map[string]bool
}

// Flag returns the transient flag for key; absent keys are false.
func (s State) Flag(key string) bool {
	return s.flags[key]
}

// Flags returns a copy of the transient flags.
func (s State) Flags() map[string]bool {
	out := make(map[string]bool, len(s.flags))
	for key, value := range s.flags {
		out[key] = value
	}
	return out
}

// Mobile reports whether the device class is mobile.
func (s State) Mobile() bool {
	return s.Device == DeviceMobile
}

// Scheme resolves the active theme in catalog and applies the override.
func (s State) Scheme(catalog *styles.Catalog) styles.Scheme {
	theme := catalog.Lookup(s.ActiveThemeID)
	return styles.Scheme{Theme: theme, Dark: s.DarkMode.Apply(theme.IsDark)}
}

func (s State) clone() State {
	s.flags = s.Flags()
	return s
}
