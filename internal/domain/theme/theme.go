// Package theme models the light/dark color scheme toggle.
package theme

import (
	"fmt"
	"strings"
)

// Theme is a color scheme.
type Theme string

// Color schemes.
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the preference key the theme is persisted under.
const StorageKey = "color-theme"

// Parse reads a stored preference. ok is false for anything but "light" or "dark".
func Parse(v string) (t Theme, ok bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(v))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Resolve picks the active theme: a stored preference wins, otherwise the
// OS preference decides.
func Resolve(stored string, prefersDark bool) Theme {
	if t, ok := Parse(stored); ok {
		return t
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Toggle flips t.
func Toggle(t Theme) Theme {
	switch t {
	case Light:
		return Dark
	case Dark:
		return Light
	}
	panic(fmt.Sprintf("theme: unknown theme %q", string(t)))
}

// Icons holds which toggle icon is hidden. The dark theme offers the light icon.
type Icons struct {
	DarkIconHidden  bool `json:"dark_icon_hidden"`
	LightIconHidden bool `json:"light_icon_hidden"`
}

// IconsFor returns the icon visibility for t.
func IconsFor(t Theme) Icons {
	if t == Dark {
		return Icons{DarkIconHidden: true, LightIconHidden: false}
	}
	return Icons{DarkIconHidden: false, LightIconHidden: true}
}
