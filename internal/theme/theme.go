// Package theme defines the editor's color profiles.
//
// Three named profiles exist for the lifetime of the process: Light and Dark
// are constants, Custom is mutable and persisted in the settings file. Every
// profile always carries all seven color fields.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTheme is returned when a theme name is outside {Light, Dark, Custom}.
var ErrUnknownTheme = errors.New("unknown theme")

// Name identifies one of the three theme profiles.
type Name int

const (
	Light Name = iota
	Dark
	Custom
)

var names = [...]string{Light: "Light", Dark: "Dark", Custom: "Custom"}

// Names lists every theme in display order.
func Names() []Name {
	return []Name{Light, Dark, Custom}
}

func (n Name) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// Valid reports whether n is one of the three known themes.
func (n Name) Valid() bool {
	return n >= Light && n <= Custom
}

// ParseName resolves a theme name case-insensitively.
func ParseName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(name, trimmed) {
			return Name(i), nil
		}
	}
	return Light, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Key names a single color field of a Profile. Values match the keys used in
// the settings file.
type Key string

const (
	KeyBackground       Key = "bg"
	KeyForeground       Key = "fg"
	KeyCaret            Key = "insertbackground"
	KeySelectBackground Key = "selectbackground"
	KeySelectForeground Key = "selectforeground"
	KeyStatusBackground Key = "status_bg"
	KeyStatusForeground Key = "status_fg"
)

// Keys lists all seven profile fields.
func Keys() []Key {
	return []Key{
		KeyBackground,
		KeyForeground,
		KeyCaret,
		KeySelectBackground,
		KeySelectForeground,
		KeyStatusBackground,
		KeyStatusForeground,
	}
}

// CustomizableKeys lists the fields offered by the custom color chooser.
// The caret color follows the profile it was copied from.
func CustomizableKeys() []Key {
	return []Key{
		KeyBackground,
		KeyForeground,
		KeySelectBackground,
		KeySelectForeground,
		KeyStatusBackground,
		KeyStatusForeground,
	}
}

// Label is the human-readable name of a field.
func (k Key) Label() string {
	switch k {
	case KeyBackground:
		return "Background"
	case KeyForeground:
		return "Text Color"
	case KeyCaret:
		return "Caret"
	case KeySelectBackground:
		return "Selection Background"
	case KeySelectForeground:
		return "Selection Text"
	case KeyStatusBackground:
		return "Status Bar BG"
	case KeyStatusForeground:
		return "Status Bar Text"
	default:
		return string(k)
	}
}

// Profile is one complete set of editor colors.
type Profile struct {
	Background       string `json:"bg"`
	Foreground       string `json:"fg"`
	Caret            string `json:"insertbackground"`
	SelectBackground string `json:"selectbackground"`
	SelectForeground string `json:"selectforeground"`
	StatusBackground string `json:"status_bg"`
	StatusForeground string `json:"status_fg"`
}

// LightProfile and DarkProfile are the built-in themes.
var (
	LightProfile = Profile{
		Background:       "#ffffff",
		Foreground:       "#000000",
		Caret:            "#000000",
		SelectBackground: "#add8e6",
		SelectForeground: "#000000",
		StatusBackground: "#d3d3d3",
		StatusForeground: "#000000",
	}
	DarkProfile = Profile{
		Background:       "#1e1e1e",
		Foreground:       "#d4d4d4",
		Caret:            "#ffffff",
		SelectBackground: "#264f78",
		SelectForeground: "#ffffff",
		StatusBackground: "#2d2d2d",
		StatusForeground: "#ffffff",
	}
)

// Get returns the color stored under key.
func (p Profile) Get(key Key) (string, bool) {
	switch key {
	case KeyBackground:
		return p.Background, true
	case KeyForeground:
		return p.Foreground, true
	case KeyCaret:
		return p.Caret, true
	case KeySelectBackground:
		return p.SelectBackground, true
	case KeySelectForeground:
		return p.SelectForeground, true
	case KeyStatusBackground:
		return p.StatusBackground, true
	case KeyStatusForeground:
		return p.StatusForeground, true
	}
	return "", false
}

// Set stores color under key without validation. It reports false for unknown
// keys.
func (p *Profile) Set(key Key, color string) bool {
	switch key {
	case KeyBackground:
		p.Background = color
	case KeyForeground:
		p.Foreground = color
	case KeyCaret:
		p.Caret = color
	case KeySelectBackground:
		p.SelectBackground = color
	case KeySelectForeground:
		p.SelectForeground = color
	case KeyStatusBackground:
		p.StatusBackground = color
	case KeyStatusForeground:
		p.StatusForeground = color
	default:
		return false
	}
	return true
}

// Complete fills every empty or invalid field from fallback and normalizes
// the rest, so the result always has seven usable colors.
func (p Profile) Complete(fallback Profile) Profile {
	out := p
	for _, key := range Keys() {
		value, _ := p.Get(key)
		normalized, err := NormalizeColor(value)
		if err != nil {
			normalized, _ = fallback.Get(key)
		}
		out.Set(key, normalized)
	}
	return out
}

// Registry holds the three theme profiles. Only Custom can change.
//
// The registry is owned by the application state and is only touched from
// the UI event loop, so it carries no lock.
type Registry struct {
	custom Profile
}

// NewRegistry builds a registry whose Custom profile starts from custom, or
// from a copy of Light when custom is nil.
func NewRegistry(custom *Profile) *Registry {
	r := &Registry{custom: LightProfile}
	if custom != nil {
		r.custom = custom.Complete(LightProfile)
	}
	return r
}

// Get resolves a theme name to a copy of its profile.
func (r *Registry) Get(name Name) (Profile, error) {
	switch name {
	case Light:
		return LightProfile, nil
	case Dark:
		return DarkProfile, nil
	case Custom:
		return r.custom, nil
	}
	return Profile{}, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
}

// MustGet is Get for names that are known to be valid. An unknown name is an
// invariant violation and panics.
func (r *Registry) MustGet(name Name) Profile {
	p, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Custom returns a copy of the current custom profile.
func (r *Registry) Custom() Profile {
	return r.custom
}

// SetCustom replaces the whole custom profile. Invalid fields keep their
// previous values.
func (r *Registry) SetCustom(p Profile) {
	r.custom = p.Complete(r.custom)
}

// SetCustomField validates color and stores it in the custom profile. Windows
// pick the change up the next time a theme is applied to them.
func (r *Registry) SetCustomField(key Key, color string) error {
	normalized, err := NormalizeColor(color)
	if err != nil {
		return err
	}
	if !r.custom.Set(key, normalized) {
		return fmt.Errorf("unknown color field %q", key)
	}
	return nil
}
