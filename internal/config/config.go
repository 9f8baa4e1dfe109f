// Package config persists the editor's appearance settings.
//
// Settings live in one JSON file (default: landtext_settings.json in the
// working directory). Loading never fails from the caller's point of view: a
// missing file yields defaults, a corrupt file yields defaults plus an error
// meant only for logging, and individual fields that are missing or of the
// wrong type are default-filled while the rest of the file is honored.
//
// Saving rewrites the keys this package owns (current_theme, custom_theme,
// font_size) and keeps any other keys already present in the file, such as a
// hand-written keybindings object.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/treykane/landtext/internal/logging"
	"github.com/treykane/landtext/internal/theme"
)

const (
	// DefaultFileName is the settings path used when neither the flag nor
	// LANDTEXT_SETTINGS names one. It is relative to the working directory.
	DefaultFileName = "landtext_settings.json"

	// PathEnv overrides the settings file location.
	PathEnv = "LANDTEXT_SETTINGS"

	DefaultFontSize = 12
	MinFontSize     = 8
	MaxFontSize     = 32

	filePermission = 0o644
	dirPermission  = 0o755
)

const (
	keyCurrentTheme = "current_theme"
	keyCustomTheme  = "custom_theme"
	keyFontSize     = "font_size"
	keyKeybindings  = "keybindings"
)

// ErrCorruptSettings marks a settings file that exists but cannot be used.
var ErrCorruptSettings = errors.New("corrupt settings file")

var log = logging.New("config")

// Settings is the single process-wide appearance record.
type Settings struct {
	CurrentTheme theme.Name
	// CustomTheme is nil until a custom profile has been saved.
	CustomTheme *theme.Profile
	FontSize    int
	// Keybindings maps action ids to key strings. It is read from the file
	// but never written by Save.
	Keybindings map[string]string
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		CurrentTheme: theme.Light,
		FontSize:     DefaultFontSize,
	}
}

// Path returns the settings file location from the environment or the
// default relative path.
func Path() string {
	if p := strings.TrimSpace(os.Getenv(PathEnv)); p != "" {
		return p
	}
	return DefaultFileName
}

// ClampFontSize bounds size to the supported range.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// Load reads the settings file at path.
//
// The returned Settings are always usable. A non-nil error means the file
// existed but could not be read or parsed; callers log it and carry on.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings %q: %w", path, errors.Join(ErrCorruptSettings, err))
	}
	if !gjson.ValidBytes(data) {
		return s, fmt.Errorf("parse settings %q: %w", path, ErrCorruptSettings)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return s, fmt.Errorf("parse settings %q: top level is not an object: %w", path, ErrCorruptSettings)
	}

	if v := root.Get(keyCurrentTheme); v.Type == gjson.String {
		name, err := theme.ParseName(v.Str)
		if err != nil {
			log.Warn("ignore unknown theme in settings", "path", path, "theme", v.Str)
		} else {
			s.CurrentTheme = name
		}
	}

	if v := root.Get(keyFontSize); v.Type == gjson.Number {
		s.FontSize = ClampFontSize(int(v.Int()))
	}

	if v := root.Get(keyCustomTheme); v.IsObject() {
		var custom theme.Profile
		for _, key := range theme.Keys() {
			if field := v.Get(string(key)); field.Type == gjson.String {
				custom.Set(key, field.Str)
			}
		}
		custom = custom.Complete(theme.LightProfile)
		s.CustomTheme = &custom
	}

	if v := root.Get(keyKeybindings); v.IsObject() {
		s.Keybindings = map[string]string{}
		v.ForEach(func(action, key gjson.Result) bool {
			if key.Type == gjson.String {
				s.Keybindings[action.String()] = key.Str
			}
			return true
		})
	}

	return s, nil
}

// Save writes s to path, replacing the owned keys and keeping every other
// key of an existing, valid settings file.
func Save(path string, s Settings) error {
	doc := []byte("{}")
	if existing, err := os.ReadFile(path); err == nil && gjson.ValidBytes(existing) && gjson.ParseBytes(existing).IsObject() {
		doc = existing
	}

	custom := theme.LightProfile
	if s.CustomTheme != nil {
		custom = s.CustomTheme.Complete(theme.LightProfile)
	}
	name := s.CurrentTheme
	if !name.Valid() {
		name = theme.Light
	}

	var err error
	if doc, err = sjson.SetBytes(doc, keyCurrentTheme, name.String()); err != nil {
		return fmt.Errorf("encode %s: %w", keyCurrentTheme, err)
	}
	if doc, err = sjson.SetBytes(doc, keyCustomTheme, custom); err != nil {
		return fmt.Errorf("encode %s: %w", keyCustomTheme, err)
	}
	if doc, err = sjson.SetBytes(doc, keyFontSize, ClampFontSize(s.FontSize)); err != nil {
		return fmt.Errorf("encode %s: %w", keyFontSize, err)
	}
	doc = pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "    "})

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermission); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(path, doc, filePermission); err != nil {
		return fmt.Errorf("write settings %q: %w", path, err)
	}
	log.Debug("saved settings", "path", path, "theme", name, "font_size", s.FontSize)
	return nil
}

// Equal reports whether two settings describe the same appearance.
// Keybindings are not compared.
func (s Settings) Equal(other Settings) bool {
	if s.CurrentTheme != other.CurrentTheme || s.FontSize != other.FontSize {
		return false
	}
	if (s.CustomTheme == nil) != (other.CustomTheme == nil) {
		return false
	}
	return s.CustomTheme == nil || *s.CustomTheme == *other.CustomTheme
}
