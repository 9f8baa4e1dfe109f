package theme

import (
	"errors"
	"testing"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		input   string
		want    Name
		wantErr bool
	}{
		{input: "Light", want: Light},
		{input: "dark", want: Dark},
		{input: " Custom ", want: Custom},
		{input: "Solarized", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTheme) {
					t.Fatalf("expected ErrUnknownTheme, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRegistryGetResolvesEveryName(t *testing.T) {
	r := NewRegistry(nil)
	for _, name := range Names() {
		p, err := r.Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		for _, key := range Keys() {
			if v, _ := p.Get(key); v == "" {
				t.Fatalf("%s profile has empty %s", name, key)
			}
		}
	}
	if got := r.Custom(); got != LightProfile {
		t.Fatalf("unset custom theme should start as Light, got %+v", got)
	}
}

func TestRegistryGetUnknownName(t *testing.T) {
	r := NewRegistry(nil)
	if _, err := r.Get(Name(7)); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustGet to panic on unknown name")
		}
	}()
	r.MustGet(Name(-1))
}

func TestSetCustomFieldOnlyTouchesCustom(t *testing.T) {
	r := NewRegistry(nil)
	before := r.MustGet(Custom)
	if err := r.SetCustomField(KeyBackground, "#ABC"); err != nil {
		t.Fatalf("set field: %v", err)
	}
	if got := r.Custom().Background; got != "#aabbcc" {
		t.Fatalf("expected normalized #aabbcc, got %q", got)
	}
	if before.Background == r.Custom().Background {
		t.Fatal("copy returned before the change must not observe it")
	}
	if r.MustGet(Light).Background != "#ffffff" {
		t.Fatal("Light must be immutable")
	}
}

func TestSetCustomFieldRejectsBadInput(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.SetCustomField(KeyForeground, "not-a-color"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	if err := r.SetCustomField(Key("border"), "#000000"); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if r.Custom() != LightProfile {
		t.Fatal("failed updates must leave the custom profile unchanged")
	}
}

func TestNewRegistryCompletesPartialCustom(t *testing.T) {
	r := NewRegistry(&Profile{Background: "black", Foreground: "bogus"})
	got := r.Custom()
	if got.Background != "#000000" {
		t.Fatalf("expected named color to normalize, got %q", got.Background)
	}
	if got.Foreground != LightProfile.Foreground {
		t.Fatalf("expected invalid field to fall back, got %q", got.Foreground)
	}
	if got.StatusBackground != LightProfile.StatusBackground {
		t.Fatalf("expected missing field to fall back, got %q", got.StatusBackground)
	}
}

func TestCustomizableKeysExcludeCaret(t *testing.T) {
	keys := CustomizableKeys()
	if len(keys) != 6 {
		t.Fatalf("expected 6 pickable fields, got %d", len(keys))
	}
	for _, k := range keys {
		if k == KeyCaret {
			t.Fatal("caret color should not be pickable")
		}
	}
}
