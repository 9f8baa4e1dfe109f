// Package document handles the identity and on-disk form of an edited file.
//
// Files are plain UTF-8 text, read and written whole. Nothing is appended or
// stripped on the way in or out, so saving buffer content C and opening the
// file again yields exactly C.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

const (
	// AppName prefixes every window title.
	AppName = "LandText"

	// DefaultExtension is added to save paths chosen without one.
	DefaultExtension = ".txt"

	filePermission = 0o644
)

// ErrInvalidUTF8 is wrapped by ReadError when the file is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")

// Identity ties a buffer to the file it came from.
//
// The zero value is an untitled, clean document.
type Identity struct {
	Path     string
	Modified bool
}

// HasPath reports whether the document has been opened from or saved to disk.
func (id Identity) HasPath() bool {
	return id.Path != ""
}

// DisplayName is the file's base name, or empty for an untitled document.
func (id Identity) DisplayName() string {
	if !id.HasPath() {
		return ""
	}
	return filepath.Base(id.Path)
}

// Title renders the window title: the app name, the file name when there is
// one, and a trailing " *" while there are unsaved changes.
func (id Identity) Title() string {
	title := AppName
	if name := id.DisplayName(); name != "" {
		title += " - " + name
	}
	if id.Modified {
		title += " *"
	}
	return title
}

// ReadError reports a failed Open.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed Save or Save As.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Read returns the full content of path as text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}

// Write replaces the content of path with content.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), filePermission); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WithDefaultExtension appends DefaultExtension when path has no extension.
func WithDefaultExtension(path string) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + DefaultExtension
}
