package app

import (
	"log/slog"

	"github.com/treykane/landtext/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// Entries are tagged component=app. Warnings cover non-fatal failures such as
// an unreadable clipboard or a settings reload that could not be parsed.
var appLog = logging.New("app")

// setStatusError updates a window's status bar with a user-facing message and
// logs a structured error entry with full context.
//
// Usage:
//
//	w.setStatusError("Clipboard paste failed", err)
//
// The error itself is always logged under the "error" key; attrs add slog
// key-value pairs to the log entry only.
func (w *editorWindow) setStatusError(status string, err error, attrs ...any) {
	w.status = status
	fields := make([]any, 0, len(attrs)+4)
	fields = append(fields, slog.Any("error", err), slog.Int("window", w.id))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
