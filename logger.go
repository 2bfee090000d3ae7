package xd

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so Dump's
// per-chunk Debug calls return before a record is formatted.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(discardHandler{})

// current is read once per Dump call and once in New.
var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes xd's diagnostics to l. Passing nil silences them again,
// which is also the state before the first call. It may be called while
// dumps are running; a Dump already in progress keeps the logger it started
// with.
//
// Records written by xd:
//   - Info "xd: dumper ready" from New, with backend, digits and chunk.
//   - Debug "xd: chunk written" after every Write, with bytes, lines and the
//     offset of the next line.
//
// The xd command installs a debug-level text handler on stderr with -v:
//
//	xd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger xd currently writes to.
func Logger() *slog.Logger {
	return current.Load()
}
