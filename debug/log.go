package debug

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})))
}

// SetLogger replaces the logger debug output is written to.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	logger.Store(l)
}

// Logger returns the current debug logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// Log writes a debug record with the given attributes.
func Log(msg string, args ...any) {
	Logger().Debug(msg, args...)
}
