package errors

import (
	"log/slog"
	"os"
)

// LogHandler is a Handler that writes structured records to a slog.Logger.
type LogHandler struct {
	// Logger receives the records. Nil means a text logger on stderr.
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

// NewLogHandler returns a LogHandler for logger. A nil logger writes text
// records to stderr.
func NewLogHandler(logger *slog.Logger, verbose bool) *LogHandler {
	return &LogHandler{Logger: logger, Verbose: verbose}
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// HandleError logs an Error at error level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("err", err.Err),
	}
	if err.Path != "" {
		attrs = append(attrs, slog.String("path", err.Path))
	}
	h.logger().Error("valuebar error", attrs...)
}

// HandleWarning logs a Warning at warn level.
func (h *LogHandler) HandleWarning(w *Warning) {
	if w == nil {
		return
	}
	h.logger().Warn(w.Message, slog.String("op", w.Op))
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().Error("valuebar panic", attrs...)
}
