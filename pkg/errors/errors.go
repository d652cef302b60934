// Package errors provides structured error and advisory reporting for
// ValueBar and its host utilities.
//
// Widgets never return errors from paint or pointer handling. Problems found
// there are reported to the global [Handler] instead, so a misbehaving
// formatter or a missing listener cannot stop the host's frame loop.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an attribute or config file problem.
	KindConfig
	// KindInit indicates an initialization error, such as font loading.
	KindInit
	// KindRender indicates a painting or image output error.
	KindRender
	// KindInput indicates a pointer event handling problem.
	KindInput
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindInput:
		return "input"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error carrying the failed operation and its kind.
type Error struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Warning is a non-fatal advisory. It never changes control flow.
type Warning struct {
	// Op is the operation that raised the advisory.
	Op string
	// Message describes the condition.
	Message string
	// Timestamp is when the advisory was raised.
	Timestamp time.Time
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Op, w.Message)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "valuebar.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors, advisories and recovered panics.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandleWarning is called when an advisory is raised.
	HandleWarning(w *Warning)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
