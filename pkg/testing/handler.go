// Package testing provides helpers for testing ValueBar and its host
// utilities.
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	clk := drifttest.UseFakeClock(t)
//	bar.AnimateUp(80, time.Second)
//	drifttest.Pump(clk, 500*time.Millisecond)
//
// # Paint Testing
//
// Record what a widget paints and inspect the operations:
//
//	list := drifttest.Record(bar, graphics.Size{Width: 200, Height: 40})
//	rects := drifttest.Rects(list)
//
// # Reported Errors
//
// Capture advisories and errors sent to the global handler:
//
//	h := drifttest.CaptureErrors(t)
//	bar.HandlePointer(event)
//	assert.Len(t, h.Warnings(), 1)
package testing

import (
	"sync"
	"testing"

	"github.com/go-drift/valuebar/pkg/errors"
)

// RecordingHandler is an errors.Handler that keeps everything it receives.
type RecordingHandler struct {
	mu       sync.Mutex
	errs     []*errors.Error
	warnings []*errors.Warning
	panics   []*errors.PanicError
}

// CaptureErrors installs a RecordingHandler for the duration of the test.
func CaptureErrors(t testing.TB) *RecordingHandler {
	t.Helper()
	h := &RecordingHandler{}
	prev := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}

func (h *RecordingHandler) HandleError(err *errors.Error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *RecordingHandler) HandleWarning(w *errors.Warning) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.warnings = append(h.warnings, w)
}

func (h *RecordingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

// Errors returns the reported errors.
func (h *RecordingHandler) Errors() []*errors.Error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.Error(nil), h.errs...)
}

// Warnings returns the raised advisories.
func (h *RecordingHandler) Warnings() []*errors.Warning {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.Warning(nil), h.warnings...)
}

// Panics returns the recovered panics.
func (h *RecordingHandler) Panics() []*errors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.PanicError(nil), h.panics...)
}
