package hdf5

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/h5works/hdf5-go/pkg/hdf5/internal/backend"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = backend.ErrNotBuilt

	// ErrCGONotEnabled signals that the module was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = backend.ErrCGONotEnabled

	// ErrLibraryClosed is returned by Library methods after Close.
	ErrLibraryClosed = errors.New("hdf5: library already closed")
)

// Frame is one record from the library's diagnostic stack, captured at the
// moment a call failed. Frames are plain values; copying one copies
// everything.
type Frame struct {
	// Desc is the human-readable description recorded by the failing layer.
	Desc string

	// Func and File locate the native function that pushed the record.
	Func string
	File string
	Line uint

	// Major and Minor carry the library's two-level failure classification,
	// already resolved to text.
	Major string
	Minor string
}

// StackError is the typed outcome of a native call that returned a failure
// status. The diagnostic stack is snapshotted before the serializer is
// released, so the frames always belong to the failing call and never to a
// later call from another goroutine.
type StackError struct {
	// ID correlates this failure across log records.
	ID uuid.UUID

	// Code is the raw status the call returned.
	Code int64

	// Frames holds the diagnostic records, ordered from the API entry point
	// at the front down to the innermost layer.
	Frames []Frame
}

// Error returns the top description from the stack, or a generic message
// when the library recorded nothing.
func (e *StackError) Error() string {
	if len(e.Frames) == 0 {
		return fmt.Sprintf("hdf5: call failed with status %d (no diagnostics)", e.Code)
	}
	return e.Frames[0].Desc
}

// Clone returns an independent deep copy of the snapshot. The copy keeps the
// same ID, so log correlation survives cloning.
func (e *StackError) Clone() *StackError {
	if e == nil {
		return nil
	}
	out := &StackError{ID: e.ID, Code: e.Code}
	if len(e.Frames) > 0 {
		out.Frames = make([]Frame, len(e.Frames))
		copy(out.Frames, e.Frames)
	}
	return out
}

// CloneError returns an independent copy of err when it is a diagnostic
// snapshot and err unchanged otherwise. Use it to propagate a failure out of
// a result that is borrowed from shared state rather than owned by the
// caller, so the shared copy and the propagated copy cannot alias.
func CloneError(err error) error {
	if se, ok := err.(*StackError); ok {
		return se.Clone()
	}
	return err
}

// Ensure returns nil when cond holds and a formatted error otherwise. The
// message is produced with fmt.Sprintf semantics and carries no prefix, so
// the caller fully controls the text:
//
//	if err := hdf5.Ensure(rank <= maxRank, "rank %d out of range", rank); err != nil {
//		return err
//	}
func Ensure(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf(format, args...)
}

// Errorf builds a package-prefixed error for a failure raised by the wrapper
// itself, as opposed to a diagnostic snapshot captured from the native
// library. fmt verbs work as in fmt.Errorf, including %w.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("hdf5: "+format, args...)
}

// StackSource captures and clears the diagnostic stack of the most recent
// failing call. The default source walks the native error stack when the
// bindings are built and reports nothing otherwise. Tests and embedders that
// own their own diagnostics can install a replacement with SetStackSource.
//
// A source is always invoked with the serializer held.
type StackSource func() []Frame

// stackSource is guarded by the serializer.
var stackSource StackSource = nativeStackSource

// SetStackSource installs src as the diagnostic source and returns the
// previous one. A nil src restores the default.
func SetStackSource(src StackSource) StackSource {
	if src == nil {
		src = nativeStackSource
	}
	var prev StackSource
	Sync(func() {
		prev = stackSource
		stackSource = src
	})
	return prev
}

func nativeStackSource() []Frame {
	raw := backend.CaptureErrorStack()
	if len(raw) == 0 {
		return nil
	}
	frames := make([]Frame, len(raw))
	for i, r := range raw {
		frames[i] = Frame{
			Desc:  r.Desc,
			Func:  r.Func,
			File:  r.File,
			Line:  r.Line,
			Major: r.Major,
			Minor: r.Minor,
		}
	}
	return frames
}

// captureFailure builds the typed error for a failing status. It must run
// with the serializer held: the diagnostic stack is process-global and the
// next call from any goroutine overwrites it.
func captureFailure(code int64) error {
	err := &StackError{ID: uuid.New(), Code: code, Frames: stackSource()}
	activeLogger().Debug(context.Background(), "native call failed",
		"error_id", err.ID.String(), "status", code, "frames", len(err.Frames))
	return err
}
