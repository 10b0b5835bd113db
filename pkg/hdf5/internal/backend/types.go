package backend

import "errors"

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to fall back to degraded behavior
	// instead of failing hard.
	ErrNotBuilt = errors.New("hdf5/internal/backend: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("hdf5/internal/backend: cgo not enabled")
)

// Frame is one record lifted off the native error stack. Fields are plain
// Go copies; nothing here points into native memory.
type Frame struct {
	Desc  string
	Func  string
	File  string
	Line  uint
	Major string
	Minor string
}
