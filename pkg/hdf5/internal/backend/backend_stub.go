//go:build !cgo || windows

package backend

// Stub implementations for non-cgo builds or Windows. These let the package
// compile everywhere; calls report failure statuses and no diagnostics.

// Built reports whether the native bindings are part of this binary.
const Built = false

func Open() int32 { return -1 }

func SilenceErrorOutput() int32 { return -1 }

func LibVersion(major, minor, release *uint32) int32 { return -1 }

func IsValid(id int64) int32 { return -1 }

func RefCount(id int64) int32 { return -1 }

// CaptureErrorStack has nothing to capture without the native library.
func CaptureErrorStack() []Frame { return nil }

// Unavailable reports why native calls cannot be made in this build.
func Unavailable() error { return ErrNotBuilt }
