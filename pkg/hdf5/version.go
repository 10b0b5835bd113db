package hdf5

import (
	"fmt"

	"github.com/h5works/hdf5-go/pkg/hdf5/internal/backend"
)

// fallbackVersion is what WrapperVersion reports when the build does not
// inject a release version through ldflags.
const fallbackVersion = "v0.0.0-in-progress"

var Version = fallbackVersion

// versionInfo caches the native library version read during initialization.
// Guarded by the serializer.
type versionInfo struct {
	major, minor, release uint32
	known                 bool
}

var nativeVersion versionInfo

// versionSupported reports whether the native library meets the oldest
// version the wrapper supports, 1.8.
func versionSupported(major, minor uint32) bool {
	return major > 1 || (major == 1 && minor >= 8)
}

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// LibraryVersion returns the runtime version of the native library. It
// triggers initialization if that has not happened yet, and reports
// ErrNotBuilt when the bindings are absent from this binary.
func LibraryVersion() (major, minor, release uint32, err error) {
	if !backend.Built {
		return 0, 0, 0, backend.Unavailable()
	}
	var (
		v       versionInfo
		initErr error
	)
	Sync(func() {
		v = nativeVersion
		initErr = nativeErr
	})
	if initErr != nil {
		return 0, 0, 0, initErr
	}
	if !v.known {
		return 0, 0, 0, Errorf("native library version unavailable")
	}
	return v.major, v.minor, v.release, nil
}

// LibraryVersionString renders LibraryVersion as "major.minor.release", or
// "unknown" when the native library is not available.
func LibraryVersionString() string {
	major, minor, release, err := LibraryVersion()
	if err != nil {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, release)
}
