package hdf5

import (
	"context"
	"fmt"

	"github.com/h5works/hdf5-go/pkg/hdf5/internal/backend"
)

// Library represents an opened handle to the native library. The native
// state itself is process-wide and initialized at most once; Library tracks
// the wrapper-side lifecycle so embedders can keep their usual open/close
// discipline.
type Library struct {
	cfg    Config
	closed bool
}

// Open brings up the native library with the given configuration and
// returns a handle to it. Initialization happens once per process: the
// first Open, or the first serialized call if that comes earlier, performs
// it, and every later Open observes the remembered outcome. Only the Logger
// field takes effect on an already-initialized library.
func Open(cfg Config) (*Library, error) {
	if !backend.Built {
		return nil, backend.Unavailable()
	}
	global.lock()
	defer global.unlock()
	if cfg.Logger != nil {
		logger = cfg.Logger
	}
	bootCfg = cfg
	ensureNative()
	if nativeErr != nil {
		return nil, nativeErr
	}
	return &Library{cfg: cfg}, nil
}

// Close invalidates the handle. The method is idempotent in the usual
// sense, returning ErrLibraryClosed when called twice.
//
// Nothing native is torn down: the library stays resident for the process
// lifetime, because shutting it down while any identifier is live would
// invalidate every open object in the process.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	if l.closed {
		return ErrLibraryClosed
	}
	l.closed = true
	return nil
}

// Initialization state, all guarded by the serializer.
var (
	bootCfg    Config
	nativeDone bool
	nativeErr  error
)

// ensureNative initializes the native library on the first serialized entry
// of the process and remembers the outcome. It runs with the serializer
// held and uses raw backend calls directly: the checked wrappers would loop
// back into this function.
func ensureNative() {
	if !backend.Built || nativeDone {
		return
	}
	nativeDone = true
	nativeErr = openNative()
	if nativeErr != nil {
		activeLogger().Error(context.Background(), "native library initialization failed", "err", nativeErr)
	}
}

func openNative() error {
	if rc := backend.Open(); rc < 0 {
		return Errorf("native open failed with status %d", rc)
	}
	if !bootCfg.KeepNativeErrorOutput {
		if rc := backend.SilenceErrorOutput(); rc < 0 {
			return Errorf("silencing native error output failed with status %d", rc)
		}
	}
	var major, minor, release uint32
	if rc := backend.LibVersion(&major, &minor, &release); rc < 0 {
		return Errorf("reading native library version failed with status %d", rc)
	}
	if err := Ensure(versionSupported(major, minor),
		"unsupported native library version %d.%d.%d: 1.8 or newer required", major, minor, release); err != nil {
		return err
	}
	nativeVersion = versionInfo{major: major, minor: minor, release: release, known: true}
	activeLogger().Info(context.Background(), "native library ready",
		"version", fmt.Sprintf("%d.%d.%d", major, minor, release))
	return nil
}
