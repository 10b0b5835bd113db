// Package mocklib provides an in-memory stand-in for the native library so
// the call layer can be exercised in tests and examples without cgo.
//
// Mocklib exposes getter-shaped methods that follow the native status
// convention: results through output pointers, negative return on failure.
// Failures push realistic diagnostic frames that the call layer picks up
// through an installed hdf5.StackSource, exactly the way the real error
// stack is captured.
//
// # Features
//
//   - Getter methods for arities one through four, usable directly as
//     hdf5.Getter1 through hdf5.Getter4 values
//   - Scriptable failures with realistic diagnostic frames
//   - A drop-in hdf5.StackSource wired to the scripted frames
//   - Thread-safe; no dependency on cgo or the native library
//
// # Usage
//
// Register objects, install the source, and call through the getter family:
//
//	lib := mocklib.New()
//	id := lib.Register(mocklib.Object{Size: 4096})
//
//	prev := hdf5.SetStackSource(lib.Source())
//	defer hdf5.SetStackSource(prev)
//
//	size, err := hdf5.Get1(lib.Size, id)
//
// # Limitations
//
// Mocklib is for testing and examples only. It models the status and
// diagnostic conventions, not any real storage behavior.
package mocklib
