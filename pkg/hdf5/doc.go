// Package hdf5 provides the call layer that every binding in this module
// goes through to reach the native HDF5 library. The native library keeps
// its state in process globals and is not safe for concurrent use, so this
// package serializes all entries behind one process-wide reentrant lock,
// translates the library's status-code convention into Go errors with the
// diagnostic stack captured at the moment of failure, and offers a small
// generic family for the common "results through output pointers" call
// shape.
//
// The package compiles and is fully testable without the native bindings;
// higher layers and tests supply call closures and diagnostic sources of
// their own. When built with cgo on a platform with libhdf5, the same entry
// points drive the real library.
package hdf5
