// Package backend hosts the thin cgo layer that links the Go call layer to
// the native HDF5 library. The real implementation lives behind build tags
// so that the rest of the repository can compile without cgo.
//
// Nothing in this package synchronizes. Every function that touches the
// native library must be invoked with the process-wide serializer held; the
// parent package is the only importer and owns that discipline.
package backend
