// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests that keep the repository's layering
// honest: the cgo surface stays confined to the backend package, and only
// the call layer talks to the backend. It is not intended for external use
// and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the hdf5 wrapper. Use the public API
// provided by pkg/hdf5 and its subpackages instead.
package internalcheck
