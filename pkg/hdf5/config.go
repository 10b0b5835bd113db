package hdf5

import "github.com/h5works/hdf5-go/pkg/hdf5/logging"

// Config expresses the knobs applied when the native library is brought up.
// The zero value is ready to use; callers that never construct a Config get
// the same defaults through the lazy first-call initialization.
type Config struct {
	// Logger receives the wrapper's records: a line when the native library
	// comes up and a debug line for every failed call. Nil binds to the
	// process default slog logger.
	Logger logging.Logger

	// KeepNativeErrorOutput leaves the library's automatic error printing to
	// stderr enabled. By default the wrapper silences it and owns all
	// diagnostics through captured snapshots.
	KeepNativeErrorOutput bool
}

// logger is the process logger for the wrapper. Guarded by the serializer.
var logger logging.Logger

// activeLogger returns the configured logger, binding to the process default
// on first use. Callers hold the serializer.
func activeLogger() logging.Logger {
	if logger == nil {
		logger = logging.New(nil)
	}
	return logger
}
