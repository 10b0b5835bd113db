// Package logging provides a minimal logging facade for the hdf5 wrapper.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing or for
// integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/h5works/hdf5-go/pkg/hdf5/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Identifiers
//
// Native object identifiers are opaque 64-bit handles. The Identifier helper
// formats them consistently so records stay grep-able:
//
//	logger.Info(ctx, "object opened", logging.Identifier("id", int64(id)))
//
// # Usage in Wrapper Code
//
// The wrapper emits one record when the native library comes up and a debug
// record for every failed call, carrying the failure's correlation id:
//
//	logger := logging.New(nil)
//	lib, err := hdf5.Open(hdf5.Config{Logger: logger})
//
// Applications can route those records anywhere by supplying their own
// Logger implementation.
package logging
