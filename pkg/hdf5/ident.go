package hdf5

import "github.com/h5works/hdf5-go/pkg/hdf5/internal/backend"

// IsValid reports whether id names a live object in the native library. The
// native call is tri-state: positive true, zero false, negative failure.
func IsValid(id ID) (bool, error) {
	if !backend.Built {
		return false, backend.Unavailable()
	}
	v, err := Call(func() Status {
		return Status(backend.IsValid(int64(id)))
	})
	if err != nil {
		return false, err
	}
	return v > 0, nil
}

// RefCount returns the reference count of id. The native call overloads its
// status as the payload, which Call hands through untouched on success.
func RefCount(id ID) (int, error) {
	if !backend.Built {
		return 0, backend.Unavailable()
	}
	v, err := Call(func() Status {
		return Status(backend.RefCount(int64(id)))
	})
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
