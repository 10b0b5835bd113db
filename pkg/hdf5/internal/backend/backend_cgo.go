//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lhdf5

#include <stdlib.h>
#include <hdf5.h>

extern herr_t h5goCollectFrame(unsigned n, H5E_error2_t *err, void *data);

static herr_t h5go_walk_cb(unsigned n, const H5E_error2_t *err, void *data) {
	return h5goCollectFrame(n, (H5E_error2_t *)err, data);
}

static herr_t h5go_walk_stack(void) {
	return H5Ewalk2(H5E_DEFAULT, H5E_WALK_DOWNWARD, h5go_walk_cb, NULL);
}

static herr_t h5go_silence_errors(void) {
	return H5Eset_auto2(H5E_DEFAULT, NULL, NULL);
}

static herr_t h5go_clear_stack(void) {
	return H5Eclear2(H5E_DEFAULT);
}
*/
import "C"

import "unsafe"

// Built reports whether the native bindings are part of this binary.
const Built = true

// Open initializes the native library. The library tracks its own
// initialization state, so repeated calls are harmless.
func Open() int32 {
	return int32(C.H5open())
}

// SilenceErrorOutput turns off the library's automatic printing of error
// stacks to stderr. The call layer captures and clears stacks itself.
func SilenceErrorOutput() int32 {
	return int32(C.h5go_silence_errors())
}

// LibVersion writes the runtime library version into the given slots. The
// slots are only written on success.
func LibVersion(major, minor, release *uint32) int32 {
	var maj, min, rel C.uint
	rc := C.H5get_libversion(&maj, &min, &rel)
	if rc >= 0 {
		*major, *minor, *release = uint32(maj), uint32(min), uint32(rel)
	}
	return int32(rc)
}

// IsValid asks whether id names a live object. The native return is
// tri-state: positive yes, zero no, negative failure.
func IsValid(id int64) int32 {
	return int32(C.H5Iis_valid(C.hid_t(id)))
}

// RefCount returns the reference count of id, or a negative status.
func RefCount(id int64) int32 {
	return int32(C.H5Iget_ref(C.hid_t(id)))
}

// CaptureErrorStack walks the default error stack from the API entry point
// downward, resolves the major and minor message text, clears the stack, and
// returns the copied records. Must run with the serializer held; the stack
// is process-global and the next failing call from anywhere overwrites it.
func CaptureErrorStack() []Frame {
	collected = collected[:0]
	C.h5go_walk_stack()
	frames := make([]Frame, len(collected))
	for i, r := range collected {
		frames[i] = Frame{
			Desc:  r.desc,
			Func:  r.fn,
			File:  r.file,
			Line:  r.line,
			Major: messageText(r.major),
			Minor: messageText(r.minor),
		}
	}
	collected = collected[:0]
	C.h5go_clear_stack()
	return frames
}

// messageText resolves a registered error message identifier to its text.
// Message objects are global and outlive the stack that referenced them.
func messageText(id C.hid_t) string {
	if id < 0 {
		return ""
	}
	var kind C.H5E_type_t
	n := C.H5Eget_msg(id, &kind, nil, 0)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, int(n)+1)
	C.H5Eget_msg(id, &kind, (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	return string(buf[:n])
}

// Unavailable reports why native calls cannot be made. A cgo build can make
// them, so this exists only to keep the surface identical across flavors.
func Unavailable() error {
	return ErrNotBuilt
}
