//go:build cgo && !windows

package backend

/*
#include <hdf5.h>
*/
import "C"

import "unsafe"

// frameRec is the raw per-frame copy made inside the walk callback. The
// string pointers in H5E_error2_t are only valid during the walk, so they
// are copied to Go strings on the spot. Message identifiers are global and
// get resolved to text after the walk finishes.
type frameRec struct {
	desc  string
	fn    string
	file  string
	line  uint
	major C.hid_t
	minor C.hid_t
}

// collected accumulates frames during a walk. Guarded by the process-wide
// serializer like all other native state.
var collected []frameRec

//export h5goCollectFrame
func h5goCollectFrame(n C.uint, err *C.H5E_error2_t, data unsafe.Pointer) C.herr_t {
	if err == nil {
		return 0
	}
	collected = append(collected, frameRec{
		desc:  C.GoString(err.desc),
		fn:    C.GoString(err.func_name),
		file:  C.GoString(err.file_name),
		line:  uint(err.line),
		major: err.maj_num,
		minor: err.min_num,
	})
	return 0
}
