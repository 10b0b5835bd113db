package mocklib

import (
	"fmt"
	"sync"

	"github.com/h5works/hdf5-go/pkg/hdf5"
)

// Object is one registered resource. The fields cover the value kinds the
// getter family traffics in; they carry no further meaning.
type Object struct {
	Size uint64
	Rows uint64
	Cols uint64
	Kind int32
	Fill float64
	Refs int32
}

type Lib struct {
	mu      sync.Mutex
	next    hdf5.ID
	objects map[hdf5.ID]Object

	// pending holds diagnostic frames pushed by failed calls until the
	// source drains them.
	pending []hdf5.Frame

	// failNext, when non-empty, makes the next getter call fail with this
	// description.
	failNext string
}

func New() *Lib {
	return &Lib{next: 100, objects: make(map[hdf5.ID]Object)}
}

// Register adds obj and returns its identifier.
func (l *Lib) Register(obj Object) hdf5.ID {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.next
	l.next++
	l.objects[id] = obj
	return id
}

// Remove forgets id. Later getter calls against it fail like the native
// library's lookup of a closed identifier.
func (l *Lib) Remove(id hdf5.ID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.objects, id)
}

// FailNext makes the next getter call fail with desc as the top diagnostic,
// regardless of the identifier. The scripted failure applies once.
func (l *Lib) FailNext(desc string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failNext = desc
}

// Source returns a stack source that drains the frames pushed by failed
// calls. Install it with hdf5.SetStackSource for the duration of a test.
func (l *Lib) Source() hdf5.StackSource {
	return func() []hdf5.Frame {
		l.mu.Lock()
		defer l.mu.Unlock()
		frames := l.pending
		l.pending = nil
		return frames
	}
}

// Size has the shape of hdf5.Getter1[uint64].
func (l *Lib) Size(id hdf5.ID, size *uint64) hdf5.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	obj, ok := l.lookup("mock_size", id)
	if !ok {
		return -1
	}
	*size = obj.Size
	return 0
}

// Extent has the shape of hdf5.Getter2[uint64, uint64].
func (l *Lib) Extent(id hdf5.ID, rows, cols *uint64) hdf5.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	obj, ok := l.lookup("mock_extent", id)
	if !ok {
		return -1
	}
	*rows = obj.Rows
	*cols = obj.Cols
	return 0
}

// Layout has the shape of hdf5.Getter3[int32, uint64, float64].
func (l *Lib) Layout(id hdf5.ID, kind *int32, size *uint64, fill *float64) hdf5.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	obj, ok := l.lookup("mock_layout", id)
	if !ok {
		return -1
	}
	*kind = obj.Kind
	*size = obj.Size
	*fill = obj.Fill
	return 0
}

// Info has the shape of hdf5.Getter4[uint64, int32, float64, int32].
func (l *Lib) Info(id hdf5.ID, size *uint64, kind *int32, fill *float64, refs *int32) hdf5.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	obj, ok := l.lookup("mock_info", id)
	if !ok {
		return -1
	}
	*size = obj.Size
	*kind = obj.Kind
	*fill = obj.Fill
	*refs = obj.Refs
	return 0
}

// lookup resolves id, honoring a scripted failure first. Callers hold l.mu.
func (l *Lib) lookup(fn string, id hdf5.ID) (Object, bool) {
	if l.failNext != "" {
		desc := l.failNext
		l.failNext = ""
		l.push(fn, desc, "Internal error", "Some functionality failed")
		return Object{}, false
	}
	obj, ok := l.objects[id]
	if !ok {
		l.push(fn, fmt.Sprintf("identifier %d is not registered", id),
			"Object atom", "Unable to find atom information")
		return Object{}, false
	}
	return obj, true
}

// push records a two-frame diagnostic stack the way the native library
// does: the API entry point first, then the inner layer. Callers hold l.mu.
func (l *Lib) push(fn, desc, major, minor string) {
	l.pending = append(l.pending,
		hdf5.Frame{
			Desc:  desc,
			Func:  fn,
			File:  "mocklib.go",
			Line:  1,
			Major: major,
			Minor: minor,
		},
		hdf5.Frame{
			Desc:  "identifier lookup failed",
			Func:  "mock_lookup",
			File:  "mocklib.go",
			Line:  2,
			Major: major,
			Minor: minor,
		},
	)
}
