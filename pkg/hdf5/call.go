package hdf5

// Check translates the status convention into a typed outcome. Non-negative
// values pass through unchanged, because many calls overload the
// non-negative range with a payload such as a fresh identifier or a count.
// Negative values become a *StackError carrying the diagnostic snapshot.
//
// The snapshot is taken with the serializer held. Check acquires it if the
// caller does not already hold it, so a status checked outside a Sync block
// still cannot pick up another goroutine's diagnostics.
func Check[V Code](v V) (V, error) {
	if v >= 0 {
		return v, nil
	}
	var err error
	Sync(func() {
		err = captureFailure(int64(v))
	})
	return v, err
}

// Call runs f under the serializer and checks its status before the lock is
// released. This is the primitive nearly every wrapped entry point reduces
// to:
//
//	id, err := hdf5.Call(func() hdf5.Status {
//		return raw.OpenThing(name)
//	})
func Call[V Code](f func() V) (V, error) {
	var (
		v   V
		err error
	)
	Sync(func() {
		v = f()
		_, err = Check(v)
	})
	return v, err
}
