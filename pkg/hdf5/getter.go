package hdf5

// The getter family covers the library's most common call shape: a function
// that reports results through output pointers and an overall status,
//
//	status = get(id, out1, ..., outN)
//
// Each Get allocates zeroed output slots, runs the call under the
// serializer, checks the status, and returns the slot values. Arities one
// through four are all the bindings need; the family is deliberately closed
// rather than variadic so every call site stays fully typed.

// Getter1 is the shape of a native getter with one output.
type Getter1[A any] func(id ID, a *A) Status

// Getter2 is the shape of a native getter with two outputs.
type Getter2[A, B any] func(id ID, a *A, b *B) Status

// Getter3 is the shape of a native getter with three outputs.
type Getter3[A, B, C any] func(id ID, a *A, b *B, c *C) Status

// Getter4 is the shape of a native getter with four outputs.
type Getter4[A, B, C, D any] func(id ID, a *A, b *B, c *C, d *D) Status

// Get1 calls f for id and returns its output. On failure the diagnostic
// error is propagated and the returned value is the zero value, even if the
// call wrote the slot before failing.
func Get1[A any](f Getter1[A], id ID) (A, error) {
	var a A
	if _, err := Call(func() Status { return f(id, &a) }); err != nil {
		var zero A
		return zero, err
	}
	return a, nil
}

// Get2 calls f for id and returns both outputs in declaration order.
func Get2[A, B any](f Getter2[A, B], id ID) (A, B, error) {
	var (
		a A
		b B
	)
	if _, err := Call(func() Status { return f(id, &a, &b) }); err != nil {
		var (
			zeroA A
			zeroB B
		)
		return zeroA, zeroB, err
	}
	return a, b, nil
}

// Get3 calls f for id and returns all three outputs in declaration order.
func Get3[A, B, C any](f Getter3[A, B, C], id ID) (A, B, C, error) {
	var (
		a A
		b B
		c C
	)
	if _, err := Call(func() Status { return f(id, &a, &b, &c) }); err != nil {
		var (
			zeroA A
			zeroB B
			zeroC C
		)
		return zeroA, zeroB, zeroC, err
	}
	return a, b, c, nil
}

// Get4 calls f for id and returns all four outputs in declaration order.
func Get4[A, B, C, D any](f Getter4[A, B, C, D], id ID) (A, B, C, D, error) {
	var (
		a A
		b B
		c C
		d D
	)
	if _, err := Call(func() Status { return f(id, &a, &b, &c, &d) }); err != nil {
		var (
			zeroA A
			zeroB B
			zeroC C
			zeroD D
		)
		return zeroA, zeroB, zeroC, zeroD, err
	}
	return a, b, c, d, nil
}

// Get1Default is the best-effort form of Get1: failures are discarded and
// the zero value returned. Reserve it for optional introspection where a
// missing value is acceptable; anything correctness-affecting must use Get1
// and handle the error.
func Get1Default[A any](f Getter1[A], id ID) A {
	a, _ := Get1(f, id)
	return a
}

// Get2Default is the best-effort form of Get2.
func Get2Default[A, B any](f Getter2[A, B], id ID) (A, B) {
	a, b, _ := Get2(f, id)
	return a, b
}

// Get3Default is the best-effort form of Get3.
func Get3Default[A, B, C any](f Getter3[A, B, C], id ID) (A, B, C) {
	a, b, c, _ := Get3(f, id)
	return a, b, c
}

// Get4Default is the best-effort form of Get4.
func Get4Default[A, B, C, D any](f Getter4[A, B, C, D], id ID) (A, B, C, D) {
	a, b, c, d, _ := Get4(f, id)
	return a, b, c, d
}
