package hdf5

// ID identifies an object inside the native library. It mirrors the
// library's 64-bit identifier type. Negative values never name a live
// object; they are failure statuses that were passed along unchecked.
type ID int64

// Status is the native return convention: negative means failure, anything
// else is success. Many calls overload the non-negative range with a
// payload, such as a fresh identifier, a count, or a tri-state boolean.
type Status int32

// Code constrains the integer kinds that carry the status convention.
// Status and ID both satisfy it, as do the raw integers returned by the
// backend layer.
type Code interface {
	~int | ~int32 | ~int64
}
