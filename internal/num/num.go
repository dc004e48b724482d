// Package num holds the numeric type constraints shared by the transform
// packages.
package num

// Float is the set of sample types handled by the floating-point path.
type Float interface {
	~float32 | ~float64
}

// Integer is the set of sample types handled by the lossless lifting path.
type Integer interface {
	~int | ~int16 | ~int32 | ~int64
}

// Number is any sample type the engine can read or write.
type Number interface {
	Float | Integer
}
