package wavelet

import "fmt"

// LengthVector1D records the band lengths of a 1-D transform together with
// the original signal length. An inverse transform needs it to know how many
// samples to reconstruct.
type LengthVector1D struct {
	Approx, Detail int
	N              int
}

// Array returns the vector in the flat order [Approx, Detail, N].
func (l LengthVector1D) Array() [3]int {
	return [3]int{l.Approx, l.Detail, l.N}
}

// LengthVector1DFrom parses the flat form produced by Array.
func LengthVector1DFrom(a [3]int) LengthVector1D {
	return LengthVector1D{Approx: a[0], Detail: a[1], N: a[2]}
}

// Total returns the number of coefficients in both bands.
func (l LengthVector1D) Total() int {
	return l.Approx + l.Detail
}

// Extent2 is the size of a 2-D band.
type Extent2 struct {
	X, Y int
}

// Size returns the number of elements.
func (e Extent2) Size() int {
	return e.X * e.Y
}

// LengthVector2D records the extents of the four 2-D bands and the original
// plane. In a band name the first letter refers to X and the second to Y;
// L is the approximation along that axis.
type LengthVector2D struct {
	LL, LH, HL, HH Extent2
	X, Y           int
}

// Array returns the vector in the flat order LL, LH, HL, HH as (x, y)
// pairs followed by X and Y.
func (l LengthVector2D) Array() [10]int {
	return [10]int{
		l.LL.X, l.LL.Y,
		l.LH.X, l.LH.Y,
		l.HL.X, l.HL.Y,
		l.HH.X, l.HH.Y,
		l.X, l.Y,
	}
}

// LengthVector2DFrom parses the flat form produced by Array.
func LengthVector2DFrom(a [10]int) LengthVector2D {
	return LengthVector2D{
		LL: Extent2{a[0], a[1]},
		LH: Extent2{a[2], a[3]},
		HL: Extent2{a[4], a[5]},
		HH: Extent2{a[6], a[7]},
		X:  a[8],
		Y:  a[9],
	}
}

// Total returns the number of coefficients in all bands.
func (l LengthVector2D) Total() int {
	return l.LL.Size() + l.LH.Size() + l.HL.Size() + l.HH.Size()
}

// Extent3 is the size of a 3-D band.
type Extent3 struct {
	X, Y, Z int
}

// Size returns the number of elements.
func (e Extent3) Size() int {
	return e.X * e.Y * e.Z
}

// LengthVector3D records the extents of the eight 3-D bands and the
// original volume. Band letters refer to X, Y and Z in that order.
type LengthVector3D struct {
	LLL, LLH, LHL, LHH Extent3
	HLL, HLH, HHL, HHH Extent3
	X, Y, Z            int
}

func (l *LengthVector3D) bands() [8]*Extent3 {
	return [8]*Extent3{&l.LLL, &l.LLH, &l.LHL, &l.LHH, &l.HLL, &l.HLH, &l.HHL, &l.HHH}
}

// Array returns the vector in the flat order LLL, LLH, LHL, LHH, HLL, HLH,
// HHL, HHH as (x, y, z) triples followed by X, Y and Z.
func (l LengthVector3D) Array() [27]int {
	var a [27]int
	for i, b := range l.bands() {
		a[3*i], a[3*i+1], a[3*i+2] = b.X, b.Y, b.Z
	}
	a[24], a[25], a[26] = l.X, l.Y, l.Z
	return a
}

// LengthVector3DFrom parses the flat form produced by Array.
func LengthVector3DFrom(a [27]int) LengthVector3D {
	var l LengthVector3D
	for i, b := range l.bands() {
		*b = Extent3{a[3*i], a[3*i+1], a[3*i+2]}
	}
	l.X, l.Y, l.Z = a[24], a[25], a[26]
	return l
}

// Total returns the number of coefficients in all bands.
func (l LengthVector3D) Total() int {
	n := 0
	for _, b := range l.bands() {
		n += b.Size()
	}
	return n
}

// Bands1D holds the approximation and detail coefficients of a 1-D
// transform.
type Bands1D[T any] struct {
	A, D []T
	L    LengthVector1D
}

// Pack concatenates A and D.
func (b *Bands1D[T]) Pack() []T {
	out := make([]T, 0, len(b.A)+len(b.D))
	return append(append(out, b.A...), b.D...)
}

// UnpackBands1D splits a packed coefficient vector. The bands alias c.
func UnpackBands1D[T any](c []T, l LengthVector1D) (*Bands1D[T], error) {
	if len(c) != l.Total() {
		return nil, fmt.Errorf("%w: packed %d, want %d", ErrLengthMismatch, len(c), l.Total())
	}
	return &Bands1D[T]{A: c[:l.Approx:l.Approx], D: c[l.Approx:], L: l}, nil
}

// reset sizes the bands for l, reusing existing storage when possible.
func (b *Bands1D[T]) reset(l LengthVector1D) {
	b.L = l
	b.A = grow(b.A, l.Approx)
	b.D = grow(b.D, l.Detail)
}

// Bands2D holds the four sub-bands of a 2-D transform. Each band is stored
// row-major with X varying fastest.
type Bands2D[T any] struct {
	LL, LH, HL, HH []T
	L              LengthVector2D
}

// Pack concatenates the bands in the order LL, LH, HL, HH.
func (b *Bands2D[T]) Pack() []T {
	out := make([]T, 0, len(b.LL)+len(b.LH)+len(b.HL)+len(b.HH))
	for _, s := range [][]T{b.LL, b.LH, b.HL, b.HH} {
		out = append(out, s...)
	}
	return out
}

// UnpackBands2D splits a packed coefficient vector. The bands alias c.
func UnpackBands2D[T any](c []T, l LengthVector2D) (*Bands2D[T], error) {
	if len(c) != l.Total() {
		return nil, fmt.Errorf("%w: packed %d, want %d", ErrLengthMismatch, len(c), l.Total())
	}
	b := &Bands2D[T]{L: l}
	dst := [4]*[]T{&b.LL, &b.LH, &b.HL, &b.HH}
	for i, e := range [4]Extent2{l.LL, l.LH, l.HL, l.HH} {
		n := e.Size()
		*dst[i] = c[:n:n]
		c = c[n:]
	}
	return b, nil
}

func (b *Bands2D[T]) slices() [4]*[]T {
	return [4]*[]T{&b.LL, &b.LH, &b.HL, &b.HH}
}

func (b *Bands2D[T]) reset(l LengthVector2D) {
	b.L = l
	for i, e := range [4]Extent2{l.LL, l.LH, l.HL, l.HH} {
		s := b.slices()[i]
		*s = grow(*s, e.Size())
	}
}

// Bands3D holds the eight sub-bands of a 3-D transform. Each band is stored
// with X varying fastest and Z slowest.
type Bands3D[T any] struct {
	LLL, LLH, LHL, LHH []T
	HLL, HLH, HHL, HHH []T
	L                  LengthVector3D
}

func (b *Bands3D[T]) slices() [8]*[]T {
	return [8]*[]T{&b.LLL, &b.LLH, &b.LHL, &b.LHH, &b.HLL, &b.HLH, &b.HHL, &b.HHH}
}

// Pack concatenates the bands in length vector order.
func (b *Bands3D[T]) Pack() []T {
	n := 0
	for _, s := range b.slices() {
		n += len(*s)
	}
	out := make([]T, 0, n)
	for _, s := range b.slices() {
		out = append(out, *s...)
	}
	return out
}

// UnpackBands3D splits a packed coefficient vector. The bands alias c.
func UnpackBands3D[T any](c []T, l LengthVector3D) (*Bands3D[T], error) {
	if len(c) != l.Total() {
		return nil, fmt.Errorf("%w: packed %d, want %d", ErrLengthMismatch, len(c), l.Total())
	}
	b := &Bands3D[T]{L: l}
	ext := l.bands()
	for i, s := range b.slices() {
		n := ext[i].Size()
		*s = c[:n:n]
		c = c[n:]
	}
	return b, nil
}

func (b *Bands3D[T]) reset(l LengthVector3D) {
	b.L = l
	ext := l.bands()
	for i, s := range b.slices() {
		*s = grow(*s, ext[i].Size())
	}
}

// grow returns s resized to n, reallocating only when the capacity is too
// small.
func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
