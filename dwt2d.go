package wavelet

import (
	"fmt"

	"github.com/mrjoshuak/go-wavelet/internal/num"
	"github.com/mrjoshuak/go-wavelet/internal/plan"
	"github.com/mrjoshuak/go-wavelet/internal/transpose"
)

// DWT2D computes a single-level separable forward transform of an nx by ny
// plane stored row-major with X varying fastest.
//
// The result equals a DWT1D of every row followed by a DWT1D of every
// column of the row outputs. For float64 the match is exact. For float32 it
// is within rounding, since intermediate rows are kept in float64 here
// instead of being rounded to float32 between the passes.
func DWT2D[T Float](e *Engine, plane []T, nx, ny int, dst *Bands2D[T]) (*Bands2D[T], error) {
	b, err := dwt2d(e, e.fl, plane, nx, ny, dst)
	return b, e.done("dwt2d", err)
}

// IDWT2D reconstructs the plane described by b.
func IDWT2D[T Float](e *Engine, b *Bands2D[T], dst []T) ([]T, error) {
	out, err := idwt2d(e, e.fl, b, into(dst))
	return out, e.done("idwt2d", err)
}

// IntDWT2D is the lossless counterpart of DWT2D. Samples beyond ±2^59 may be
// rejected with ErrNumericInstability.
func IntDWT2D[T Integer](e *Engine, plane []T, nx, ny int, dst *Bands2D[int64]) (*Bands2D[int64], error) {
	t, err := e.lossless()
	if err != nil {
		return nil, e.done("intdwt2d", err)
	}
	b, err := dwt2d(e, t, plane, nx, ny, dst)
	return b, e.done("intdwt2d", err)
}

// IntIDWT2D exactly inverts IntDWT2D.
func IntIDWT2D[T Integer](e *Engine, b *Bands2D[int64], dst []T) ([]T, error) {
	t, err := e.lossless()
	if err != nil {
		return nil, e.done("intidwt2d", err)
	}
	wide, err := idwt2d(e, t, b, t.out.Alloc)
	if err != nil {
		return nil, e.done("intidwt2d", err)
	}
	out, err := narrow(wide, dst)
	return out, e.done("intidwt2d", err)
}

// Lengths2D returns the length vector of an nx by ny plane.
func (e *Engine) Lengths2D(nx, ny int) LengthVector2D {
	return lengths2D(e.fl.axis(nx), e.fl.axis(ny))
}

func lengths2D(ax, ay plan.Axis) LengthVector2D {
	return LengthVector2D{
		LL: Extent2{ax.Approx, ay.Approx},
		LH: Extent2{ax.Approx, ay.Detail},
		HL: Extent2{ax.Detail, ay.Approx},
		HH: Extent2{ax.Detail, ay.Detail},
		X:  ax.N,
		Y:  ay.N,
	}
}

// axes2 validates both axes of a plane.
func (e *Engine) axes2(nx, ny int) (ax, ay plan.Axis, err error) {
	if ax, err = e.axis(nx); err != nil {
		return ax, ay, fmt.Errorf("x axis: %w", err)
	}
	if ay, err = e.axis(ny); err != nil {
		return ax, ay, fmt.Errorf("y axis: %w", err)
	}
	return ax, ay, nil
}

func dwt2d[S num.Number, V acc, D num.Number](e *Engine, t *transform[V], plane []S, nx, ny int, dst *Bands2D[D]) (*Bands2D[D], error) {
	ax, ay, err := e.axes2(nx, ny)
	if err != nil {
		return nil, err
	}
	if len(plane) != nx*ny {
		return nil, fmt.Errorf("%w: plane has %d samples, want %dx%d", ErrLengthMismatch, len(plane), nx, ny)
	}
	if dst == nil {
		dst = new(Bands2D[D])
	}
	dst.reset(lengths2D(ax, ay))

	e.log.Debug("forward 2d", "nx", nx, "ny", ny)
	if err := forward2D(t, ax, ay, plane, dst.LL, dst.LH, dst.HL, dst.HH); err != nil {
		return nil, err
	}
	return dst, nil
}

func idwt2d[S num.Number, V acc, D num.Number](e *Engine, t *transform[V], b *Bands2D[S], alloc func(int) []D) ([]D, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil bands", ErrLengthMismatch)
	}
	ax, ay, err := e.axes2(b.L.X, b.L.Y)
	if err != nil {
		return nil, err
	}
	if err := checkBands2D(b, lengths2D(ax, ay)); err != nil {
		return nil, err
	}

	out := alloc(ax.N * ay.N)
	e.log.Debug("inverse 2d", "nx", ax.N, "ny", ay.N)
	if err := inverse2D(t, ax, ay, b.LL, b.LH, b.HL, b.HH, out); err != nil {
		return nil, err
	}
	return out, nil
}

func checkBands2D[T any](b *Bands2D[T], want LengthVector2D) error {
	if b.L != want {
		return fmt.Errorf("%w: vector %v, engine derives %v", ErrLengthMismatch, b.L.Array(), want.Array())
	}
	for i, e := range [4]Extent2{want.LL, want.LH, want.HL, want.HH} {
		if n := len(*b.slices()[i]); n != e.Size() {
			return fmt.Errorf("%w: band %d has %d coefficients, want %d", ErrLengthMismatch, i, n, e.Size())
		}
	}
	return nil
}

// forward2D transforms the rows of plane into X-approximation and X-detail
// planes, then transforms their columns.
func forward2D[S num.Number, V acc, D num.Number](t *transform[V], ax, ay plan.Axis, plane []S, ll, lh, hl, hh []D) error {
	nx, ny := ax.N, ay.N
	w := max(ax.Approx, ax.Detail)
	buf := t.plane.Alloc(ny*(ax.Approx+ax.Detail) + columnScratch(ay, w))
	rowA := buf[:ny*ax.Approx]
	rowD := buf[ny*ax.Approx : ny*(ax.Approx+ax.Detail)]
	scratch := buf[ny*(ax.Approx+ax.Detail):]

	for y := 0; y < ny; y++ {
		err := analyzeLine(t, ax, plane[y*nx:(y+1)*nx], rowA[y*ax.Approx:], rowD[y*ax.Detail:])
		if err != nil {
			return fmt.Errorf("row %d: %w", y, err)
		}
	}
	if err := forwardColumns(t, ay, rowA, ax.Approx, ll, lh, scratch); err != nil {
		return err
	}
	return forwardColumns(t, ay, rowD, ax.Detail, hl, hh, scratch)
}

// inverse2D mirrors forward2D: columns first, then rows.
func inverse2D[S num.Number, V acc, D num.Number](t *transform[V], ax, ay plan.Axis, ll, lh, hl, hh []S, plane []D) error {
	nx, ny := ax.N, ay.N
	w := max(ax.Approx, ax.Detail)
	buf := t.plane.Alloc(ny*(ax.Approx+ax.Detail) + columnScratch(ay, w))
	rowA := buf[:ny*ax.Approx]
	rowD := buf[ny*ax.Approx : ny*(ax.Approx+ax.Detail)]
	scratch := buf[ny*(ax.Approx+ax.Detail):]

	if err := inverseColumns(t, ay, ll, lh, ax.Approx, rowA, scratch); err != nil {
		return err
	}
	if err := inverseColumns(t, ay, hl, hh, ax.Detail, rowD, scratch); err != nil {
		return err
	}
	for y := 0; y < ny; y++ {
		err := synthesizeLine(t, ax, rowA[y*ax.Approx:(y+1)*ax.Approx], rowD[y*ax.Detail:(y+1)*ax.Detail], plane[y*nx:(y+1)*nx])
		if err != nil {
			return fmt.Errorf("row %d: %w", y, err)
		}
	}
	return nil
}

// columnScratch is the scratch needed to transform width columns along ay.
func columnScratch(ay plan.Axis, width int) int {
	return width * (ay.N + ay.Approx + ay.Detail)
}

// forwardColumns transforms the columns of src, ay.N rows of width samples.
// The columns are transposed to contiguous lines, transformed, and the
// results transposed back into lo and hi.
func forwardColumns[V acc, D num.Number](t *transform[V], ay plan.Axis, src []V, width int, lo, hi []D, scratch []V) error {
	n := ay.N
	tr := scratch[:width*n]
	loT := scratch[width*n : width*(n+ay.Approx)]
	hiT := scratch[width*(n+ay.Approx) : width*(n+ay.Approx+ay.Detail)]

	transpose.Blocked(src[:n*width], tr, width, n)
	for c := 0; c < width; c++ {
		err := analyzeLine(t, ay, tr[c*n:(c+1)*n], loT[c*ay.Approx:], hiT[c*ay.Detail:])
		if err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
	}
	transpose.Blocked(loT, lo[:ay.Approx*width], ay.Approx, width)
	transpose.Blocked(hiT, hi[:ay.Detail*width], ay.Detail, width)
	return nil
}

// inverseColumns rebuilds ay.N rows of width samples from the column bands
// lo and hi.
func inverseColumns[S num.Number, V acc](t *transform[V], ay plan.Axis, lo, hi []S, width int, out, scratch []V) error {
	n := ay.N
	tr := scratch[:width*n]
	loT := scratch[width*n : width*(n+ay.Approx)]
	hiT := scratch[width*(n+ay.Approx) : width*(n+ay.Approx+ay.Detail)]

	transpose.Blocked(lo[:ay.Approx*width], loT, width, ay.Approx)
	transpose.Blocked(hi[:ay.Detail*width], hiT, width, ay.Detail)
	for c := 0; c < width; c++ {
		a := loT[c*ay.Approx : (c+1)*ay.Approx]
		d := hiT[c*ay.Detail : (c+1)*ay.Detail]
		if err := synthesizeLine(t, ay, a, d, tr[c*n:(c+1)*n]); err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
	}
	transpose.Blocked(tr, out[:n*width], n, width)
	return nil
}
