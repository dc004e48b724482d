package wavelet

import (
	"fmt"

	"github.com/mrjoshuak/go-wavelet/internal/num"
	"github.com/mrjoshuak/go-wavelet/internal/plan"
)

// DWT1D computes a single-level forward transform of x. When dst is non-nil
// its bands are resized and reused; otherwise a new Bands1D is allocated.
func DWT1D[T Float](e *Engine, x []T, dst *Bands1D[T]) (*Bands1D[T], error) {
	b, err := dwt1d(e, e.fl, x, dst)
	return b, e.done("dwt1d", err)
}

// IDWT1D reconstructs the signal described by b. The result is written to
// dst when it has enough capacity.
func IDWT1D[T Float](e *Engine, b *Bands1D[T], dst []T) ([]T, error) {
	out, err := idwt1d(e, e.fl, b, into(dst))
	return out, e.done("idwt1d", err)
}

// IntDWT1D computes a single-level lossless forward transform of x with the
// filter's lifting scheme. Coefficients are always int64 since they need
// more range than the samples.
//
// Samples beyond ±2^60 are rejected with ErrNumericInstability.
func IntDWT1D[T Integer](e *Engine, x []T, dst *Bands1D[int64]) (*Bands1D[int64], error) {
	t, err := e.lossless()
	if err != nil {
		return nil, e.done("intdwt1d", err)
	}
	b, err := dwt1d(e, t, x, dst)
	return b, e.done("intdwt1d", err)
}

// IntIDWT1D exactly inverts IntDWT1D. Reconstructed values that do not fit
// in T fail with ErrNumericInstability.
func IntIDWT1D[T Integer](e *Engine, b *Bands1D[int64], dst []T) ([]T, error) {
	t, err := e.lossless()
	if err != nil {
		return nil, e.done("intidwt1d", err)
	}
	wide, err := idwt1d(e, t, b, t.out.Alloc)
	if err != nil {
		return nil, e.done("intidwt1d", err)
	}
	out, err := narrow(wide, dst)
	return out, e.done("intidwt1d", err)
}

// Lengths1D returns the length vector of an n sample signal.
func (e *Engine) Lengths1D(n int) LengthVector1D {
	ax := e.fl.axis(n)
	return LengthVector1D{Approx: ax.Approx, Detail: ax.Detail, N: n}
}

func dwt1d[S num.Number, V acc, D num.Number](e *Engine, t *transform[V], x []S, dst *Bands1D[D]) (*Bands1D[D], error) {
	ax, err := e.axis(len(x))
	if err != nil {
		return nil, err
	}
	if dst == nil {
		dst = new(Bands1D[D])
	}
	dst.reset(LengthVector1D{Approx: ax.Approx, Detail: ax.Detail, N: ax.N})

	e.log.Debug("forward 1d", "n", ax.N, "approx", ax.Approx, "detail", ax.Detail)
	if err := analyzeLine(t, ax, x, dst.A, dst.D); err != nil {
		return nil, err
	}
	return dst, nil
}

func idwt1d[S num.Number, V acc, D num.Number](e *Engine, t *transform[V], b *Bands1D[S], alloc func(int) []D) ([]D, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil bands", ErrLengthMismatch)
	}
	ax, err := e.axis(b.L.N)
	if err != nil {
		return nil, err
	}
	if err := checkAxis(ax, b.L.Approx, b.L.Detail); err != nil {
		return nil, err
	}
	if len(b.A) != ax.Approx || len(b.D) != ax.Detail {
		return nil, fmt.Errorf("%w: bands have %d+%d coefficients, want %d+%d",
			ErrLengthMismatch, len(b.A), len(b.D), ax.Approx, ax.Detail)
	}

	out := alloc(ax.N)
	e.log.Debug("inverse 1d", "n", ax.N)
	if err := synthesizeLine(t, ax, b.A, b.D, out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkAxis verifies that recorded band lengths agree with the geometry the
// engine derives for the same signal length.
func checkAxis(ax plan.Axis, approx, detail int) error {
	if approx != ax.Approx || detail != ax.Detail {
		return fmt.Errorf("%w: length %d gives %d+%d coefficients, vector has %d+%d",
			ErrLengthMismatch, ax.N, ax.Approx, ax.Detail, approx, detail)
	}
	return nil
}
