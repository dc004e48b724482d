package wavelet

import (
	"fmt"
	"math"

	"github.com/mrjoshuak/go-wavelet/internal/extend"
	"github.com/mrjoshuak/go-wavelet/internal/filter"
	"github.com/mrjoshuak/go-wavelet/internal/kernel"
	"github.com/mrjoshuak/go-wavelet/internal/num"
	"github.com/mrjoshuak/go-wavelet/internal/plan"
	"github.com/mrjoshuak/go-wavelet/internal/scratch"
	"github.com/mrjoshuak/go-wavelet/internal/transpose"
)

// acc is the accumulation type of a transform: float64 for the filter bank
// path, int64 for the lifting path.
type acc interface {
	float64 | int64
}

// codec is the per-line arithmetic of one accumulation type.
type codec[V acc] interface {
	// check validates extended data before it is filtered. inverse is set
	// for coefficient bands on their way to synthesis.
	check(buf []V, inverse bool) error
	// analyze splits an extended line into its two bands.
	analyze(ax plan.Axis, ext, cA, cD []V)
	// synthesize rebuilds len(out) samples from extended bands.
	synthesize(ax plan.Axis, cA, cD, out []V)
	// slack is the number of zeroed elements synthesize may read past the
	// end of each extended band.
	slack() int
}

// transform binds a codec to the filter geometry and owns the scratch
// arenas of one accumulation type. Each nesting level has its own arena so
// a 2-D pass can hold plane buffers while its 1-D lines reuse theirs.
type transform[V acc] struct {
	filt  plan.Filter
	mode  extend.Mode
	codec codec[V]

	line  scratch.Arena[V]
	plane scratch.Arena[V]
	volA  scratch.Arena[V]
	volB  scratch.Arena[V]
	// out holds lossless reconstructions before they are narrowed to the
	// caller's sample type.
	out scratch.Arena[V]
}

func newTransform[V acc](f plan.Filter, mode extend.Mode, c codec[V]) *transform[V] {
	return &transform[V]{filt: f, mode: mode, codec: c}
}

// axis returns the geometry of n samples without validating n.
func (t *transform[V]) axis(n int) plan.Axis {
	return plan.New(n, t.filt, t.mode)
}

// analyzeLine runs the forward transform on one line of ax.N samples.
func analyzeLine[S num.Number, V acc, D num.Number](t *transform[V], ax plan.Axis, x []S, cA, cD []D) error {
	n := ax.ExtendedLen()
	buf := t.line.Alloc(n + ax.Approx + ax.Detail)
	ext := buf[:n]
	if err := extend.Extend(x[:ax.N], ext, ax.Pad, ax.Pad, t.mode, t.mode); err != nil {
		return err
	}
	if err := t.codec.check(ext, false); err != nil {
		return err
	}

	a := buf[n : n+ax.Approx]
	d := buf[n+ax.Approx:]
	t.codec.analyze(ax, ext, a, d)
	transpose.Copy(a, cA[:ax.Approx])
	transpose.Copy(d, cD[:ax.Detail])
	return nil
}

// synthesizeLine runs the inverse transform on one pair of bands and writes
// ax.N samples to out.
func synthesizeLine[S num.Number, V acc, D num.Number](t *transform[V], ax plan.Axis, cA, cD []S, out []D) error {
	p := ax.CoefPad
	slack := t.codec.slack()
	aLen := ax.Approx + 2*p
	dLen := ax.DetailSynthLen() + 2*p

	size := aLen + dLen + 2*slack + ax.N
	if ax.PadDetail {
		size += ax.Approx
	}
	buf := t.line.Alloc(size)
	aExt := buf[:aLen+slack]
	dExt := buf[aLen+slack : aLen+dLen+2*slack]
	recon := buf[aLen+dLen+2*slack : aLen+dLen+2*slack+ax.N]

	if err := extend.Extend(cA[:ax.Approx], aExt, p, p, ax.ApproxLeft, ax.ApproxRight); err != nil {
		return fmt.Errorf("approximation band: %w", err)
	}
	var err error
	if ax.PadDetail {
		// The missing final detail coefficient of an odd length signal is
		// restored as zero before extension.
		padded := buf[len(buf)-ax.Approx:]
		transpose.Copy(cD[:ax.Detail], padded)
		padded[ax.Approx-1] = 0
		err = extend.Extend(padded, dExt, p, p, ax.DetailLeft, ax.DetailRight)
	} else {
		err = extend.Extend(cD[:ax.Detail], dExt, p, p, ax.DetailLeft, ax.DetailRight)
	}
	if err != nil {
		return fmt.Errorf("detail band: %w", err)
	}
	if err := t.codec.check(aExt[:aLen], true); err != nil {
		return err
	}
	if err := t.codec.check(dExt[:dLen], true); err != nil {
		return err
	}
	clear(aExt[aLen:])
	clear(dExt[dLen:])

	t.codec.synthesize(ax, aExt, dExt, recon)
	transpose.Copy(recon, out[:ax.N])
	return nil
}

// floatCodec filters with the bank taps in float64.
type floatCodec struct {
	lowRev, highRev []float64
	full, half      *kernel.Synthesizer
	centering       Centering
	abort           bool
}

func newFloatCodec(b *filter.Bank, c Centering, abort bool) *floatCodec {
	return &floatCodec{
		lowRev:    kernel.Reverse(b.LowDecomp),
		highRev:   kernel.Reverse(b.HighDecomp),
		full:      kernel.NewSynthesizer(b.LowRecon, b.HighRecon, true),
		half:      kernel.NewSynthesizer(b.LowRecon, b.HighRecon, false),
		centering: c,
		abort:     abort,
	}
}

func (c *floatCodec) check(buf []float64, _ bool) error {
	for i, v := range buf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if c.abort {
				return fmt.Errorf("%w: %v at extended index %d", ErrNumericInstability, v, i)
			}
			buf[i] = 0
		}
	}
	return nil
}

func (c *floatCodec) analyze(ax plan.Axis, ext, cA, cD []float64) {
	kernel.Analyze(ext, c.lowRev, c.highRev, ax.OddLow, ax.OddHigh, cA, cD)
}

func (c *floatCodec) synthesize(ax plan.Axis, cA, cD, out []float64) {
	s := c.full
	switch c.centering {
	case CenteringHalfFilter:
		s = c.half
	case CenteringAuto:
		if ax.Symmetric {
			s = c.half
		}
	}
	s.Run(cA, cD, out)
}

func (c *floatCodec) slack() int {
	return c.full.Slack()
}

// Magnitude limits of the lossless path. Analysis input within
// maxLiftSample yields coefficients within maxLiftCoef, and neither lifting
// direction overflows int64 inside those limits.
const (
	maxLiftSample = 1 << 60
	maxLiftCoef   = 1 << 61
)

// liftCodec delegates all arithmetic to a reversible lifting scheme.
type liftCodec struct {
	l filter.Lifting
}

func (liftCodec) check(buf []int64, inverse bool) error {
	limit := int64(maxLiftSample)
	if inverse {
		limit = maxLiftCoef
	}
	for i, v := range buf {
		if v > limit || v < -limit {
			return fmt.Errorf("%w: %d at extended index %d exceeds the lossless range", ErrNumericInstability, v, i)
		}
	}
	return nil
}

func (c liftCodec) analyze(ax plan.Axis, ext, cA, cD []int64) {
	c.l.Analysis(ext, ax.Pad, cA, cD)
}

func (c liftCodec) synthesize(ax plan.Axis, cA, cD, out []int64) {
	c.l.Synthesis(cA, cD, ax.CoefPad, out)
}

func (liftCodec) slack() int { return 0 }

// into returns an allocator that reuses dst when it is large enough.
func into[T any](dst []T) func(int) []T {
	return func(n int) []T { return grow(dst, n) }
}

// narrow converts lossless reconstructions to the caller's sample type,
// failing instead of wrapping when a value does not fit.
func narrow[T Integer](src []int64, dst []T) ([]T, error) {
	dst = grow(dst, len(src))
	for i, v := range src {
		if int64(T(v)) != v {
			return nil, fmt.Errorf("%w: reconstructed value %d at index %d overflows %T", ErrNumericInstability, v, i, dst[i])
		}
		dst[i] = T(v)
	}
	return dst, nil
}
