// Package wavelet implements single-level discrete wavelet transforms on
// 1-D signals, 2-D planes and 3-D volumes.
//
// The engine is the numerical core of multiresolution storage for large
// gridded data: a forward transform splits a block into approximation and
// detail sub-bands, and the inverse rebuilds the block exactly from the
// sub-bands and their length vector.
//
// Basic usage:
//
//	e, err := wavelet.New(wavelet.DefaultOptions("bior4.4"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bands, err := wavelet.DWT2D(e, plane, nx, ny, nil)
//	...
//	plane, err = wavelet.IDWT2D(e, bands, plane)
//
// Floating-point samples go through the filter bank convolution. Integer
// samples go through the filter's reversible lifting scheme and reconstruct
// bit-exactly; only filters such as "intbior2.2" and "inthaar" provide one.
//
// An Engine reuses scratch memory between calls and must not be used from
// more than one goroutine at a time. Create one Engine per worker.
package wavelet

import (
	"fmt"
	"log/slog"

	"github.com/mrjoshuak/go-wavelet/internal/extend"
	"github.com/mrjoshuak/go-wavelet/internal/filter"
	"github.com/mrjoshuak/go-wavelet/internal/num"
	"github.com/mrjoshuak/go-wavelet/internal/plan"
)

// Float is the set of sample types accepted by the floating-point
// transforms.
type Float = num.Float

// Integer is the set of sample types accepted by the lossless transforms.
type Integer = num.Integer

// Mode selects how samples beyond a signal edge are synthesized.
type Mode = extend.Mode

// Extension modes.
const (
	ZeroPad            = extend.ZeroPad
	SymmetricHalf      = extend.SymmetricHalf
	SymmetricWhole     = extend.SymmetricWhole
	AntisymmetricHalf  = extend.AntisymmetricHalf
	AntisymmetricWhole = extend.AntisymmetricWhole
	ConstantPad        = extend.ConstantPad
	LinearExtrapolate  = extend.LinearExtrapolate
	PeriodicPad        = extend.PeriodicPad
	FullyPeriodic      = extend.FullyPeriodic
)

// ParseMode maps a mode name such as "symh" or "per" to a Mode.
func ParseMode(s string) (Mode, error) {
	return extend.ParseMode(s)
}

// Filter is a two-channel filter bank. Custom banks can be passed through
// Options.Filter.
type Filter = filter.Bank

// Lifting is a reversible integer implementation of a filter bank.
type Lifting = filter.Lifting

// FilterByName returns a registered filter bank, for example "haar", "db4",
// "coif2", "bior2.2" or "intcdf5/3".
func FilterByName(name string) (*Filter, error) {
	return filter.ByName(name)
}

// Wavelets returns the names of all registered filter banks.
func Wavelets() []string {
	return filter.Names()
}

// DefaultMode returns the extension mode that gives a non-expansive
// transform for the named wavelet.
func DefaultMode(wavelet string) Mode {
	return filter.DefaultMode(wavelet)
}

// Centering selects the phase alignment used to reconstruct from even length
// filters.
type Centering int

const (
	// CenteringAuto uses full convolution alignment unless the symmetric
	// shortcut is active, in which case the alignment follows the half
	// filter length. This matches the forward transform in both cases.
	CenteringAuto Centering = iota
	// CenteringFullConvolution always uses full convolution alignment.
	CenteringFullConvolution
	// CenteringHalfFilter always uses the half filter length alignment.
	CenteringHalfFilter
)

// String returns the string representation of the centering.
func (c Centering) String() string {
	switch c {
	case CenteringAuto:
		return "auto"
	case CenteringFullConvolution:
		return "full-convolution"
	case CenteringHalfFilter:
		return "half-filter"
	default:
		return "Unknown"
	}
}

// Options configures an Engine.
type Options struct {
	// Wavelet names a registered filter bank. Ignored when Filter is set.
	Wavelet string

	// Filter is a custom filter bank. It must not be modified while the
	// engine is in use.
	Filter *Filter

	// Mode is the boundary extension mode. FullyPeriodic is accepted for
	// length queries but rejected by every transform.
	Mode Mode

	// Centering selects the reconstruction alignment for even length
	// filters. Forcing an alignment that differs from CenteringAuto breaks
	// perfect reconstruction of this engine's own output; it exists to read
	// coefficients produced by other tools.
	Centering Centering

	// AbortOnInvalidFloat makes transforms fail with ErrNumericInstability
	// on NaN or infinite samples. When false such samples are replaced by 0.
	AbortOnInvalidFloat bool

	// Logger receives debug traces. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns options for the named wavelet with its default
// extension mode.
func DefaultOptions(wavelet string) *Options {
	return &Options{
		Wavelet: wavelet,
		Mode:    filter.DefaultMode(wavelet),
	}
}

// Engine performs single-level transforms with one filter bank and one
// extension mode. It owns growth-only scratch arenas that are reused across
// calls, so an Engine must not be used concurrently.
type Engine struct {
	bank      *filter.Bank
	mode      Mode
	centering Centering
	log       *slog.Logger

	fl *transform[float64]
	in *transform[int64]

	lastErr error
}

// New returns an Engine configured by o.
func New(o *Options) (*Engine, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil options", ErrConfiguration)
	}

	bank := o.Filter
	if bank == nil {
		if o.Wavelet == "" {
			return nil, fmt.Errorf("%w: no wavelet", ErrConfiguration)
		}
		var err error
		bank, err = filter.ByName(o.Wavelet)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}
	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if !o.Mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, o.Mode)
	}
	if o.Centering < CenteringAuto || o.Centering > CenteringHalfFilter {
		return nil, fmt.Errorf("%w: centering %d", ErrConfiguration, int(o.Centering))
	}

	log := o.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	pf := plan.Filter{Len: bank.Len(), Symmetric: bank.Symmetric}
	e := &Engine{
		bank:      bank,
		mode:      o.Mode,
		centering: o.Centering,
		log:       log.With("wavelet", bank.Name, "mode", o.Mode.String()),
		fl:        newTransform[float64](pf, o.Mode, newFloatCodec(bank, o.Centering, o.AbortOnInvalidFloat)),
	}
	if bank.Lifting != nil {
		e.in = newTransform[int64](pf, o.Mode, liftCodec{bank.Lifting})
	}
	return e, nil
}

// Wavelet returns the name of the filter bank.
func (e *Engine) Wavelet() string {
	return e.bank.Name
}

// Mode returns the extension mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// FilterLen returns the number of filter taps.
func (e *Engine) FilterLen() int {
	return e.bank.Len()
}

// Lossless reports whether the integer transforms are available.
func (e *Engine) Lossless() bool {
	_, err := e.lossless()
	return err == nil
}

// ApproxLength returns the number of approximation coefficients produced
// from n samples along one axis.
func (e *Engine) ApproxLength(n int) int {
	return plan.ApproxLength(n, e.fl.filt, e.mode)
}

// DetailLength returns the number of detail coefficients produced from n
// samples along one axis.
func (e *Engine) DetailLength(n int) int {
	return plan.DetailLength(n, e.fl.filt, e.mode)
}

// MaxLevel returns the number of decomposition levels n samples can
// support. Single-level transforms need at least 1.
func (e *Engine) MaxLevel(n int) int {
	return plan.MaxLevel(n, e.bank.Len())
}

// LastError returns the most recent transform failure, or nil if no call
// has failed yet.
func (e *Engine) LastError() error {
	return e.lastErr
}

// axis validates one axis of n samples and returns its geometry.
func (e *Engine) axis(n int) (plan.Axis, error) {
	if e.mode == FullyPeriodic {
		return plan.Axis{}, fmt.Errorf("%w: %v at a single level", ErrUnsupportedMode, e.mode)
	}
	if plan.MaxLevel(n, e.bank.Len()) < 1 {
		return plan.Axis{}, fmt.Errorf("%w: %d samples, %d taps", ErrInputTooShort, n, e.bank.Len())
	}
	return e.fl.axis(n), nil
}

// lossless returns the integer transform or the reason it is unavailable.
func (e *Engine) lossless() (*transform[int64], error) {
	if e.in == nil {
		return nil, fmt.Errorf("%w: %s has no lifting scheme", ErrConfiguration, e.bank.Name)
	}
	if !e.in.filt.SymmetricShortcut(e.mode) {
		return nil, fmt.Errorf("%w: lifting needs symmetric extension, have %v", ErrUnsupportedMode, e.mode)
	}
	ax := e.in.axis(e.bank.Len())
	if pa, ps := e.bank.Lifting.Pad(); ax.Pad < pa || ax.CoefPad < ps {
		return nil, fmt.Errorf("%w: %d taps give extensions %d/%d, lifting needs %d/%d",
			ErrConfiguration, e.bank.Len(), ax.Pad, ax.CoefPad, pa, ps)
	}
	return e.in, nil
}

// done records err as the last failure of op.
func (e *Engine) done(op string, err error) error {
	if err == nil {
		return nil
	}
	err = fmt.Errorf("%s: %w", op, err)
	e.lastErr = err
	e.log.Debug("transform failed", "op", op, "err", err)
	return err
}
