// Package plan computes the sub-band geometry of a single-level transform
// along one axis.
//
// The geometry depends only on the signal length, the filter length, the
// filter symmetry and the extension mode. It never depends on sample values,
// which is what allows an inverse transform to be sized from lengths alone.
package plan

import "github.com/mrjoshuak/go-wavelet/internal/extend"

// Filter describes the properties of a filter bank that affect geometry.
type Filter struct {
	Len       int
	Symmetric bool
}

// SymmetricShortcut reports whether a symmetric filter may be applied with
// the shortened symmetric extension. This holds for odd length filters under
// whole-sample symmetry and even length filters under half-sample symmetry.
func (f Filter) SymmetricShortcut(mode extend.Mode) bool {
	if !f.Symmetric {
		return false
	}
	odd := f.Len%2 == 1
	return (odd && mode == extend.SymmetricWhole) || (!odd && mode == extend.SymmetricHalf)
}

// ApproxLength returns the number of approximation coefficients produced
// from n samples.
func ApproxLength(n int, f Filter, mode extend.Mode) int {
	switch {
	case mode == extend.FullyPeriodic:
		return (n + 1) / 2
	case f.SymmetricShortcut(mode):
		return (n + 1) / 2
	default:
		return (n + f.Len - 1) / 2
	}
}

// DetailLength returns the number of detail coefficients produced from n
// samples.
func DetailLength(n int, f Filter, mode extend.Mode) int {
	switch {
	case mode == extend.FullyPeriodic:
		return (n + 1) / 2
	case f.SymmetricShortcut(mode):
		return n / 2
	default:
		return (n + f.Len - 1) / 2
	}
}

// MaxLevel returns the deepest decomposition level supported by n samples and
// a filter of length flen: floor(log2(n/flen))+1, or 0 when n < flen.
func MaxLevel(n, flen int) int {
	if flen < 1 || n < flen {
		return 0
	}
	level := 1
	for m := flen * 2; m <= n; m *= 2 {
		level++
	}
	return level
}

// Axis is the complete single-level geometry of one axis.
type Axis struct {
	// N is the signal length.
	N int
	// Approx and Detail are the sub-band lengths.
	Approx, Detail int
	// Symmetric is set when the symmetric shortcut is active.
	Symmetric bool

	// Pad is the extension applied to each side of the signal before
	// analysis.
	Pad int
	// OddLow and OddHigh select whether decimation of the low and high pass
	// outputs starts at an odd index of the extended signal.
	OddLow, OddHigh bool

	// CoefPad is the extension applied to each side of both coefficient bands
	// before synthesis. It is zero off the symmetric shortcut.
	CoefPad int
	// ApproxLeft, ApproxRight, DetailLeft and DetailRight are the extension
	// modes for the coefficient bands before synthesis.
	ApproxLeft, ApproxRight extend.Mode
	DetailLeft, DetailRight extend.Mode
	// PadDetail is set when the detail band must be padded with one zero up
	// to the approximation length before extension.
	PadDetail bool
}

// New builds the geometry for n samples.
func New(n int, f Filter, mode extend.Mode) Axis {
	a := Axis{
		N:           n,
		Approx:      ApproxLength(n, f, mode),
		Detail:      DetailLength(n, f, mode),
		Symmetric:   f.SymmetricShortcut(mode),
		OddLow:      f.Len%2 == 0,
		OddHigh:     true,
		ApproxLeft:  mode,
		ApproxRight: mode,
		DetailLeft:  mode,
		DetailRight: mode,
	}
	if !a.Symmetric {
		a.Pad = f.Len - 1
		return a
	}

	a.Pad = f.Len >> 1
	a.CoefPad = f.Len >> 2
	oddN := n%2 == 1
	if mode == extend.SymmetricHalf {
		a.DetailLeft = extend.AntisymmetricHalf
		a.DetailRight = extend.AntisymmetricHalf
		if oddN {
			a.ApproxRight = extend.SymmetricWhole
			a.DetailRight = extend.AntisymmetricWhole
		}
		a.PadDetail = a.Approx > a.Detail
	} else {
		a.DetailLeft = extend.SymmetricHalf
		if oddN {
			a.ApproxRight = extend.SymmetricWhole
			a.DetailRight = extend.SymmetricHalf
		} else {
			a.ApproxRight = extend.SymmetricHalf
		}
	}
	return a
}

// ExtendedLen returns the length of the padded analysis input.
func (a Axis) ExtendedLen() int {
	return a.N + 2*a.Pad
}

// DetailSynthLen returns the number of detail coefficients fed to synthesis
// before extension, including the zero pad when PadDetail is set.
func (a Axis) DetailSynthLen() int {
	if a.PadDetail {
		return a.Approx
	}
	return a.Detail
}
