// Package filter provides the wavelet filter banks consumed by the
// transform engine.
//
// Filter design is out of scope: every bank here is built from published tap
// tables. A Bank is immutable once constructed and may be shared between
// engines.
package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mrjoshuak/go-wavelet/internal/extend"
)

var (
	// ErrUnknownFilter is returned by ByName for unregistered names.
	ErrUnknownFilter = errors.New("unknown wavelet filter")
	// ErrInvalidBank is returned by Validate for malformed banks.
	ErrInvalidBank = errors.New("invalid filter bank")
)

// Lifting is a reversible integer implementation of a filter bank.
//
// Analysis reads an extended signal whose first pad elements are the left
// extension and writes len(cA) approximation and len(cD) detail coefficients.
// Synthesis reads coefficient bands that each carry pad extension elements
// on the left and writes len(out) samples. Both must be exact inverses when
// the extension modes follow the symmetric shortcut rules.
//
// Pad reports the smallest extensions Analysis and Synthesis can work with.
// A bank whose geometry provides less cannot use the scheme.
type Lifting interface {
	Analysis(ext []int64, pad int, cA, cD []int64)
	Synthesis(cA, cD []int64, pad int, out []int64)
	Pad() (analysis, synthesis int)
}

// Bank is a two-channel filter bank. All four tap slices have the same
// length.
type Bank struct {
	// Name identifies the bank, for example "db4" or "bior2.2".
	Name string
	// LowDecomp and HighDecomp are the analysis filters.
	LowDecomp, HighDecomp []float64
	// LowRecon and HighRecon are the synthesis filters.
	LowRecon, HighRecon []float64
	// Symmetric is set for linear phase banks, which allows the shortened
	// symmetric extension.
	Symmetric bool
	// Lifting is the reversible integer implementation, nil when the bank
	// has none.
	Lifting Lifting
}

// Len returns the number of taps.
func (b *Bank) Len() int {
	return len(b.LowDecomp)
}

// Validate checks that the bank is usable by the engine.
func (b *Bank) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil bank", ErrInvalidBank)
	}
	n := len(b.LowDecomp)
	if n < 2 {
		return fmt.Errorf("%w: %q has %d taps", ErrInvalidBank, b.Name, n)
	}
	if len(b.HighDecomp) != n || len(b.LowRecon) != n || len(b.HighRecon) != n {
		return fmt.Errorf("%w: %q tap counts differ (%d/%d/%d/%d)", ErrInvalidBank, b.Name,
			n, len(b.HighDecomp), len(b.LowRecon), len(b.HighRecon))
	}
	return nil
}

// family builds the four filters of an orthogonal or biorthogonal bank from
// the synthesis low-pass taps rec and the analysis low-pass taps dec:
//
//	LowDecomp  = reverse(dec)
//	HighDecomp = reverse(qmf(rec))
//	LowRecon   = rec
//	HighRecon  = qmf(dec)
//
// where qmf reverses and negates every odd indexed output. For orthogonal
// banks dec and rec are the same table.
func family(name string, dec, rec []float64, symmetric bool) *Bank {
	return &Bank{
		Name:       name,
		LowDecomp:  reversed(dec),
		HighDecomp: reversed(qmf(rec)),
		LowRecon:   append([]float64(nil), rec...),
		HighRecon:  qmf(dec),
		Symmetric:  symmetric,
	}
}

func reversed(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func qmf(in []float64) []float64 {
	n := len(in)
	out := make([]float64, n)
	for i := range out {
		out[i] = in[n-1-i]
		if i%2 == 1 {
			out[i] = -out[i]
		}
	}
	return out
}

func scaled(in []float64, k float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = v * k
	}
	return out
}

// constructors maps every registered name to its bank builder.
var constructors = map[string]func() *Bank{}

func register(name string, fn func() *Bank) {
	constructors[name] = fn
}

// ByName returns a freshly built bank for a registered name. Names are case
// insensitive.
func ByName(name string) (*Bank, error) {
	fn, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return fn(), nil
}

// Names returns the registered filter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DefaultMode returns the extension mode that yields a non-expansive
// transform for the named filter: half-sample symmetry for even length
// symmetric banks, whole-sample symmetry for odd length ones and constant
// padding for everything else.
func DefaultMode(name string) extend.Mode {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bior1.1", "bior1.3", "bior1.5",
		"bior3.1", "bior3.3", "bior3.5", "bior3.7", "bior3.9",
		"inthaar":
		return extend.SymmetricHalf
	case "bior2.2", "bior2.4", "bior2.6", "bior2.8", "bior4.4",
		"intbior2.2", "intcdf5/3":
		return extend.SymmetricWhole
	default:
		return extend.ConstantPad
	}
}
