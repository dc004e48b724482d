// Package extend pads finite 1-D signals so that a filter can be applied
// near their ends.
//
// The supported policies mirror the classic Matlab wavelet toolbox modes:
//   - zpd: zero padding
//   - symh/symw: symmetric about the half sample / whole sample
//   - asymh/asymw: antisymmetric variants of the above
//   - sp0/sp1: constant and first order extrapolation
//   - ppd/per: periodic padding
package extend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrjoshuak/go-wavelet/internal/num"
)

// ErrInvalidExtension is returned when a pad width cannot be synthesized from
// the available samples, or when the destination is too short.
var ErrInvalidExtension = errors.New("invalid signal extension")

// Mode selects how samples beyond a signal edge are synthesized.
type Mode int

const (
	// ZeroPad fills the pad with zeros.
	ZeroPad Mode = iota
	// SymmetricHalf reflects about the edge half sample: ... x1 x0 | x0 x1 ...
	SymmetricHalf
	// SymmetricWhole reflects about the edge sample: ... x2 x1 | x0 x1 x2 ...
	SymmetricWhole
	// AntisymmetricHalf is SymmetricHalf with negated values.
	AntisymmetricHalf
	// AntisymmetricWhole is SymmetricWhole with negated values.
	AntisymmetricWhole
	// ConstantPad replicates the edge sample.
	ConstantPad
	// LinearExtrapolate continues the slope of the two outermost samples.
	LinearExtrapolate
	// PeriodicPad wraps samples from the opposite end.
	PeriodicPad
	// FullyPeriodic wraps like PeriodicPad but treats an odd length signal
	// as if its last sample were repeated, giving an even period.
	FullyPeriodic
)

var modeNames = [...]string{
	ZeroPad:            "zpd",
	SymmetricHalf:      "symh",
	SymmetricWhole:     "symw",
	AntisymmetricHalf:  "asymh",
	AntisymmetricWhole: "asymw",
	ConstantPad:        "sp0",
	LinearExtrapolate:  "sp1",
	PeriodicPad:        "ppd",
	FullyPeriodic:      "per",
}

// String returns the short mode name used in configuration files.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m >= ZeroPad && m <= FullyPeriodic
}

// ParseMode maps a mode name to a Mode. Matching is case insensitive and
// "spd" is accepted as an alias for "sp1".
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "spd" {
		return LinearExtrapolate, nil
	}
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown extension mode %q", s)
}

// Extend writes left pad samples, src, then right pad samples into dst,
// converting to the destination type. dst must hold at least
// left+len(src)+right elements; only that prefix is written.
func Extend[S, D num.Number](src []S, dst []D, left, right int, leftMode, rightMode Mode) error {
	n := len(src)
	if left < 0 || right < 0 {
		return fmt.Errorf("%w: negative pad", ErrInvalidExtension)
	}
	if len(dst) < left+n+right {
		return fmt.Errorf("%w: destination holds %d samples, need %d", ErrInvalidExtension, len(dst), left+n+right)
	}
	if err := checkPad(leftMode, n, left); err != nil {
		return fmt.Errorf("left edge: %w", err)
	}
	if err := checkPad(rightMode, n, right); err != nil {
		return fmt.Errorf("right edge: %w", err)
	}

	for i, v := range src {
		dst[left+i] = D(v)
	}
	extendLeft(src, dst[:left], leftMode)
	extendRight(src, dst[left+n:left+n+right], rightMode)
	return nil
}

// checkPad verifies that p samples can be synthesized under m from n samples.
func checkPad(m Mode, n, p int) error {
	if p == 0 {
		if !m.Valid() {
			return fmt.Errorf("%w: unknown mode %v", ErrInvalidExtension, m)
		}
		return nil
	}
	limit := 0
	switch m {
	case ZeroPad:
		return nil
	case ConstantPad:
		limit = p
		if n < 1 {
			limit = -1
		}
	case LinearExtrapolate:
		limit = p
		if n < 2 {
			limit = -1
		}
	case SymmetricHalf, AntisymmetricHalf, PeriodicPad:
		limit = n
	case SymmetricWhole, AntisymmetricWhole:
		limit = n - 1
	case FullyPeriodic:
		limit = n
		if n%2 == 1 {
			limit = n + 1
		}
	default:
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidExtension, m)
	}
	if p > limit {
		return fmt.Errorf("%w: %v cannot pad %d samples from a signal of %d", ErrInvalidExtension, m, p, n)
	}
	return nil
}

// extendLeft fills pad, which ends right before src[0].
func extendLeft[S, D num.Number](src []S, pad []D, m Mode) {
	n, p := len(src), len(pad)
	for c := range pad {
		// k is the distance from the first sample, 1 for the nearest pad slot.
		k := p - c
		switch m {
		case ZeroPad:
			pad[c] = 0
		case SymmetricHalf:
			pad[c] = D(src[k-1])
		case SymmetricWhole:
			pad[c] = D(src[k])
		case AntisymmetricHalf:
			pad[c] = -D(src[k-1])
		case AntisymmetricWhole:
			pad[c] = -D(src[k])
		case ConstantPad:
			pad[c] = D(src[0])
		case LinearExtrapolate:
			x0, x1 := D(src[0]), D(src[1])
			pad[c] = x0 - (x1-x0)*D(k)
		case PeriodicPad:
			pad[c] = D(src[n-k])
		case FullyPeriodic:
			pad[c] = D(src[periodicIndex(n, -k)])
		}
	}
}

// extendRight fills pad, which starts right after src[n-1].
func extendRight[S, D num.Number](src []S, pad []D, m Mode) {
	n := len(src)
	for c := range pad {
		switch m {
		case ZeroPad:
			pad[c] = 0
		case SymmetricHalf:
			pad[c] = D(src[n-1-c])
		case SymmetricWhole:
			pad[c] = D(src[n-2-c])
		case AntisymmetricHalf:
			pad[c] = -D(src[n-1-c])
		case AntisymmetricWhole:
			pad[c] = -D(src[n-2-c])
		case ConstantPad:
			pad[c] = D(src[n-1])
		case LinearExtrapolate:
			xa, xb := D(src[n-1]), D(src[n-2])
			pad[c] = xa - (xb-xa)*D(c+1)
		case PeriodicPad:
			pad[c] = D(src[c])
		case FullyPeriodic:
			pad[c] = D(src[periodicIndex(n, n+c)])
		}
	}
}

// periodicIndex maps position i of the fully periodic extension to a source
// index. Odd length signals behave as if src[n-1] appeared twice, so the
// period is n+1.
func periodicIndex(n, i int) int {
	period := n
	if n%2 == 1 {
		period = n + 1
	}
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		return n - 1
	}
	return i
}
