// Package kernel implements the floating-point convolution and decimation
// steps of a single-level filter bank transform.
//
// The routines operate on already extended signals and coefficient bands;
// boundary handling and buffer sizing belong to the caller.
package kernel

// Reverse returns a reversed copy of taps.
func Reverse(taps []float64) []float64 {
	r := make([]float64, len(taps))
	for i, v := range taps {
		r[len(taps)-1-i] = v
	}
	return r
}

// Analyze convolves the extended signal with both decomposition filters and
// keeps every second output. lowRev and highRev are the decomposition taps in
// reverse order, so that
//
//	cA[k] = sum_j lowRev[j] * ext[oddLow+2k+j]
//	cD[k] = sum_j highRev[j] * ext[oddHigh+2k+j]
//
// Exactly len(cA) and len(cD) coefficients are written.
func Analyze(ext, lowRev, highRev []float64, oddLow, oddHigh bool, cA, cD []float64) {
	f := len(lowRev)
	lo := 0
	if oddLow {
		lo = 1
	}
	for k := range cA {
		s := lo + 2*k
		cA[k] = dot(lowRev, ext[s:s+f])
	}

	f = len(highRev)
	hi := 0
	if oddHigh {
		hi = 1
	}
	for k := range cD {
		s := hi + 2*k
		cD[k] = dot(highRev, ext[s:s+f])
	}
}

// phase is the synthesis rule for output samples of one parity. Output yi
// reads cA from (yi+aShift)>>1 and cD from (yi+dShift)>>1 onwards.
type phase struct {
	aShift, dShift int
	aTaps, dTaps   []float64
}

// Synthesizer reconstructs a signal from approximation and detail bands with
// stride 2 upsampling.
type Synthesizer struct {
	even, odd phase
	flen      int
}

// NewSynthesizer splits the reconstruction filters into their even and odd
// phases.
//
// For even length filters fullConvolution selects the phase alignment of
// full (Matlab style) convolution. When false the alignment depends on the
// half filter length, which matches bands extended by len/4 samples on each
// side. Odd length filters ignore fullConvolution: the approximation band
// always feeds even outputs through the even taps and the detail band feeds
// odd outputs.
func NewSynthesizer(lowRecon, highRecon []float64, fullConvolution bool) *Synthesizer {
	f := len(lowRecon)
	s := &Synthesizer{flen: f}
	switch {
	case f%2 == 1:
		s.even = phase{aShift: 1, dShift: 0, aTaps: strided(lowRecon, f-1), dTaps: strided(highRecon, f-2)}
		s.odd = phase{aShift: 1, dShift: 0, aTaps: strided(lowRecon, f-2), dTaps: strided(highRecon, f-1)}
	case fullConvolution || (f>>1)%2 == 1:
		s.even = phase{aTaps: strided(lowRecon, f-2), dTaps: strided(highRecon, f-2)}
		s.odd = phase{aTaps: strided(lowRecon, f-1), dTaps: strided(highRecon, f-1)}
	default:
		s.even = phase{aShift: 1, dShift: 1, aTaps: strided(lowRecon, f-1), dTaps: strided(highRecon, f-1)}
		s.odd = phase{aShift: 1, dShift: 1, aTaps: strided(lowRecon, f-2), dTaps: strided(highRecon, f-2)}
	}
	return s
}

// strided returns taps[k0], taps[k0-2], ... down to index 0 or 1.
func strided(taps []float64, k0 int) []float64 {
	if k0 < 0 {
		return nil
	}
	out := make([]float64, 0, k0/2+1)
	for k := k0; k >= 0; k -= 2 {
		out = append(out, taps[k])
	}
	return out
}

// Slack is the number of readable elements Run may touch past the end of the
// coefficient data it is meant to consume. Callers zero-fill that many
// trailing elements.
func (s *Synthesizer) Slack() int {
	return s.flen
}

// Run writes len(out) reconstructed samples.
func (s *Synthesizer) Run(cA, cD, out []float64) {
	for yi := range out {
		p := &s.even
		if yi&1 == 1 {
			p = &s.odd
		}
		xa := (yi + p.aShift) >> 1
		xd := (yi + p.dShift) >> 1
		out[yi] = dot(p.aTaps, cA[xa:xa+len(p.aTaps)]) + dot(p.dTaps, cD[xd:xd+len(p.dTaps)])
	}
}
