// Package lifting implements reversible integer wavelet transforms.
//
// Two lifting schemes are provided:
//   - CDF 5/3 (LeGall), the reversible filter of JPEG 2000
//   - Haar (S-transform)
//
// Both operate on pre-extended inputs. The caller pads the signal before
// analysis and pads the coefficient bands before synthesis, so the lifting
// steps themselves contain no boundary cases.
package lifting

// CDF53 is the reversible CDF 5/3 lifting scheme:
//
//	D[n] = X[2n+1] - floor((X[2n] + X[2n+2]) / 2)
//	A[n] = X[2n] + floor((D[n-1] + D[n] + 2) / 4)
//
// Analysis needs two extension samples on each side of the signal and
// Synthesis one on each side of both bands.
type CDF53 struct{}

// Analysis implements filter.Lifting.
func (CDF53) Analysis(ext []int64, pad int, cA, cD []int64) {
	// x[j+2] is signal sample j, so x[0] and x[1] are left extension.
	x := ext[pad-2:]

	// Step 1: predict odd samples (high-pass)
	i := 0
	for ; i+4 <= len(cD); i += 4 {
		j := 2*i + 2
		cD[i] = x[j+1] - ((x[j] + x[j+2]) >> 1)
		cD[i+1] = x[j+3] - ((x[j+2] + x[j+4]) >> 1)
		cD[i+2] = x[j+5] - ((x[j+4] + x[j+6]) >> 1)
		cD[i+3] = x[j+7] - ((x[j+6] + x[j+8]) >> 1)
	}
	for ; i < len(cD); i++ {
		j := 2*i + 2
		cD[i] = x[j+1] - ((x[j] + x[j+2]) >> 1)
	}

	// Step 2: update even samples (low-pass). The detail coefficients left
	// of the first and right of the last are rebuilt from the extension.
	prev := x[1] - ((x[0] + x[2]) >> 1)
	for i := range cA {
		var cur int64
		if i < len(cD) {
			cur = cD[i]
		} else {
			j := 2*i + 2
			cur = x[j+1] - ((x[j] + x[j+2]) >> 1)
		}
		cA[i] = x[2*i+2] + ((prev + cur + 2) >> 2)
		prev = cur
	}
}

// Pad implements filter.Lifting.
func (CDF53) Pad() (analysis, synthesis int) { return 2, 1 }

// Synthesis implements filter.Lifting.
func (CDF53) Synthesis(cA, cD []int64, pad int, out []int64) {
	n := len(out)
	if n == 0 {
		return
	}
	// a[i+1] and d[i+1] are coefficient i; a[0] and d[0] are left extension.
	a := cA[pad-1:]
	d := cD[pad-1:]

	// Undo step 2: even samples
	for i := 0; 2*i < n; i++ {
		out[2*i] = a[i+1] - ((d[i] + d[i+1] + 2) >> 2)
	}

	// Undo step 1: odd samples
	for i := 0; 2*i+1 < n; i++ {
		var next int64
		if 2*i+2 < n {
			next = out[2*i+2]
		} else {
			next = a[i+2] - ((d[i+1] + d[i+2] + 2) >> 2)
		}
		out[2*i+1] = d[i+1] + ((out[2*i] + next) >> 1)
	}
}

// Haar is the reversible S-transform:
//
//	D[n] = X[2n+1] - X[2n]
//	A[n] = X[2n] + floor(D[n] / 2)
//
// Analysis of an odd length signal reads one extension sample on the right.
// Synthesis needs no extension.
type Haar struct{}

// Analysis implements filter.Lifting.
func (Haar) Analysis(ext []int64, pad int, cA, cD []int64) {
	x := ext[pad:]
	for i := range cA {
		d := x[2*i+1] - x[2*i]
		cA[i] = x[2*i] + (d >> 1)
		if i < len(cD) {
			cD[i] = d
		}
	}
}

// Pad implements filter.Lifting.
func (Haar) Pad() (analysis, synthesis int) { return 1, 0 }

// Synthesis implements filter.Lifting.
func (Haar) Synthesis(cA, cD []int64, pad int, out []int64) {
	n := len(out)
	a := cA[pad:]
	d := cD[pad:]
	for i := 0; 2*i < n; i++ {
		x0 := a[i] - (d[i] >> 1)
		out[2*i] = x0
		if 2*i+1 < n {
			out[2*i+1] = d[i] + x0
		}
	}
}
