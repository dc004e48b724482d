package kernel

import (
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/floats"
)

// dot is the inner product used by every convolution in this package. The
// two candidates sum in different orders, so coefficients computed on
// machines that select different kernels may differ in the last ulp.
var dot = dotUnrolled

// impl names the selected dot product implementation.
var impl = "generic"

func init() {
	// Tuning heuristic only. gonum picks its own kernel for the running CPU;
	// these flags just mark machines where deferring to it has measured
	// faster than dotUnrolled.
	if (cpu.X86.HasAVX2 && cpu.X86.HasFMA) || cpu.ARM64.HasASIMD {
		dot = floats.Dot
		impl = "gonum"
	}
}

// Implementation reports which dot product kernel was selected at start-up.
// Results are reproducible bit for bit only between machines reporting the
// same kernel.
func Implementation() string {
	return impl
}

// dotUnrolled computes sum(a[i]*b[i]) over len(a) elements with four
// independent accumulators.
func dotUnrolled(a, b []float64) float64 {
	b = b[:len(a)]
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}
