package filter

import "github.com/mrjoshuak/go-wavelet/internal/lifting"

func init() {
	cdf53 := func() *Bank {
		// The floating-point taps are those of bior2.2, the real-valued
		// counterpart of the integer CDF 5/3 scheme.
		b := constructors["bior2.2"]()
		b.Name = "intbior2.2"
		b.Lifting = lifting.CDF53{}
		return b
	}
	register("intbior2.2", cdf53)
	register("intcdf5/3", cdf53)

	register("inthaar", func() *Bank {
		b := constructors["haar"]()
		b.Name = "inthaar"
		b.Lifting = lifting.Haar{}
		return b
	})
}
