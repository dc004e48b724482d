package filter

import (
	"fmt"
	"math"
)

// coiflets holds the coif1..coif5 scaling filters normalized to unit sum.
// They are scaled by sqrt(2) when a bank is built.
var coiflets = [...][]float64{
	1: {
		-0.051429728471, 0.238929728471, 0.602859456942,
		0.272140543058, -0.051429728471, -0.011070271529,
	},
	2: {
		0.011587596739, -0.029320137980, -0.047639590310, 0.273021046535,
		0.574682393857, 0.294867193696, -0.054085607092, -0.042026480461,
		0.016744410163, 0.003967883613, -0.001289203356, -0.000509505399,
	},
	3: {
		-0.002682418671, 0.005503126709, 0.016583560479, -0.046507764479,
		-0.043220763560, 0.286503335274, 0.561285256870, 0.302983571773,
		-0.050770140755, -0.058196250762, 0.024434094321, 0.011229240962,
		-0.006369601011, -0.001820458916, 0.000790205101, 0.000329665174,
		-0.000050192775, -0.000024465734,
	},
	4: {
		0.000630961046, -0.001152224852, -0.005194524026, 0.011362459244,
		0.018867235378, -0.057464234429, -0.039652648517, 0.293667390895,
		0.553126452562, 0.307157326198, -0.047112738865, -0.068038127051,
		0.027813640153, 0.017735837438, -0.010756318517, -0.004001012886,
		0.002652665946, 0.000895594529, -0.000416500571, -0.000183829769,
		0.000044080354, 0.000022082857, -0.000002304942, -0.000001262175,
	},
	5: {
		-0.0001499638, 0.0002535612, 0.0015402457, -0.0029411108,
		-0.0071637819, 0.0165520664, 0.0199178043, -0.0649972628,
		-0.0368000736, 0.2980923235, 0.5475054294, 0.3097068490,
		-0.0438660508, -0.0746522389, 0.0291958795, 0.0231107770,
		-0.0139736879, -0.0064800900, 0.0047830014, 0.0017206547,
		-0.0011758222, -0.0004512270, 0.0002137298, 0.0000993776,
		-0.0000292321, -0.0000150720, 0.0000026408, 0.0000014593,
		-0.0000001184, -0.0000000673,
	},
}

func init() {
	for m := 1; m < len(coiflets); m++ {
		h := scaled(coiflets[m], math.Sqrt2)
		name := fmt.Sprintf("coif%d", m)
		register(name, func() *Bank { return family(name, h, h, false) })
	}
}
