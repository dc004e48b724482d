package filter

import "math"

// biorthogonal describes one member of the CDF biorthogonal spline family.
// dec is the analysis scaling filter. rec is the short synthesis scaling
// filter, stored without its zero padding.
type biorthogonal struct {
	name string
	dec  []float64
	rec  []float64
}

var (
	// Synthesis scaling filters for orders 1, 2 and 3.
	spline1 = []float64{math.Sqrt2 / 2, math.Sqrt2 / 2}
	spline2 = []float64{math.Sqrt2 / 4, math.Sqrt2 / 2, math.Sqrt2 / 4}
	spline3 = []float64{math.Sqrt2 / 8, 3 * math.Sqrt2 / 8, 3 * math.Sqrt2 / 8, math.Sqrt2 / 8}
)

var biorthogonals = []biorthogonal{
	{"bior1.1", spline1, spline1},
	{"bior1.3", []float64{
		-0.0883883476483184405501055452631, 0.0883883476483184405501055452631,
		0.70710678118654752440084436210, 0.70710678118654752440084436210,
		0.0883883476483184405501055452631, -0.0883883476483184405501055452631,
	}, spline1},
	{"bior1.5", []float64{
		0.0165728151840597076031447897368, -0.0165728151840597076031447897368,
		-0.1215339780164378557563951247368, 0.1215339780164378557563951247368,
		0.70710678118654752440084436210, 0.70710678118654752440084436210,
		0.1215339780164378557563951247368, -0.1215339780164378557563951247368,
		-0.0165728151840597076031447897368, 0.0165728151840597076031447897368,
	}, spline1},
	{"bior2.2", []float64{
		-0.1767766952966368811002110905262, 0.3535533905932737622004221810524,
		1.0606601717798212866012665431573, 0.3535533905932737622004221810524,
		-0.1767766952966368811002110905262,
	}, spline2},
	{"bior2.4", []float64{
		0.0331456303681194152062895794737, -0.0662912607362388304125791589473,
		-0.1767766952966368811002110905262, 0.4198446513295125926130013399998,
		0.9943689110435824561886873842099, 0.4198446513295125926130013399998,
		-0.1767766952966368811002110905262, -0.0662912607362388304125791589473,
		0.0331456303681194152062895794737,
	}, spline2},
	{"bior2.6", []float64{
		-0.0069053396600248781679769957237, 0.0138106793200497563359539914474,
		0.0469563096881691715422435709210, -0.1077232986963880994204411332894,
		-0.1698713556366120029322340948025, 0.4474660099696121052849093228945,
		0.9667475524034829435167794013152, 0.4474660099696121052849093228945,
		-0.1698713556366120029322340948025, -0.1077232986963880994204411332894,
		0.0469563096881691715422435709210, 0.0138106793200497563359539914474,
		-0.0069053396600248781679769957237,
	}, spline2},
	{"bior2.8", []float64{
		0.0015105430506304420992449678146, -0.0030210861012608841984899356291,
		-0.0129475118625466465649568669819, 0.0289161098263541773284036695929,
		0.0529984818906909399392234421792, -0.1349130736077360572068505539514,
		-0.1638291834340902345352542235443, 0.4625714404759165262773590010400,
		0.9516421218971785225243297231697, 0.4625714404759165262773590010400,
		-0.1638291834340902345352542235443, -0.1349130736077360572068505539514,
		0.0529984818906909399392234421792, 0.0289161098263541773284036695929,
		-0.0129475118625466465649568669819, -0.0030210861012608841984899356291,
		0.0015105430506304420992449678146,
	}, spline2},
	{"bior3.1", []float64{
		-0.3535533905932737622004221810524, 1.0606601717798212866012665431573,
		1.0606601717798212866012665431573, -0.3535533905932737622004221810524,
	}, spline3},
	{"bior3.3", []float64{
		0.0662912607362388304125791589473, -0.1988737822087164912377374768420,
		-0.1546796083845572709626847042104, 0.9943689110435824561886873842099,
		0.9943689110435824561886873842099, -0.1546796083845572709626847042104,
		-0.1988737822087164912377374768420, 0.0662912607362388304125791589473,
	}, spline3},
	{"bior3.5", []float64{
		-0.0138106793200497563359539914474, 0.0414320379601492690078619743421,
		0.0524805814161890740766251675000, -0.2679271788089652729175074340788,
		-0.0718155324642587329469607555263, 0.9667475524034829435167794013152,
		0.9667475524034829435167794013152, -0.0718155324642587329469607555263,
		-0.2679271788089652729175074340788, 0.0524805814161890740766251675000,
		0.0414320379601492690078619743421, -0.0138106793200497563359539914474,
	}, spline3},
	{"bior3.7", []float64{
		0.0030210861012608841984899356291, -0.0090632583037826525954698068873,
		-0.0168317654213106405344439270765, 0.0746639850740189951912512662623,
		0.0313329787073628846871956180962, -0.3011591259228349991008967259990,
		-0.0264992409453454699696117210896, 0.9516421218971785225243297231697,
		0.9516421218971785225243297231697, -0.0264992409453454699696117210896,
		-0.3011591259228349991008967259990, 0.0313329787073628846871956180962,
		0.0746639850740189951912512662623, -0.0168317654213106405344439270765,
		-0.0090632583037826525954698068873, 0.0030210861012608841984899356291,
	}, spline3},
	{"bior3.9", []float64{
		-0.0006797443727836989446602355165, 0.0020392331183510968339807065496,
		0.0050603192196119810324706421788, -0.0206189126411055346546938106687,
		-0.0141127879301758447558029850103, 0.0991347824942321571990197448581,
		0.0123001362694193142367090236328, -0.3201919683607785695513833204624,
		0.0020500227115698857061181706055, 0.9421257006782067372990864259380,
		0.9421257006782067372990864259380, 0.0020500227115698857061181706055,
		-0.3201919683607785695513833204624, 0.0123001362694193142367090236328,
		0.0991347824942321571990197448581, -0.0141127879301758447558029850103,
		-0.0206189126411055346546938106687, 0.0050603192196119810324706421788,
		0.0020392331183510968339807065496, -0.0006797443727836989446602355165,
	}, spline3},
	{"bior4.4", []float64{
		0.037828455507264, -0.023849465019557, -0.110624404418437,
		0.377402855612831, 0.852698679008894, 0.377402855612831,
		-0.110624404418437, -0.023849465019557, 0.037828455507264,
	}, []float64{
		-0.064538882628697, -0.040689417609164, 0.418092273221617,
		0.788485616405583, 0.418092273221617, -0.0406894176091641,
		-0.0645388826286971,
	}},
}

// centered zero-pads core on both sides to n taps.
func centered(core []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out[(n-len(core))/2:], core)
	return out
}

func init() {
	for _, b := range biorthogonals {
		b := b
		register(b.name, func() *Bank {
			return family(b.name, b.dec, centered(b.rec, len(b.dec)), true)
		})
	}
}
