package wavelet

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// separable computes a 2-D transform with 1-D calls only: every row, then
// every column of the two row outputs.
func separable(t *testing.T, e *Engine, plane []float64, nx, ny int) *Bands2D[float64] {
	t.Helper()
	ax, dx := e.ApproxLength(nx), e.DetailLength(nx)
	ay, dy := e.ApproxLength(ny), e.DetailLength(ny)

	rowA := make([]float64, ax*ny)
	rowD := make([]float64, dx*ny)
	for y := 0; y < ny; y++ {
		b, err := DWT1D(e, plane[y*nx:(y+1)*nx], nil)
		require.NoError(t, err)
		copy(rowA[y*ax:], b.A)
		copy(rowD[y*dx:], b.D)
	}

	columns := func(src []float64, w int) (lo, hi []float64) {
		lo = make([]float64, w*ay)
		hi = make([]float64, w*dy)
		col := make([]float64, ny)
		for x := 0; x < w; x++ {
			for y := range col {
				col[y] = src[y*w+x]
			}
			b, err := DWT1D(e, col, nil)
			require.NoError(t, err)
			for k, v := range b.A {
				lo[k*w+x] = v
			}
			for k, v := range b.D {
				hi[k*w+x] = v
			}
		}
		return lo, hi
	}
	out := &Bands2D[float64]{L: e.Lengths2D(nx, ny)}
	out.LL, out.LH = columns(rowA, ax)
	out.HL, out.HH = columns(rowD, dx)
	return out
}

func TestSeparability(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	tests := []struct {
		wavelet string
		mode    Mode
		nx, ny  int
	}{
		{"haar", ZeroPad, 8, 8},
		{"db2", PeriodicPad, 37, 5},
		{"db4", ConstantPad, 40, 70},
		{"bior2.2", SymmetricWhole, 33, 65},
		{"bior3.3", SymmetricHalf, 64, 9},
		{"coif1", AntisymmetricWhole, 13, 31},
	}
	for _, tt := range tests {
		t.Run(tt.wavelet, func(t *testing.T) {
			e := newEngine(t, tt.wavelet, tt.mode)
			plane := randomSignal(rng, tt.nx*tt.ny)

			got, err := DWT2D(e, plane, tt.nx, tt.ny, nil)
			require.NoError(t, err)
			want := separable(t, e, plane, tt.nx, tt.ny)

			assert.Equal(t, want.L, got.L)
			assert.Equal(t, want.LL, got.LL)
			assert.Equal(t, want.LH, got.LH)
			assert.Equal(t, want.HL, got.HL)
			assert.Equal(t, want.HH, got.HH)
		})
	}
}

func TestRoundTrip2D(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	sizes := [][2]int{{16, 16}, {17, 9}, {9, 40}, {100, 3 * 33}}
	for _, name := range []string{"haar", "db3", "coif2", "bior1.5", "bior2.4", "bior4.4"} {
		for _, mode := range []Mode{ZeroPad, SymmetricHalf, SymmetricWhole, LinearExtrapolate} {
			t.Run(name+"/"+mode.String(), func(t *testing.T) {
				e := newEngine(t, name, mode)
				for _, s := range sizes {
					nx, ny := s[0], s[1]
					if nx < e.FilterLen() || ny < e.FilterLen() {
						continue
					}
					plane := randomSignal(rng, nx*ny)
					b, err := DWT2D(e, plane, nx, ny, nil)
					require.NoError(t, err)
					assert.Equal(t, b.L.Total(), len(b.Pack()))

					got, err := IDWT2D(e, b, nil)
					require.NoError(t, err)
					assert.True(t, floats.EqualApprox(plane, got, tolerance(name)), "%dx%d", nx, ny)
				}
			})
		}
	}
}

func TestSeparabilityFloat32(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	e := newEngine(t, "db4", SymmetricHalf)
	nx, ny := 29, 18
	plane := randomSignal(rng, nx*ny)
	p32 := make([]float32, len(plane))
	for i, v := range plane {
		p32[i] = float32(v)
		plane[i] = float64(p32[i])
	}

	got, err := DWT2D(e, p32, nx, ny, nil)
	require.NoError(t, err)
	want := separable(t, e, plane, nx, ny)

	// Rows stay in float64 between passes, so only the final rounding to
	// float32 separates the two.
	for _, c := range []struct{ got32, want []float64 }{
		{widen(got.LL), want.LL}, {widen(got.LH), want.LH},
		{widen(got.HL), want.HL}, {widen(got.HH), want.HH},
	} {
		assert.True(t, floats.EqualApprox(c.want, c.got32, 1e-5))
	}
}

func widen(x []float32) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = float64(v)
	}
	return y
}

func TestIntRoundTrip2D(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, name := range []string{"intcdf5/3", "inthaar"} {
		t.Run(name, func(t *testing.T) {
			e, err := New(DefaultOptions(name))
			require.NoError(t, err)
			for _, s := range [][2]int{{8, 8}, {33, 17}, {5, 64}} {
				nx, ny := s[0], s[1]
				plane := make([]int16, nx*ny)
				for i := range plane {
					plane[i] = int16(rng.Intn(4096) - 2048)
				}
				b, err := IntDWT2D(e, plane, nx, ny, nil)
				require.NoError(t, err)
				assert.Equal(t, nx*ny, b.L.Total())

				got, err := IntIDWT2D[int16](e, b, nil)
				require.NoError(t, err)
				require.Equal(t, plane, got, "%dx%d", nx, ny)
			}
		})
	}
}

func TestIntExtremes2D(t *testing.T) {
	for _, name := range []string{"intcdf5/3", "inthaar"} {
		t.Run(name, func(t *testing.T) {
			e, err := New(DefaultOptions(name))
			require.NoError(t, err)
			for _, s := range [][2]int{{4, 4}, {7, 5}, {6, 9}} {
				nx, ny := s[0], s[1]
				p16 := make([]int16, nx*ny)
				p32 := make([]int32, nx*ny)
				for i := range p16 {
					p16[i], p32[i] = math.MinInt16, math.MinInt32
					if (i%nx+i/nx)%2 == 1 {
						p16[i], p32[i] = math.MaxInt16, math.MaxInt32
					}
				}

				b16, err := IntDWT2D(e, p16, nx, ny, nil)
				require.NoError(t, err)
				got16, err := IntIDWT2D[int16](e, b16, nil)
				require.NoError(t, err)
				assert.Equal(t, p16, got16, "int16 %dx%d", nx, ny)

				b32, err := IntDWT2D(e, p32, nx, ny, nil)
				require.NoError(t, err)
				got32, err := IntIDWT2D[int32](e, b32, nil)
				require.NoError(t, err)
				assert.Equal(t, p32, got32, "int32 %dx%d", nx, ny)
			}
		})
	}
}

func TestLengthVector2D(t *testing.T) {
	e := newEngine(t, "bior2.2", SymmetricWhole)
	l := e.Lengths2D(9, 6)
	assert.Equal(t, [10]int{5, 3, 5, 3, 4, 3, 4, 3, 9, 6}, l.Array())
	assert.Equal(t, l, LengthVector2DFrom(l.Array()))
	assert.Equal(t, 54, l.Total())
}

func TestErrors2D(t *testing.T) {
	e := newEngine(t, "db2", ZeroPad)

	_, err := DWT2D(e, make([]float64, 12), 4, 3, nil)
	assert.ErrorIs(t, err, ErrInputTooShort)
	assert.Contains(t, err.Error(), "y axis")

	_, err = DWT2D(e, make([]float64, 15), 4, 4, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	b, err := DWT2D(e, make([]float64, 64), 8, 8, nil)
	require.NoError(t, err)
	b.HL = b.HL[1:]
	_, err = IDWT2D(e, b, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	other := newEngine(t, "db3", ZeroPad)
	b, err = DWT2D(e, make([]float64, 64), 8, 8, nil)
	require.NoError(t, err)
	_, err = IDWT2D(other, b, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func BenchmarkDWT2D(b *testing.B) {
	e, err := New(DefaultOptions("bior4.4"))
	require.NoError(b, err)
	const n = 256
	plane := randomSignal(rand.New(rand.NewSource(13)), n*n)
	dst := new(Bands2D[float64])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DWT2D(e, plane, n, n, dst); err != nil {
			b.Fatal(err)
		}
	}
}
