package wavelet

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestConservation3D(t *testing.T) {
	tests := []struct {
		wavelet    string
		mode       Mode
		nx, ny, nz int
	}{
		{"haar", ZeroPad, 8, 8, 8},
		{"db2", ConstantPad, 9, 5, 12},
		{"bior2.2", SymmetricWhole, 7, 11, 5},
		{"bior3.1", SymmetricHalf, 6, 9, 4},
	}
	for _, tt := range tests {
		t.Run(tt.wavelet, func(t *testing.T) {
			e := newEngine(t, tt.wavelet, tt.mode)
			vol := make([]float64, tt.nx*tt.ny*tt.nz)
			b, err := DWT3D(e, vol, tt.nx, tt.ny, tt.nz, nil)
			require.NoError(t, err)

			want := (e.ApproxLength(tt.nx) + e.DetailLength(tt.nx)) *
				(e.ApproxLength(tt.ny) + e.DetailLength(tt.ny)) *
				(e.ApproxLength(tt.nz) + e.DetailLength(tt.nz))
			assert.Equal(t, want, len(b.Pack()))
			assert.Equal(t, want, b.L.Total())
		})
	}
}

// TestBandOrder3D checks the letter order of the bands: a volume that varies
// only along one axis has energy only in bands that are detail along it.
func TestBandOrder3D(t *testing.T) {
	e := newEngine(t, "haar", SymmetricHalf)
	const n = 4
	for axis := 0; axis < 3; axis++ {
		vol := make([]float64, n*n*n)
		for z := 0; z < n; z++ {
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					c := [3]int{x, y, z}[axis]
					vol[z*n*n+y*n+x] = float64(c % 2)
				}
			}
		}
		b, err := DWT3D(e, vol, n, n, n, nil)
		require.NoError(t, err)

		nonzero := func(s []float64) bool { return floats.Norm(s, 2) > 1e-12 }
		detail := [3][]float64{b.HLL, b.LHL, b.LLH}
		for k, s := range detail {
			assert.Equal(t, k == axis, nonzero(s), "axis %d band %d", axis, k)
		}
		for _, s := range [][]float64{b.LHH, b.HLH, b.HHL, b.HHH} {
			assert.False(t, nonzero(s), "axis %d", axis)
		}
	}
}

func TestRoundTrip3D(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	sizes := [][3]int{{8, 8, 8}, {9, 7, 10}, {16, 5, 11}}
	for _, name := range []string{"haar", "db2", "bior2.2", "bior3.3", "coif1"} {
		for _, mode := range []Mode{ZeroPad, SymmetricHalf, SymmetricWhole, PeriodicPad} {
			t.Run(name+"/"+mode.String(), func(t *testing.T) {
				e := newEngine(t, name, mode)
				for _, s := range sizes {
					nx, ny, nz := s[0], s[1], s[2]
					if min(nx, ny, nz) < e.FilterLen() {
						continue
					}
					vol := randomSignal(rng, nx*ny*nz)
					b, err := DWT3D(e, vol, nx, ny, nz, nil)
					require.NoError(t, err)

					got, err := IDWT3D(e, b, nil)
					require.NoError(t, err)
					assert.True(t, floats.EqualApprox(vol, got, tolerance(name)), "%v", s)
				}
			})
		}
	}
}

func TestIntRoundTrip3D(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, name := range []string{"intbior2.2", "inthaar"} {
		t.Run(name, func(t *testing.T) {
			e, err := New(DefaultOptions(name))
			require.NoError(t, err)
			for _, s := range [][3]int{{8, 8, 8}, {5, 9, 6}, {13, 6, 7}} {
				nx, ny, nz := s[0], s[1], s[2]
				vol := make([]int32, nx*ny*nz)
				for i := range vol {
					vol[i] = int32(rng.Intn(1<<20) - 1<<19)
				}
				b, err := IntDWT3D(e, vol, nx, ny, nz, nil)
				require.NoError(t, err)
				got, err := IntIDWT3D[int32](e, b, nil)
				require.NoError(t, err)
				require.Equal(t, vol, got, "%v", s)
			}
		})
	}
}

func TestIntExtremes3D(t *testing.T) {
	for _, name := range []string{"intcdf5/3", "inthaar"} {
		t.Run(name, func(t *testing.T) {
			e, err := New(DefaultOptions(name))
			require.NoError(t, err)
			for _, s := range [][3]int{{4, 4, 4}, {5, 4, 7}} {
				nx, ny, nz := s[0], s[1], s[2]
				v16 := make([]int16, nx*ny*nz)
				v32 := make([]int32, nx*ny*nz)
				for i := range v16 {
					v16[i], v32[i] = math.MinInt16, math.MinInt32
					if (i%nx+i/nx%ny+i/(nx*ny))%2 == 1 {
						v16[i], v32[i] = math.MaxInt16, math.MaxInt32
					}
				}

				b16, err := IntDWT3D(e, v16, nx, ny, nz, nil)
				require.NoError(t, err)
				got16, err := IntIDWT3D[int16](e, b16, nil)
				require.NoError(t, err)
				assert.Equal(t, v16, got16, "int16 %v", s)

				b32, err := IntDWT3D(e, v32, nx, ny, nz, nil)
				require.NoError(t, err)
				got32, err := IntIDWT3D[int32](e, b32, nil)
				require.NoError(t, err)
				assert.Equal(t, v32, got32, "int32 %v", s)
			}
		})
	}
}

func TestReuse3D(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	e := newEngine(t, "db2", SymmetricHalf)
	dst := new(Bands3D[float32])
	var out []float32
	for _, s := range [][3]int{{12, 12, 12}, {5, 4, 7}, {12, 12, 12}} {
		vol := make([]float32, s[0]*s[1]*s[2])
		for i := range vol {
			vol[i] = float32(rng.Float64())
		}
		b, err := DWT3D(e, vol, s[0], s[1], s[2], dst)
		require.NoError(t, err)
		out, err = IDWT3D(e, b, out)
		require.NoError(t, err)
		require.Len(t, out, len(vol))
		for i := range vol {
			assert.InDelta(t, vol[i], out[i], 1e-4)
		}
	}
}

func TestLengthVector3D(t *testing.T) {
	e := newEngine(t, "bior2.2", SymmetricWhole)
	l := e.Lengths3D(9, 6, 5)
	a := l.Array()
	assert.Equal(t, [3]int{5, 3, 3}, [3]int{a[0], a[1], a[2]}, "LLL")
	assert.Equal(t, [3]int{5, 3, 2}, [3]int{a[3], a[4], a[5]}, "LLH")
	assert.Equal(t, [3]int{4, 3, 2}, [3]int{a[21], a[22], a[23]}, "HHH")
	assert.Equal(t, [3]int{9, 6, 5}, [3]int{a[24], a[25], a[26]})
	assert.Equal(t, l, LengthVector3DFrom(a))
	assert.Equal(t, 9*6*5, l.Total())
}

func TestErrors3D(t *testing.T) {
	e := newEngine(t, "db2", ZeroPad)
	_, err := DWT3D(e, make([]float64, 4*4*2), 4, 4, 2, nil)
	assert.ErrorIs(t, err, ErrInputTooShort)
	assert.Contains(t, err.Error(), "z axis")

	_, err = DWT3D(e, make([]float64, 10), 4, 4, 4, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	b, err := DWT3D(e, make([]float64, 64), 4, 4, 4, nil)
	require.NoError(t, err)
	b.HHH = nil
	_, err = IDWT3D(e, b, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = IntDWT3D(e, make([]int, 64), 4, 4, 4, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}
