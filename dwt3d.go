package wavelet

import (
	"fmt"

	"github.com/mrjoshuak/go-wavelet/internal/num"
	"github.com/mrjoshuak/go-wavelet/internal/plan"
)

// DWT3D computes a single-level separable forward transform of an nx by ny
// by nz volume stored with X varying fastest and Z slowest.
func DWT3D[T Float](e *Engine, vol []T, nx, ny, nz int, dst *Bands3D[T]) (*Bands3D[T], error) {
	b, err := dwt3d(e, e.fl, vol, nx, ny, nz, dst)
	return b, e.done("dwt3d", err)
}

// IDWT3D reconstructs the volume described by b.
func IDWT3D[T Float](e *Engine, b *Bands3D[T], dst []T) ([]T, error) {
	out, err := idwt3d(e, e.fl, b, into(dst))
	return out, e.done("idwt3d", err)
}

// IntDWT3D is the lossless counterpart of DWT3D. Samples beyond ±2^58 may be
// rejected with ErrNumericInstability.
func IntDWT3D[T Integer](e *Engine, vol []T, nx, ny, nz int, dst *Bands3D[int64]) (*Bands3D[int64], error) {
	t, err := e.lossless()
	if err != nil {
		return nil, e.done("intdwt3d", err)
	}
	b, err := dwt3d(e, t, vol, nx, ny, nz, dst)
	return b, e.done("intdwt3d", err)
}

// IntIDWT3D exactly inverts IntDWT3D.
func IntIDWT3D[T Integer](e *Engine, b *Bands3D[int64], dst []T) ([]T, error) {
	t, err := e.lossless()
	if err != nil {
		return nil, e.done("intidwt3d", err)
	}
	wide, err := idwt3d(e, t, b, t.out.Alloc)
	if err != nil {
		return nil, e.done("intidwt3d", err)
	}
	out, err := narrow(wide, dst)
	return out, e.done("intidwt3d", err)
}

// Lengths3D returns the length vector of an nx by ny by nz volume.
func (e *Engine) Lengths3D(nx, ny, nz int) LengthVector3D {
	return lengths3D(e.fl.axis(nx), e.fl.axis(ny), e.fl.axis(nz))
}

func lengths3D(ax, ay, az plan.Axis) LengthVector3D {
	l := LengthVector3D{X: ax.N, Y: ay.N, Z: az.N}
	i := 0
	for _, x := range [2]int{ax.Approx, ax.Detail} {
		for _, y := range [2]int{ay.Approx, ay.Detail} {
			for _, z := range [2]int{az.Approx, az.Detail} {
				*l.bands()[i] = Extent3{x, y, z}
				i++
			}
		}
	}
	return l
}

func (e *Engine) axes3(nx, ny, nz int) (ax, ay, az plan.Axis, err error) {
	if ax, ay, err = e.axes2(nx, ny); err != nil {
		return ax, ay, az, err
	}
	if az, err = e.axis(nz); err != nil {
		return ax, ay, az, fmt.Errorf("z axis: %w", err)
	}
	return ax, ay, az, nil
}

func dwt3d[S num.Number, V acc, D num.Number](e *Engine, t *transform[V], vol []S, nx, ny, nz int, dst *Bands3D[D]) (*Bands3D[D], error) {
	ax, ay, az, err := e.axes3(nx, ny, nz)
	if err != nil {
		return nil, err
	}
	if len(vol) != nx*ny*nz {
		return nil, fmt.Errorf("%w: volume has %d samples, want %dx%dx%d", ErrLengthMismatch, len(vol), nx, ny, nz)
	}
	if dst == nil {
		dst = new(Bands3D[D])
	}
	dst.reset(lengths3D(ax, ay, az))

	e.log.Debug("forward 3d", "nx", nx, "ny", ny, "nz", nz)
	if err := forward3D(t, ax, ay, az, vol, dst.slices()); err != nil {
		return nil, err
	}
	return dst, nil
}

func idwt3d[S num.Number, V acc, D num.Number](e *Engine, t *transform[V], b *Bands3D[S], alloc func(int) []D) ([]D, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil bands", ErrLengthMismatch)
	}
	ax, ay, az, err := e.axes3(b.L.X, b.L.Y, b.L.Z)
	if err != nil {
		return nil, err
	}
	want := lengths3D(ax, ay, az)
	if b.L != want {
		return nil, fmt.Errorf("%w: vector %v, engine derives %v", ErrLengthMismatch, b.L.Array(), want.Array())
	}
	ext := want.bands()
	for i, s := range b.slices() {
		if len(*s) != ext[i].Size() {
			return nil, fmt.Errorf("%w: band %d has %d coefficients, want %d", ErrLengthMismatch, i, len(*s), ext[i].Size())
		}
	}

	out := alloc(ax.N * ay.N * az.N)
	e.log.Debug("inverse 3d", "nx", ax.N, "ny", ay.N, "nz", az.N)
	if err := inverse3D(t, ax, ay, az, b.slices(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// xyVolumes carves buf into the four XY band volumes of nz planes each, in
// the order LL, LH, HL, HH.
func xyVolumes[V acc](buf []V, xy LengthVector2D, nz int) (vols [4][]V, sizes [4]int) {
	for k, e := range [4]Extent2{xy.LL, xy.LH, xy.HL, xy.HH} {
		sizes[k] = e.Size()
		vols[k] = buf[:sizes[k]*nz]
		buf = buf[sizes[k]*nz:]
	}
	return vols, sizes
}

// forward3D runs the 2-D transform on every Z plane, then splits each of
// the four XY band volumes along Z. Output band pairs (2k, 2k+1) come from
// XY band k.
func forward3D[S num.Number, V acc, D num.Number](t *transform[V], ax, ay, az plan.Axis, vol []S, out [8]*[]D) error {
	xy := lengths2D(ax, ay)
	nz, area := az.N, ax.N*ay.N
	vols, sizes := xyVolumes(t.volA.Alloc(xy.Total()*nz), xy, nz)

	for z := 0; z < nz; z++ {
		p := func(k int) []V { return vols[k][z*sizes[k] : (z+1)*sizes[k]] }
		if err := forward2D(t, ax, ay, vol[z*area:(z+1)*area], p(0), p(1), p(2), p(3)); err != nil {
			return fmt.Errorf("plane %d: %w", z, err)
		}
	}

	scratch := t.volB.Alloc(columnScratch(az, maxOf(sizes)))
	for k := range vols {
		if err := forwardColumns(t, az, vols[k], sizes[k], *out[2*k], *out[2*k+1], scratch); err != nil {
			return fmt.Errorf("z pass: %w", err)
		}
	}
	return nil
}

// inverse3D merges each band pair along Z, then runs the 2-D inverse on
// every Z plane.
func inverse3D[S num.Number, V acc, D num.Number](t *transform[V], ax, ay, az plan.Axis, in [8]*[]S, vol []D) error {
	xy := lengths2D(ax, ay)
	nz, area := az.N, ax.N*ay.N
	vols, sizes := xyVolumes(t.volA.Alloc(xy.Total()*nz), xy, nz)

	scratch := t.volB.Alloc(columnScratch(az, maxOf(sizes)))
	for k := range vols {
		if err := inverseColumns(t, az, *in[2*k], *in[2*k+1], sizes[k], vols[k], scratch); err != nil {
			return fmt.Errorf("z pass: %w", err)
		}
	}

	for z := 0; z < nz; z++ {
		p := func(k int) []V { return vols[k][z*sizes[k] : (z+1)*sizes[k]] }
		if err := inverse2D(t, ax, ay, p(0), p(1), p(2), p(3), vol[z*area:(z+1)*area]); err != nil {
			return fmt.Errorf("plane %d: %w", z, err)
		}
	}
	return nil
}

func maxOf(s [4]int) int {
	return max(s[0], s[1], s[2], s[3])
}
