package wavelet

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// FuzzRoundTrip1D checks that arbitrary finite signals reconstruct.
// Run with: go test -fuzz=FuzzRoundTrip1D -fuzztime=60s
func FuzzRoundTrip1D(f *testing.F) {
	f.Add(uint8(0), uint8(0), []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	f.Add(uint8(3), uint8(2), make([]byte, 64))
	f.Add(uint8(17), uint8(1), []byte{0xFF, 0x7F, 0x00, 0x80, 0x01, 0x02, 0x03, 0x04})

	names := Wavelets()
	f.Fuzz(func(t *testing.T, w, m uint8, data []byte) {
		name := names[int(w)%len(names)]
		mode := singleLevelModes[int(m)%len(singleLevelModes)]
		e, err := New(&Options{Wavelet: name, Mode: mode})
		if err != nil {
			t.Fatal(err)
		}

		x := make([]float64, len(data)/2)
		for i := range x {
			x[i] = float64(int16(binary.LittleEndian.Uint16(data[2*i:]))) / 256
		}
		b, err := DWT1D(e, x, nil)
		if len(x) < e.FilterLen() {
			if err == nil {
				t.Fatalf("%s: %d samples accepted", name, len(x))
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		y, err := IDWT1D(e, b, nil)
		if err != nil {
			t.Fatal(err)
		}
		scale := math.Max(1, floats.Norm(x, math.Inf(1)))
		if !floats.EqualApprox(x, y, tolerance(name)*scale) {
			t.Fatalf("%s/%v: reconstruction differs", name, mode)
		}
	})
}

// FuzzIntRoundTrip1D checks bit-exact reconstruction on the lossless path
// over the full int32 range.
func FuzzIntRoundTrip1D(f *testing.F) {
	f.Add(false, []byte{10, 0, 0, 0, 20, 0, 0, 0, 30, 0, 0, 0, 40, 0, 0, 0})
	f.Add(true, []byte{0, 0, 0, 0x80, 0xFF, 0xFF, 0xFF, 0x7F, 0, 0, 0, 0x80, 0xFF, 0xFF, 0xFF, 0x7F})
	f.Add(false, []byte{0xFF, 0xFF, 0xFF, 0x7F, 0, 0, 0, 0x80, 1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0x80})

	f.Fuzz(func(t *testing.T, haar bool, data []byte) {
		name := "intcdf5/3"
		if haar {
			name = "inthaar"
		}
		e, err := New(DefaultOptions(name))
		if err != nil {
			t.Fatal(err)
		}
		x := make([]int32, len(data)/4)
		for i := range x {
			x[i] = int32(binary.LittleEndian.Uint32(data[4*i:]))
		}
		b, err := IntDWT1D(e, x, nil)
		if err != nil {
			if len(x) >= e.FilterLen() {
				t.Fatal(err)
			}
			return
		}
		y, err := IntIDWT1D[int32](e, b, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i := range x {
			if x[i] != y[i] {
				t.Fatalf("position %d: got %d, want %d", i, y[i], x[i])
			}
		}
	})
}

// FuzzIntRange1D feeds full-width int64 samples. Anything outside the
// lossless range must be refused with ErrNumericInstability, never wrapped.
func FuzzIntRange1D(f *testing.F) {
	f.Add(false, []byte{0, 0, 0, 0, 0, 0, 0, 0x80, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F, 1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0})
	f.Add(true, []byte{0, 0, 0, 0, 0, 0, 0, 0x10, 0, 0, 0, 0, 0, 0, 0, 0xF0})

	f.Fuzz(func(t *testing.T, haar bool, data []byte) {
		name := "intcdf5/3"
		if haar {
			name = "inthaar"
		}
		e, err := New(DefaultOptions(name))
		if err != nil {
			t.Fatal(err)
		}
		x := make([]int64, len(data)/8)
		inRange := true
		for i := range x {
			x[i] = int64(binary.LittleEndian.Uint64(data[8*i:]))
			if x[i] > 1<<60 || x[i] < -(1<<60) {
				inRange = false
			}
		}
		if len(x) < e.FilterLen() {
			return
		}
		b, err := IntDWT1D(e, x, nil)
		if err != nil {
			if inRange || !errors.Is(err, ErrNumericInstability) {
				t.Fatal(err)
			}
			return
		}
		y, err := IntIDWT1D[int64](e, b, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i := range x {
			if x[i] != y[i] {
				t.Fatalf("position %d: got %d, want %d", i, y[i], x[i])
			}
		}
	})
}
