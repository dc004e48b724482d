// Package transpose implements a cache-blocked matrix transpose used by the
// separable multi-dimensional transforms.
package transpose

import "github.com/mrjoshuak/go-wavelet/internal/num"

// BlockSize is the edge length of the square tiles visited by Blocked.
const BlockSize = 32

// Blocked transposes src, a row-major matrix of rows×cols elements, into dst
// as a cols×rows matrix: dst[c*rows+r] = src[r*cols+c]. Values are converted
// to the destination type. Tiles of BlockSize×BlockSize keep both the reads
// and the writes within a few cache lines.
func Blocked[S, D num.Number](src []S, dst []D, cols, rows int) {
	if rows*cols == 0 {
		return
	}
	_ = src[rows*cols-1]
	_ = dst[rows*cols-1]
	for r0 := 0; r0 < rows; r0 += BlockSize {
		r1 := min(r0+BlockSize, rows)
		for c0 := 0; c0 < cols; c0 += BlockSize {
			c1 := min(c0+BlockSize, cols)
			for r := r0; r < r1; r++ {
				row := src[r*cols : r*cols+c1]
				for c := c0; c < c1; c++ {
					dst[c*rows+r] = D(row[c])
				}
			}
		}
	}
}

// Copy converts src into dst element by element.
func Copy[S, D num.Number](src []S, dst []D) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for i, v := range src {
		dst[i] = D(v)
	}
}
