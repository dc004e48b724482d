package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaGrowthOnly(t *testing.T) {
	var a Arena[float64]
	require.Equal(t, 0, a.Cap())

	tests := []struct {
		name    string
		n       int
		wantCap int
	}{
		{"first", 16, 16},
		{"smaller", 4, 16},
		{"larger", 100, 100},
		{"zero", 0, 100},
		{"negative", -3, 100},
		{"equal", 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := a.Alloc(tt.n)
			assert.Len(t, buf, max(tt.n, 0))
			assert.Equal(t, tt.wantCap, a.Cap())
		})
	}
}

func TestArenaReusesStorage(t *testing.T) {
	var a Arena[int64]
	first := a.Alloc(8)
	for i := range first {
		first[i] = int64(i + 1)
	}
	second := a.Alloc(4)
	// Same backing array: the earlier contents are visible and not zeroed.
	assert.Equal(t, []int64{1, 2, 3, 4}, second)
	assert.Same(t, &first[0], &second[0])
}
