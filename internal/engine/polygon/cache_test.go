package polygon

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexCacheReserveGrowsByMinimum(t *testing.T) {
	c := NewVertexCache(8)
	require.Equal(t, 8, c.Cap())

	c.Reserve(8)
	assert.Equal(t, 8, c.Cap(), "enough room, no growth")

	require.True(t, Append(c, make([]float32, 8)...))
	c.Reserve(1)
	assert.Equal(t, 16, c.Cap(), "small request grows by the minimum")

	c.Reserve(20)
	assert.Equal(t, 36, c.Cap(), "large request grows by the request")
}

func TestVertexCacheAppendWithoutReserveFails(t *testing.T) {
	c := NewVertexCache(2)
	require.True(t, c.AppendScalar(1))
	require.True(t, c.AppendScalar(2))

	assert.False(t, c.AppendScalar(3))
	assert.False(t, Append(c, 4.0, 5.0))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []float32{1, 2}, c.Data())
}

func TestVertexCacheNarrowsFloat64(t *testing.T) {
	c := NewVertexCache(4)
	require.True(t, Append(c, 0.1, 1.5, -2.25))

	assert.Equal(t, []float32{float32(0.1), 1.5, -2.25}, c.Data())
}

func TestVertexCacheResetKeepsStorage(t *testing.T) {
	c := NewVertexCache(4)
	c.Reserve(10)
	require.True(t, Append(c, make([]int, 10)...))
	capBefore := c.Cap()

	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, capBefore, c.Cap())

	c.Release()
	assert.Equal(t, 0, c.Cap())
	c.Reserve(3)
	assert.GreaterOrEqual(t, c.Cap(), 3)
}

func TestVertexCacheUsedNeverExceedsCapacity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for run := 0; run < 50; run++ {
		c := NewVertexCache(1 + rng.IntN(16))
		prevCap := c.Cap()

		for step := 0; step < 200; step++ {
			n := rng.IntN(40)
			switch rng.IntN(4) {
			case 0:
				c.Reserve(n)
			case 1:
				c.Reserve(n)
				Append(c, make([]float64, n)...)
			case 2:
				c.AppendScalar(1)
			case 3:
				if rng.IntN(10) == 0 {
					c.Reset()
				}
			}

			require.LessOrEqual(t, c.Len(), c.Cap())
			require.GreaterOrEqual(t, c.Cap(), prevCap, "capacity shrank")
			prevCap = c.Cap()
		}
	}
}
