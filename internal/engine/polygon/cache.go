package polygon

import (
	"go.uber.org/zap"

	"github.com/Faultbox/rubiks-gl/internal/logger"
)

// Scalar is any numeric type vertex components may be supplied in.
// Components are always stored as float32, the width uploaded to the GPU.
type Scalar interface {
	~float32 | ~float64 | ~int | ~int8 | ~int16 | ~int32
}

// VertexCache is a growable float32 buffer that collects the vertex
// components of one drawing sequence.
//
// Storage is never shrunk while the cache is alive: Reset only rewinds the
// used count so the next sequence reuses the allocation.
type VertexCache struct {
	elements  []float32
	used      int
	minGrowth int
}

// NewVertexCache creates a cache with minGrowth preallocated slots.
// Every later growth adds at least minGrowth slots.
func NewVertexCache(minGrowth int) *VertexCache {
	if minGrowth < 1 {
		minGrowth = 1
	}
	return &VertexCache{
		elements:  make([]float32, minGrowth),
		minGrowth: minGrowth,
	}
}

// Reserve makes room for at least additional more components.
// When the storage is too small it grows by max(additional, minGrowth).
func (c *VertexCache) Reserve(additional int) {
	if additional <= 0 || len(c.elements) >= c.used+additional {
		return
	}
	grow := max(additional, c.minGrowth)
	c.elements = append(c.elements, make([]float32, grow)...)
}

// AppendScalar writes v into the next reserved slot.
func (c *VertexCache) AppendScalar(v float32) bool {
	if c.used >= len(c.elements) {
		logger.DPanic("vertex cache: append without reserve",
			zap.Int("used", c.used),
			zap.Int("capacity", len(c.elements)),
		)
		return false
	}
	c.elements[c.used] = v
	c.used++
	return true
}

// Append writes values into reserved slots, narrowing them to float32.
// Narrowing float64 input is lossy; the cache only ever feeds float32
// vertex attributes.
func Append[T Scalar](c *VertexCache, values ...T) bool {
	if c.used+len(values) > len(c.elements) {
		logger.DPanic("vertex cache: append without reserve",
			zap.Int("used", c.used),
			zap.Int("count", len(values)),
			zap.Int("capacity", len(c.elements)),
		)
		return false
	}

	if f, ok := any(values).([]float32); ok {
		copy(c.elements[c.used:], f)
	} else {
		dst := c.elements[c.used : c.used+len(values)]
		for i, v := range values {
			dst[i] = float32(v)
		}
	}
	c.used += len(values)
	return true
}

// Reset rewinds the cache without releasing storage.
func (c *VertexCache) Reset() {
	c.used = 0
}

// Release drops the storage. The cache stays usable and reallocates on
// the next Reserve.
func (c *VertexCache) Release() {
	c.elements = nil
	c.used = 0
}

// Len returns the number of components written since the last Reset.
func (c *VertexCache) Len() int {
	return c.used
}

// Cap returns the number of allocated component slots.
func (c *VertexCache) Cap() int {
	return len(c.elements)
}

// Data returns the written components. The slice aliases the cache and is
// only valid until the next mutation.
func (c *VertexCache) Data() []float32 {
	return c.elements[:c.used]
}
