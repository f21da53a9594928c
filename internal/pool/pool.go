// Package pool provides small sync.Pool wrappers for the buffers the text
// transforms reuse under load.
package pool

import (
	"strings"
	"sync"
)

// BuilderPool implements a pool of strings.Builder for efficient string building.
type BuilderPool struct {
	pool sync.Pool
}

// NewBuilderPool creates a new strings.Builder pool.
func NewBuilderPool() *BuilderPool {
	return &BuilderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(strings.Builder)
			},
		},
	}
}

// Get retrieves a builder from the pool or creates a new one if none are available.
func (bp *BuilderPool) Get() *strings.Builder {
	return bp.pool.Get().(*strings.Builder)
}

// Put resets the builder and returns it to the pool for reuse.
func (bp *BuilderPool) Put(b *strings.Builder) {
	b.Reset()
	bp.pool.Put(b)
}

// RunePool implements a pool of rune slices.
type RunePool struct {
	pool sync.Pool
	size int
}

// NewRunePool creates a new pool of rune slices with the specified initial capacity.
func NewRunePool(size int) *RunePool {
	return &RunePool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a rune buffer from the pool.
func (rp *RunePool) Get() *[]rune {
	return rp.pool.Get().(*[]rune)
}

// Put returns a rune buffer to the pool.
func (rp *RunePool) Put(buffer *[]rune) {
	// Reset buffer length but keep capacity.
	*buffer = (*buffer)[:0]
	rp.pool.Put(buffer)
}
