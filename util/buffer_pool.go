package util

import (
	"sync"
	"sync/atomic"
)

// FloatBufferPool recycles float32 slices to cut allocations in tile-heavy
// workloads. Slices are pooled per exact length; mismatched lengths just
// allocate.
type FloatBufferPool struct {
	pools map[int]*sync.Pool
	mu    sync.RWMutex

	hits   atomic.Int64
	misses atomic.Int64
}

func NewFloatBufferPool() *FloatBufferPool {
	return &FloatBufferPool{pools: make(map[int]*sync.Pool)}
}

// Get returns a zeroed slice of the requested length.
func (p *FloatBufferPool) Get(size int) []float32 {
	if size <= 0 {
		return nil
	}

	p.mu.RLock()
	pool, exists := p.pools[size]
	p.mu.RUnlock()

	if exists {
		if buf := pool.Get(); buf != nil {
			p.hits.Add(1)
			return buf.([]float32)
		}
	} else {
		p.mu.Lock()
		if _, exists = p.pools[size]; !exists {
			p.pools[size] = &sync.Pool{}
		}
		p.mu.Unlock()
	}

	p.misses.Add(1)
	return make([]float32, size)
}

// Put clears a slice and returns it to its length bucket.
func (p *FloatBufferPool) Put(buf []float32) {
	if len(buf) == 0 {
		return
	}

	p.mu.RLock()
	pool, exists := p.pools[len(buf)]
	p.mu.RUnlock()
	if !exists {
		return
	}

	for i := range buf {
		buf[i] = 0
	}
	pool.Put(buf)
}

// Metrics returns pool hit and miss counts.
func (p *FloatBufferPool) Metrics() (hits int64, misses int64) {
	return p.hits.Load(), p.misses.Load()
}
