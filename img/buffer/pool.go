package buffer

import "sync"

// Pool provides sync.Pool-based reuse of owning buffers to reduce GC
// pressure in per-frame loops such as debug-overlay rendering.
type Pool[T Pixel] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T Pixel]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a zeroed owning buffer of the given extent with stride equal
// to width, reusing pooled storage when its capacity suffices. Callers must
// return it via Put when done.
func (p *Pool[T]) Get(width, height int) (*Buffer[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	b := p.pool.Get().(*Buffer[T])
	n := width * height
	if cap(b.pix) >= n {
		b.pix = b.pix[:n]
	} else {
		b.pix = make([]T, n)
	}
	b.width = width
	b.height = height
	b.stride = width
	b.owns = true
	b.SetZero()
	return b, nil
}

// Put returns a buffer to the pool for reuse. Views and nil buffers are
// ignored: only storage the pool's buffers own may be recycled. The caller
// must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil || !b.owns {
		return
	}
	p.pool.Put(b)
}
