// Package bufpool provides a tiered pool of byte buffers used for short-lived
// native representations (null-terminated paths, symbolic link targets, and
// directory record buffers). Buffers are exclusively owned by the caller
// between Get and Put and must be returned exactly once.
package bufpool

import (
	"sync"
)

const (
	// SmallSize is the size of small buffers. It accommodates the majority of
	// paths and symbolic link targets.
	SmallSize = 256
	// MediumSize is the size of medium buffers. It matches the common PATH_MAX
	// value on POSIX systems.
	MediumSize = 4 << 10
	// LargeSize is the size of large buffers. Requests beyond this size are
	// allocated directly and never pooled.
	LargeSize = 64 << 10
)

// Pool manages a set of byte slice pools organized by size class.
type Pool struct {
	// small stores buffers of SmallSize capacity.
	small sync.Pool
	// medium stores buffers of MediumSize capacity.
	medium sync.Pool
	// large stores buffers of LargeSize capacity.
	large sync.Pool
}

// newTier creates a sync.Pool that allocates buffers of the specified size.
func newTier(size int) sync.Pool {
	return sync.Pool{
		New: func() any {
			buffer := make([]byte, size)
			return &buffer
		},
	}
}

// NewPool creates a new buffer pool.
func NewPool() *Pool {
	return &Pool{
		small:  newTier(SmallSize),
		medium: newTier(MediumSize),
		large:  newTier(LargeSize),
	}
}

// Get returns a byte slice whose length is exactly size. Its capacity may be
// larger if it is backed by a pooled buffer. Buffers returned by Get are not
// zeroed.
func (p *Pool) Get(size int) []byte {
	var buffer *[]byte
	switch {
	case size <= SmallSize:
		buffer = p.small.Get().(*[]byte)
	case size <= MediumSize:
		buffer = p.medium.Get().(*[]byte)
	case size <= LargeSize:
		buffer = p.large.Get().(*[]byte)
	default:
		return make([]byte, size)
	}
	return (*buffer)[:size]
}

// Put returns a buffer to the pool. The buffer must have been obtained from Get
// and must not be used afterward. Buffers that don't belong to a size class are
// left for the garbage collector.
func (p *Pool) Put(buffer []byte) {
	if buffer == nil {
		return
	}
	full := buffer[:cap(buffer)]
	switch cap(buffer) {
	case SmallSize:
		p.small.Put(&full)
	case MediumSize:
		p.medium.Put(&full)
	case LargeSize:
		p.large.Put(&full)
	}
}

// globalPool is the package-level pool used by Get and Put.
var globalPool = NewPool()

// Get returns a buffer of the specified length from the global pool.
func Get(size int) []byte {
	return globalPool.Get(size)
}

// Put returns a buffer to the global pool.
func Put(buffer []byte) {
	globalPool.Put(buffer)
}
