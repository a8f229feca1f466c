// Package buffer provides a pooled, append-only byte sink shared by the
// encoder and the streaming decoder.
package buffer

import "sync"

// DefaultSize is the initial capacity handed out by Get when a caller has no
// better estimate of the frame size it is about to build or accumulate.
const DefaultSize = 512

// MaxRetainedSize is the largest capacity a Buffer may have when it is
// returned to the pool. Buffers larger than this are discarded instead of
// pooled, so one abnormally large message cannot pin that memory forever.
const MaxRetainedSize = 1024 * 64

// Buffer is a growable byte slice with the handful of operations the framing
// and encoding code needs: append, truncate-to-length, and bounds-checked
// re-slicing. It does not implement io.Writer on purpose — callers always
// know exactly how many bytes they are appending.
type Buffer struct {
	b []byte
}

// New creates a Buffer with the given initial capacity.
func New(capacity int) *Buffer {
	return &Buffer{b: make([]byte, 0, capacity)}
}

// Bytes returns the buffer's current contents. The returned slice aliases
// the Buffer's internal storage and is only valid until the next mutating
// call.
func (bb *Buffer) Bytes() []byte {
	return bb.b
}

// Len returns the number of bytes currently held.
func (bb *Buffer) Len() int {
	return len(bb.b)
}

// Cap returns the buffer's current capacity.
func (bb *Buffer) Cap() int {
	return cap(bb.b)
}

// Reset truncates the buffer to zero length, retaining its capacity.
func (bb *Buffer) Reset() {
	bb.b = bb.b[:0]
}

// Append appends data to the buffer, growing it if necessary.
func (bb *Buffer) Append(data []byte) {
	bb.b = append(bb.b, data...)
}

// AppendByte appends a single byte, growing the buffer if necessary.
func (bb *Buffer) AppendByte(c byte) {
	bb.b = append(bb.b, c)
}

// Slice returns bb.b[start:end]. It panics if the indices fall outside the
// buffer's current length, since every caller in this module computes these
// indices from data it just wrote.
func (bb *Buffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > len(bb.b) {
		panic("buffer: invalid slice indices")
	}

	return bb.b[start:end]
}

// SetLength sets the buffer's length to n, which must not exceed its
// capacity. It is used to reserve space that is filled in by later writes,
// e.g. a placeholder field patched once its final value is known.
func (bb *Buffer) SetLength(n int) {
	if n < 0 || n > cap(bb.b) {
		panic("buffer: invalid length")
	}
	bb.b = bb.b[:n]
}

// Grow extends the buffer's length by n zero bytes, reallocating if the
// current capacity is insufficient, and returns the start offset of the
// newly added region.
func (bb *Buffer) Grow(n int) int {
	start := len(bb.b)
	needed := start + n
	if needed <= cap(bb.b) {
		bb.b = bb.b[:needed]
		clear(bb.b[start:needed])
		return start
	}

	newCap := cap(bb.b)*2 + n
	if newCap < needed {
		newCap = needed
	}
	newBuf := make([]byte, needed, newCap)
	copy(newBuf, bb.b)
	bb.b = newBuf

	return start
}

// Pool is a sync.Pool of *Buffer, scoped to a default allocation size and a
// maximum size beyond which buffers are discarded rather than retained.
type Pool struct {
	pool         sync.Pool
	maxRetained  int
	defaultBytes int
}

// NewPool creates a Pool that hands out buffers of defaultSize capacity and
// discards (rather than retains) any buffer whose capacity exceeds
// maxRetained when it is returned.
func NewPool(defaultSize, maxRetained int) *Pool {
	p := &Pool{maxRetained: maxRetained, defaultBytes: defaultSize}
	p.pool.New = func() any {
		return New(defaultSize)
	}

	return p
}

// Get retrieves a Buffer from the pool, allocating one if the pool is empty.
func (p *Pool) Get() *Buffer {
	bb, _ := p.pool.Get().(*Buffer)
	return bb
}

// Put resets and returns a Buffer to the pool. Buffers larger than the
// pool's retention threshold are dropped instead, so one oversized message
// cannot bloat the pool's steady-state memory use.
func (p *Pool) Put(bb *Buffer) {
	if bb == nil {
		return
	}

	if p.maxRetained > 0 && bb.Cap() > p.maxRetained {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewPool(DefaultSize, MaxRetainedSize)

// Get retrieves a Buffer from the package-level default pool.
func Get() *Buffer {
	return defaultPool.Get()
}

// Put returns a Buffer to the package-level default pool.
func Put(bb *Buffer) {
	defaultPool.Put(bb)
}
