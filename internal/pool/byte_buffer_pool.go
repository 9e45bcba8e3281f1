// Package pool provides a pooled byte buffer used as scratch space while the
// selector builds candidate delta bodies: same ByteBuffer shape and
// amortized-growth strategy as other sync.Pool-backed buffer pools, sized
// for delta candidates rather than metric blobs.
package pool

import "sync"

// CandidateDefaultSize is the default capacity of a ByteBuffer drawn from
// the candidate pool. Delta bodies are typically small (a few KiB at most
// for the specialized algorithms; GDelta scratch can run larger but still
// amortizes fine with the 25%-growth strategy below).
const (
	CandidateDefaultSize  = 4 * 1024   // 4KiB
	CandidateMaxThreshold = 256 * 1024 // 256KiB
)

// ByteBuffer is a growable byte slice wrapper, reused across Encode calls via
// a sync.Pool to avoid reallocating scratch space for every candidate.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes written so far.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Write appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) Write(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte to the buffer, growing it if necessary.
func (bb *ByteBuffer) WriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating, using a size-tiered growth strategy: small buffers grow by
// a fixed default chunk, larger buffers grow by 25% of their current
// capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := CandidateDefaultSize
	if cap(bb.B) > 4*CandidateDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

var candidatePool = sync.Pool{
	New: func() any {
		return NewByteBuffer(CandidateDefaultSize)
	},
}

// Get retrieves an empty ByteBuffer from the candidate pool.
func Get() *ByteBuffer {
	bb, _ := candidatePool.Get().(*ByteBuffer)

	return bb
}

// Put returns bb to the candidate pool. Buffers that grew past
// CandidateMaxThreshold are discarded instead of pooled, so one outsized
// delta doesn't permanently inflate the pool's steady-state memory.
func Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if cap(bb.B) > CandidateMaxThreshold {
		return
	}

	bb.Reset()
	candidatePool.Put(bb)
}
