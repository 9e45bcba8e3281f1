package delta

import (
	"github.com/arloliu/xpatch/format"
	"github.com/arloliu/xpatch/internal/pool"
	"github.com/arloliu/xpatch/internal/varint"
)

// candidate is one algorithm's proposed encoding of the full delta body —
// an optional body the selector compares against the others. A specialized
// encoder that can't handle the given mid simply isn't added to the
// candidate list.
type candidate struct {
	algo format.AlgorithmID
	body []byte
}

// newScratch acquires a pooled buffer sized for a body of roughly capHint
// bytes. Every specialized encoder borrows one of these, writes its body
// into it, and hands the final bytes back to the caller via done, which
// copies out of the pool buffer (so the returned slice outlives the pool
// buffer's next reuse) and releases it.
func newScratch(capHint int) *pool.ByteBuffer {
	buf := pool.Get()
	buf.Grow(capHint)

	return buf
}

func done(buf *pool.ByteBuffer) []byte {
	out := append([]byte(nil), buf.Bytes()...)
	pool.Put(buf)

	return out
}

func appendVarint(buf *pool.ByteBuffer, v uint64) {
	// varint.Append grows its own slice; reuse it against a small stack
	// array to avoid an extra heap allocation per field.
	var tmp [varint.MaxLen]byte
	n := len(varint.Append(tmp[:0], v))
	buf.Write(tmp[:n])
}
