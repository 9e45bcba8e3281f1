package delta

import (
	"github.com/arloliu/xpatch/compress"
	"github.com/arloliu/xpatch/internal/varint"
)

// buildGDeltaBody frames a precomputed gdelta instruction stream:
// varint(new_len) || instruction_stream. GDelta operates on the full
// (base, new) pair, not the analyzer's mid split — it performs its own
// content-defined matching over the whole base, so unlike the specialized
// algorithms there's no prefix/suffix split to encode.
func buildGDeltaBody(newBuf []byte, stream []byte) []byte {
	buf := newScratch(varint.MaxLen + len(stream))
	appendVarint(buf, uint64(len(newBuf)))
	buf.Write(stream)

	return done(buf)
}

// buildGDeltaZstdBody pipes the same instruction stream through zstd.
// Whether this beats plain GDelta (by at least the compressed frame's own
// overhead) falls out naturally from the selector comparing total frame
// sizes — this function doesn't need its own threshold check.
//
// Body: varint(new_len) || varint(compressed_len) || compressed(instruction_stream)
func buildGDeltaZstdBody(newBuf []byte, stream []byte, enableZstd bool) ([]byte, bool) {
	if !enableZstd {
		return nil, false
	}

	compressed, err := compress.Default.Compress(stream)
	if err != nil {
		return nil, false
	}

	buf := newScratch(2*varint.MaxLen + len(compressed))
	appendVarint(buf, uint64(len(newBuf)))
	appendVarint(buf, uint64(len(compressed)))
	buf.Write(compressed)

	return done(buf), true
}
