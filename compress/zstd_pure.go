//go:build !nobuild

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/xpatch/internal/pool"
)

// zstdDecoderPool and zstdEncoderPool pool the stateful zstd codec objects
// themselves (warmup cost, not buffer capacity), which is a different
// concern from the candidate-body scratch buffers internal/pool manages —
// hence a separate sync.Pool here rather than routing *zstd.Encoder /
// *zstd.Decoder through ByteBuffer.
//
// klauspost/compress/zstd is explicitly designed for this: "The decoder has
// been designed to operate without allocations after a warmup. This means
// that you should store the decoder for best performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // Disable CRC, xpatch frames carry their own length fields.
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress compresses data using a pooled zstd encoder. The destination
// buffer is borrowed from the same candidate-body pool the delta selector
// uses to build its encode candidates, sized off that pool's own
// small-body-biased growth strategy rather than a fresh allocation per
// call, then copied into an owned slice before the scratch buffer returns
// to the pool.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	scratch := pool.Get()
	defer pool.Put(scratch)
	scratch.Grow(len(data))

	compressed := encoder.EncodeAll(data, scratch.Bytes())

	out := make([]byte, len(compressed))
	copy(out, compressed)

	return out, nil
}

// Decompress decompresses zstd-compressed data using a pooled decoder.
// originalLen sizes the scratch buffer borrowed from the candidate-body
// pool; it is not trusted beyond that — DecodeAll still validates the
// compressed stream itself.
//
// Memory management: DecodeAll appends into the pooled scratch buffer's
// backing array when it has the capacity, so the result is copied into a
// freshly owned slice before the scratch buffer is returned to the pool —
// otherwise a later Compress/Decompress call reusing that buffer could
// overwrite data the caller is still holding.
func (c ZstdCodec) Decompress(data []byte, originalLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	scratch := pool.Get()
	defer pool.Put(scratch)
	scratch.Grow(originalLen)

	decompressed, err := decoder.DecodeAll(data, scratch.Bytes())
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	out := make([]byte, len(decompressed))
	copy(out, decompressed)

	return out, nil
}
