//go:build nobuild

// This file documents the cgo-accelerated backend (valyala/gozstd, which
// binds the real C libzstd) as an alternative to zstd_pure.go's pure-Go
// implementation. It is gated behind the "nobuild" tag so this module
// never requires a cgo toolchain to build, while still recording the
// faster option for deployments that can afford the cgo dependency.

package compress

import (
	"github.com/valyala/gozstd"

	"github.com/arloliu/xpatch/internal/pool"
)

// Compress borrows its destination buffer from the candidate-body pool
// (the same one the delta selector draws scratch space from) instead of
// letting gozstd allocate a fresh one every call, then copies the result
// out before the scratch buffer returns to the pool.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	scratch := pool.Get()
	defer pool.Put(scratch)
	scratch.Grow(len(data))

	compressed := gozstd.CompressLevel(scratch.Bytes(), data, 3)

	out := make([]byte, len(compressed))
	copy(out, compressed)

	return out, nil
}

// Decompress mirrors Compress's pooling: originalLen sizes the borrowed
// scratch buffer, and the decompressed result is copied into an owned
// slice before the buffer goes back to the pool, since gozstd.Decompress
// appends into it directly.
func (c ZstdCodec) Decompress(data []byte, originalLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	scratch := pool.Get()
	defer pool.Put(scratch)
	scratch.Grow(originalLen)

	decompressed, err := gozstd.Decompress(scratch.Bytes(), data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(decompressed))
	copy(out, decompressed)

	return out, nil
}
