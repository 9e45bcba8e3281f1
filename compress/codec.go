package compress

// Compressor compresses a byte buffer for transport inside a delta body.
//
// Memory management: the returned slice is newly allocated and owned by the
// caller; the input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor inverts a Compressor, given the original (uncompressed)
// length so it can size its output buffer without guessing.
//
// Error conditions: returns an error if data is corrupted, truncated, or was
// not produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte, originalLen int) ([]byte, error)
}

// Codec combines both directions. xpatch has exactly one Codec (Zstd); the
// interface exists so CharsZstd/GDeltaZstd call through it rather than the
// concrete type, keeping the encoders codec-agnostic.
type Codec interface {
	Compressor
	Decompressor
}

// Default is the Codec used by CharsZstd and GDeltaZstd.
var Default Codec = NewZstdCodec()
