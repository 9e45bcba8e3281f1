package compress

// ZstdCodec provides Zstandard compression for the CharsZstd and GDeltaZstd
// delta bodies. Compression ratio matters more than raw throughput here —
// both algorithms are only selected when they already beat their
// uncompressed sibling (Chars / GDelta) in size, so the codec favors the
// default compression level over the fastest one.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
