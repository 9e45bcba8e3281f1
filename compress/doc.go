// Package compress provides the entropy-compressor abstraction behind
// xpatch's two "Zstd" algorithm variants (CharsZstd, GDeltaZstd).
//
// Any framed, self-delimiting general compressor with decode failure
// detection would do, used identically on both sides of a delta. This
// package names that choice once (Zstandard) behind a small Codec
// interface, keeping compression swappable behind Compressor/Decompressor
// interfaces rather than hard-coding a library call at every encoder.
package compress
