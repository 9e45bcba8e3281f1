// Package xpatch implements a byte-level delta compression codec.
//
// xpatch encodes the change between a base buffer and a new buffer as a
// compact, self-describing delta: a header (one byte for tags below 15,
// plus an overflow varint for larger tags) naming one of eight encoding
// algorithms and a caller-supplied tag, followed by an algorithm-specific
// body. The encoder tries the applicable algorithms (stopping early once a
// specialized one is near the smallest possible size) and keeps whichever
// produces the shortest frame, so callers don't need
// to know in advance whether a change is a pure insertion, a pure
// deletion, a repeating run, or an arbitrary rewrite.
//
// # Basic Usage
//
//	delta := xpatch.Encode(tag, base, newBuf, true)
//	restored, err := xpatch.Decode(base, delta)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tag, err := xpatch.GetTag(delta)
//
// # Package Structure
//
// This package is a thin wrapper around the delta package, which holds
// the actual algorithm implementations and selection logic. delta exports
// the same three functions; the individual algorithm encoders are
// unexported there.
package xpatch

import "github.com/arloliu/xpatch/delta"

// Encode returns a delta that transforms base into newBuf, tagged with tag
// for the caller's own use (GetTag recovers it without decoding the rest of
// the delta). It keeps the shortest candidate it built, but stops building
// candidates once a specialized body is within one byte of the smallest
// possible frame, so the result is not always the strict minimum.
//
// enableZstd controls whether the two entropy-compressed algorithms
// (CharsZstd, GDeltaZstd) are considered. Disabling it skips the zstd CPU
// cost at the expense of sometimes producing a larger delta.
func Encode(tag uint64, base, newBuf []byte, enableZstd bool) []byte {
	return delta.Encode(tag, base, newBuf, enableZstd)
}

// Decode reconstructs new from base and a delta produced by Encode. It
// returns an error wrapping errs.ErrMalformedDelta if delta is truncated,
// addresses data outside base, or otherwise fails to validate.
func Decode(base, deltaBuf []byte) ([]byte, error) {
	return delta.Decode(base, deltaBuf)
}

// GetTag extracts the tag a delta was encoded with, without reconstructing
// new or even requiring base.
func GetTag(deltaBuf []byte) (uint64, error) {
	return delta.GetTag(deltaBuf)
}
