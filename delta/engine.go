// Package delta implements the xpatch delta format: encoding a change from
// a base buffer to a new buffer as one of eight algorithm-tagged bodies,
// and decoding any such delta back against its base.
package delta

// Encode produces a delta that transforms base into newBuf, tagged with
// tag: the shortest candidate selectBest built, which stops early once a
// specialized body is within one byte of the smallest possible frame, so
// the result is not always the strict minimum. Setting enableZstd allows the selector to consider the
// two entropy-compressed algorithms
// (CharsZstd, GDeltaZstd); callers that don't want to pay the zstd CPU cost
// can disable it and still get a correct, if sometimes larger, delta.
func Encode(tag uint64, base, newBuf []byte, enableZstd bool) []byte {
	return selectBest(tag, base, newBuf, enableZstd)
}

// Decode reconstructs new from base and a delta produced by Encode. It
// returns errs.ErrMalformedDelta (wrapped with a specific reason) if the
// delta is truncated, references data outside base, or otherwise fails to
// parse.
func Decode(base, deltaBuf []byte) ([]byte, error) {
	return decodeFrame(base, deltaBuf)
}

// GetTag extracts the tag a delta was encoded with, without touching base
// or reconstructing new.
func GetTag(deltaBuf []byte) (uint64, error) {
	_, tag, _, err := parseHeader(deltaBuf)
	if err != nil {
		return 0, err
	}

	return tag, nil
}
