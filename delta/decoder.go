package delta

import (
	"github.com/arloliu/xpatch/compress"
	"github.com/arloliu/xpatch/errs"
	"github.com/arloliu/xpatch/format"
	"github.com/arloliu/xpatch/gdelta"
	"github.com/arloliu/xpatch/internal/varint"
)

// maxDeclaredLen bounds any single length/count field a delta body can
// declare before decode trusts it enough to size an allocation or drive a
// loop bound. A corrupt delta can claim an arbitrary uint64; without a
// ceiling, converting that straight to int (risking a negative wraparound)
// or allocating/looping by that amount is a panic or hang waiting to
// happen on malformed input, and the decoder must never panic or read past
// the end of the delta buffer. Set well above the largest buffer any
// round-trip test exercises (64 KiB) while staying far below a size that
// risks exhausting memory on a single malformed input.
const maxDeclaredLen = 1 << 26

// decodeFrame parses the header and dispatches to the algorithm-specific
// body decoder.
func decodeFrame(base, deltaBuf []byte) ([]byte, error) {
	algo, _, n, err := parseHeader(deltaBuf)
	if err != nil {
		return nil, err
	}

	body := deltaBuf[n:]

	switch algo {
	case format.Chars:
		return decodeChars(base, body)
	case format.CharsZstd:
		return decodeCharsZstd(base, body)
	case format.Tokens:
		return decodeTokens(base, body)
	case format.Remove:
		return decodeRemove(base, body)
	case format.RepeatChars:
		return decodeRepeatChars(base, body)
	case format.RepeatTokens:
		return decodeRepeatTokens(base, body)
	case format.GDelta:
		return decodeGDelta(base, body)
	case format.GDeltaZstd:
		return decodeGDeltaZstd(base, body)
	default:
		return nil, errs.Malformed("unknown algorithm code")
	}
}

// readVarint reads a varint from a body and maps failures to the two
// distinguishable decode reasons: truncation vs. overflow.
func readVarint(data []byte) (uint64, int, error) {
	v, n, err := varint.Read(data)
	if err == nil {
		return v, n, nil
	}
	if err == varint.ErrOverflow {
		return 0, 0, errs.Malformed("varint overflow")
	}

	return 0, 0, errs.Malformed("truncated body")
}

// readBoundedVarint is readVarint plus a ceiling check, for fields that
// will size an allocation or a loop bound downstream.
func readBoundedVarint(data []byte) (uint64, int, error) {
	v, n, err := readVarint(data)
	if err != nil {
		return 0, 0, err
	}
	if v > maxDeclaredLen {
		return 0, 0, errs.Malformed("length mismatch")
	}

	return v, n, nil
}

// splice reconstructs new = base[:prefixLen] || middle || base[prefixLen+consumedBaseLen:],
// validating the prefix/consumed lengths against base.
//
// prefixLen and consumedBaseLen are checked against len(base) individually,
// not via prefixLen+consumedBaseLen, so two merely-large (but individually
// in-range) values can't overflow int and slip past the check.
func splice(base []byte, prefixLen, consumedBaseLen int, middle []byte) ([]byte, error) {
	if prefixLen < 0 || consumedBaseLen < 0 || prefixLen > len(base) || consumedBaseLen > len(base)-prefixLen {
		return nil, errs.Malformed("length mismatch")
	}

	out := make([]byte, 0, prefixLen+len(middle)+(len(base)-prefixLen-consumedBaseLen))
	out = append(out, base[:prefixLen]...)
	out = append(out, middle...)
	out = append(out, base[prefixLen+consumedBaseLen:]...)

	return out, nil
}

func decodeChars(base, body []byte) ([]byte, error) {
	prefixLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	midLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	if uint64(len(body)) != midLen {
		return nil, errs.Malformed("length mismatch")
	}

	return splice(base, int(prefixLen), 0, body)
}

func decodeCharsZstd(base, body []byte) ([]byte, error) {
	prefixLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	midLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	compressedLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	if uint64(len(body)) != compressedLen {
		return nil, errs.Malformed("length mismatch")
	}

	midNew, derr := compress.Default.Decompress(body, int(midLen))
	if derr != nil {
		return nil, errs.Malformed("zstd decompression failed")
	}
	if uint64(len(midNew)) != midLen {
		return nil, errs.Malformed("length mismatch")
	}

	return splice(base, int(prefixLen), 0, midNew)
}

func decodeRemove(base, body []byte) ([]byte, error) {
	prefixLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	removedLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	if len(body) != 0 {
		return nil, errs.Malformed("length mismatch")
	}

	return splice(base, int(prefixLen), int(removedLen), nil)
}

func decodeRepeatChars(base, body []byte) ([]byte, error) {
	prefixLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	count, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	if len(body) != 1 {
		return nil, errs.Malformed("length mismatch")
	}

	middle := make([]byte, count)
	for i := range middle {
		middle[i] = body[0]
	}

	return splice(base, int(prefixLen), 0, middle)
}

func decodeRepeatTokens(base, body []byte) ([]byte, error) {
	prefixLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	count, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	tokenLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	if uint64(len(body)) != tokenLen {
		return nil, errs.Malformed("length mismatch")
	}
	if tokenLen > 0 && count > maxDeclaredLen/tokenLen {
		return nil, errs.Malformed("length mismatch")
	}

	middle := make([]byte, 0, count*tokenLen)
	for i := uint64(0); i < count; i++ {
		middle = append(middle, body...)
	}

	return splice(base, int(prefixLen), 0, middle)
}

func decodeTokens(base, body []byte) ([]byte, error) {
	prefixLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	midLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	count, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	if prefixLen > uint64(len(base)) || midLen > uint64(len(base))-prefixLen {
		return nil, errs.Malformed("length mismatch")
	}
	midBase := base[prefixLen : prefixLen+midLen]

	middle := make([]byte, 0, len(midBase))
	cursor := 0

	for i := uint64(0); i < count; i++ {
		offset, n, err := readBoundedVarint(body)
		if err != nil {
			return nil, err
		}
		body = body[n:]

		tokLen, n, err := readBoundedVarint(body)
		if err != nil {
			return nil, err
		}
		body = body[n:]

		if uint64(len(body)) < tokLen || offset < uint64(cursor) || offset > uint64(len(midBase)) {
			return nil, errs.Malformed("length mismatch")
		}

		middle = append(middle, midBase[cursor:offset]...)
		middle = append(middle, body[:tokLen]...)
		body = body[tokLen:]
		cursor = int(offset)
	}

	middle = append(middle, midBase[cursor:]...)

	if len(body) != 0 {
		return nil, errs.Malformed("length mismatch")
	}

	return splice(base, int(prefixLen), int(midLen), middle)
}

func decodeGDelta(base, body []byte) ([]byte, error) {
	newLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	return gdelta.Decode(base, body, int(newLen))
}

func decodeGDeltaZstd(base, body []byte) ([]byte, error) {
	newLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	compressedLen, n, err := readBoundedVarint(body)
	if err != nil {
		return nil, err
	}
	body = body[n:]

	if uint64(len(body)) != compressedLen {
		return nil, errs.Malformed("length mismatch")
	}

	// The instruction stream is typically a bit larger than new itself
	// (copy/insert tags plus offsets), so size the decompression hint
	// generously rather than trying to predict it exactly. newLen is
	// already bounded by readBoundedVarint, so this can't overflow or go
	// negative.
	stream, derr := compress.Default.Decompress(body, int(newLen)*2+64)
	if derr != nil {
		return nil, errs.Malformed("zstd decompression failed")
	}

	return gdelta.Decode(base, stream, int(newLen))
}
