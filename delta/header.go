package delta

import (
	"github.com/arloliu/xpatch/errs"
	"github.com/arloliu/xpatch/format"
	"github.com/arloliu/xpatch/internal/varint"
)

// tagFastPathLimit is the smallest tag that no longer fits directly in the
// header's low nibble: the nibble carries the tag literally for tag < 15 and is set
// to the reserved escape value (0xF) otherwise, so a tag of exactly 15
// already costs one overflow varint byte (see DESIGN.md's note on the
// wire-format tag-threshold decision).
const tagFastPathLimit = 15

// tagEscapeNibble is the reserved low-nibble value signaling that the tag
// did not fit in the fast path and a tag_overflow varint follows.
const tagEscapeNibble = 0xF

// appendHeader writes the one-byte header (and, if needed, the tag_overflow
// varint) for (algo, tag) to buf.
func appendHeader(buf []byte, algo format.AlgorithmID, tag uint64) []byte {
	if tag < tagFastPathLimit {
		return append(buf, byte(algo)<<4|byte(tag))
	}

	buf = append(buf, byte(algo)<<4|tagEscapeNibble)

	return varint.Append(buf, tag-tagFastPathLimit)
}

// headerSize returns the number of bytes appendHeader would write for tag.
func headerSize(tag uint64) int {
	if tag < tagFastPathLimit {
		return 1
	}

	return 1 + varint.Size(tag-tagFastPathLimit)
}

// parseHeader reads (algorithm, tag) from the front of delta, returning the
// number of bytes consumed.
func parseHeader(data []byte) (algo format.AlgorithmID, tag uint64, n int, err error) {
	if len(data) == 0 {
		return 0, 0, 0, errs.Malformed("truncated header")
	}

	b := data[0]
	code := b >> 4
	if !format.Valid(code) {
		return 0, 0, 0, errs.Malformed("unknown algorithm code")
	}

	nibble := b & 0x0F
	if nibble != tagEscapeNibble {
		return format.AlgorithmID(code), uint64(nibble), 1, nil
	}

	overflow, consumed, verr := varint.Read(data[1:])
	if verr != nil {
		return 0, 0, 0, errs.Malformed(headerVarintReason(verr))
	}

	return format.AlgorithmID(code), overflow + tagFastPathLimit, 1 + consumed, nil
}

func headerVarintReason(err error) string {
	if err == varint.ErrOverflow {
		return "varint overflow"
	}

	return "truncated header"
}
