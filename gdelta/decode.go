package gdelta

import "github.com/arloliu/xpatch/errs"

// maxPrealloc bounds how much capacity Decode will reserve up front based
// on a delta-supplied newLen. A corrupt delta can claim an arbitrary
// newLen; honoring it directly in make()'s capacity would let a few bytes
// of input trigger a multi-gigabyte (or negative-capacity, panicking)
// allocation before a single instruction is validated. Growth past this
// bound still happens normally via append as real instructions are
// replayed — this only caps the optimistic up-front reservation.
const maxPrealloc = 1 << 20

// Decode replays an instruction stream (as produced by Encode) against
// base, reconstructing a buffer of exactly newLen bytes. It terminates as
// soon as newLen bytes have been produced, and validates every copy
// instruction addresses a range inside base before reading it.
func Decode(base, stream []byte, newLen int) ([]byte, error) {
	if newLen < 0 {
		return nil, errs.Malformed("length mismatch")
	}

	prealloc := newLen
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}

	out := make([]byte, 0, prealloc)

	for len(out) < newLen {
		if len(stream) == 0 {
			return nil, errs.Malformed("truncated instruction stream")
		}

		instr, n, err := readInstruction(stream)
		if err != nil {
			return nil, err
		}
		stream = stream[n:]

		if instr.isInsert {
			if len(out)+instr.length > newLen {
				return nil, errs.Malformed("length mismatch")
			}

			out = append(out, instr.literal...)

			continue
		}

		if instr.offset < 0 || instr.length < 0 ||
			instr.offset+instr.length > len(base) || instr.offset+instr.length < instr.offset {
			return nil, errs.Malformed("copy offset out of range")
		}
		if len(out)+instr.length > newLen {
			return nil, errs.Malformed("length mismatch")
		}

		out = append(out, base[instr.offset:instr.offset+instr.length]...)
	}

	return out, nil
}
