package gdelta

import (
	"github.com/arloliu/xpatch/errs"
	"github.com/arloliu/xpatch/internal/varint"
)

// Each instruction in the stream starts with a single varint whose low bit
// is a discriminator (0 = copy from base, 1 = literal insert) and whose
// remaining bits are the instruction's length: a 1-bit discriminator prefix
// packed into a varint leading field.
//
//	copy:   varint((len<<1)|0) · varint(base_offset)
//	insert: varint((len<<1)|1) · literal_bytes[len]

func appendCopy(buf []byte, offset, length int) []byte {
	buf = varint.Append(buf, uint64(length)<<1)
	buf = varint.Append(buf, uint64(offset))

	return buf
}

func appendInsert(buf []byte, literal []byte) []byte {
	buf = varint.Append(buf, uint64(len(literal))<<1|1)

	return append(buf, literal...)
}

// instruction is one decoded step of the stream.
type instruction struct {
	isInsert bool
	length   int
	offset   int   // valid when !isInsert
	literal  []byte // valid when isInsert
}

// readInstruction decodes one instruction from the front of data.
func readInstruction(data []byte) (instruction, int, error) {
	tag, n, err := varint.Read(data)
	if err != nil {
		return instruction{}, 0, errs.Malformed(varintReason(err))
	}

	length := int(tag >> 1)
	consumed := n

	if tag&1 == 1 {
		// Checked as length > len(data)-consumed rather than
		// consumed+length > len(data): a maliciously large length (tag is
		// attacker-controlled) could otherwise overflow int and wrap the
		// sum negative, slipping past the check and panicking on the
		// slice below instead of returning an error.
		if length < 0 || length > len(data)-consumed {
			return instruction{}, 0, errs.Malformed("truncated instruction literal")
		}

		return instruction{isInsert: true, length: length, literal: data[consumed : consumed+length]}, consumed + length, nil
	}

	offset, n2, err := varint.Read(data[consumed:])
	if err != nil {
		return instruction{}, 0, errs.Malformed(varintReason(err))
	}

	return instruction{isInsert: false, length: length, offset: int(offset)}, consumed + n2, nil
}

func varintReason(err error) string {
	if err == varint.ErrOverflow {
		return "varint overflow"
	}

	return "truncated instruction"
}
