package gdelta

// minMatchLen is the shortest match the encoder will emit as a COPY
// instruction; shorter runs cost more in instruction overhead (tag +
// offset) than they save versus a literal, so they're folded into the
// surrounding INSERT instead.
const minMatchLen = kgramLen

// Encode produces the copy/insert instruction stream that reconstructs new
// from base. It does not include the new_len prefix the wire format
// specifies — that's a framing concern the delta package's GDelta/GDeltaZstd
// bodies add, since GDeltaZstd compresses the instruction stream but leaves
// new_len in the clear.
func Encode(base, newBuf []byte) []byte {
	m := newMatcher(base)

	var out []byte
	literalStart := 0
	pos := 0

	flushLiteral := func(end int) {
		if end > literalStart {
			out = appendInsert(out, newBuf[literalStart:end])
		}
	}

	for pos < len(newBuf) {
		offset, length, ok := m.lookup(newBuf, pos)
		if !ok || length < minMatchLen {
			pos++

			continue
		}

		flushLiteral(pos)
		out = appendCopy(out, offset, length)
		pos += length
		literalStart = pos
	}

	flushLiteral(len(newBuf))

	return out
}
