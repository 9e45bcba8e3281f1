package delta

import "github.com/arloliu/xpatch/internal/varint"

// maxTokenChunks bounds how many insertion points tryTokens will consider
// before giving up and letting GDelta handle the change instead. This is a
// heuristic threshold left implementation-defined by the wire format; the
// decoder faithfully inverts whatever count the encoder actually emits, so
// the exact cutoff doesn't affect wire compatibility.
const maxTokenChunks = 32

type tokenChunk struct {
	offset int
	token  []byte
}

// tryTokens encodes mid.new as a short sequence of insertions at fixed
// offsets inside mid.base: an edit that adds bytes but never deletes or
// replaces any byte of mid.base.
//
// The insertion points are found with a greedy two-pointer scan: wherever
// mid.base and mid.new agree, both cursors advance together; wherever they
// disagree, the mismatched run of mid.new is an inserted token at the
// current mid.base offset. If every byte of mid.base is consumed this way,
// the edit is insertion-only and Tokens applies; otherwise (a byte would
// need to be deleted or replaced) it doesn't, and the caller falls back to
// another algorithm.
//
// Body: varint(prefix_len) || varint(mid_len) || varint(count) ||
// (varint(offset) · varint(tok_len) · tok_bytes){count}
func tryTokens(m mid) ([]byte, bool) {
	var chunks []tokenChunk

	i, j := 0, 0
	for j < len(m.new) {
		if i < len(m.base) && m.base[i] == m.new[j] {
			i++
			j++

			continue
		}

		start := j
		for j < len(m.new) && (i >= len(m.base) || m.base[i] != m.new[j]) {
			j++
		}

		chunks = append(chunks, tokenChunk{offset: i, token: m.new[start:j]})
		if len(chunks) > maxTokenChunks {
			return nil, false
		}
	}

	if i != len(m.base) || len(chunks) == 0 {
		return nil, false
	}

	capHint := 3 * varint.MaxLen
	for _, c := range chunks {
		capHint += 2*varint.MaxLen + len(c.token)
	}

	buf := newScratch(capHint)
	appendVarint(buf, uint64(m.prefixLen))
	appendVarint(buf, uint64(len(m.base)))
	appendVarint(buf, uint64(len(chunks)))
	for _, c := range chunks {
		appendVarint(buf, uint64(c.offset))
		appendVarint(buf, uint64(len(c.token)))
		buf.Write(c.token)
	}

	return done(buf), true
}
