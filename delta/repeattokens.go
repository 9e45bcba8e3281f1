package delta

import "github.com/arloliu/xpatch/internal/varint"

// tryRepeatTokens encodes mid.new as a run of one repeating multi-byte
// token (token_len >= 2, at least two repetitions). The smallest period
// that evenly divides mid.new is chosen, checked in ascending order so the
// result is deterministic.
//
// Like Chars, it requires mid.base to be empty: the body has no removed_len
// field to account for base bytes in the middle region.
//
// Body: varint(prefix_len) || varint(count) || varint(token_len) || token_bytes
func tryRepeatTokens(m mid) ([]byte, bool) {
	if len(m.base) != 0 {
		return nil, false
	}

	n := len(m.new)
	if n < 4 {
		return nil, false
	}

	for tokenLen := 2; tokenLen <= n/2; tokenLen++ {
		if n%tokenLen != 0 {
			continue
		}

		token := m.new[:tokenLen]
		if !isPeriodic(m.new, token) {
			continue
		}

		count := n / tokenLen

		buf := newScratch(3*varint.MaxLen + tokenLen)
		appendVarint(buf, uint64(m.prefixLen))
		appendVarint(buf, uint64(count))
		appendVarint(buf, uint64(tokenLen))
		buf.Write(token)

		return done(buf), true
	}

	return nil, false
}

// isPeriodic reports whether data consists entirely of repetitions of token.
func isPeriodic(data, token []byte) bool {
	for i := 0; i < len(data); i += len(token) {
		if string(data[i:i+len(token)]) != string(token) {
			return false
		}
	}

	return true
}
