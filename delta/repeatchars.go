package delta

import "github.com/arloliu/xpatch/internal/varint"

// tryRepeatChars encodes mid.new as a run of a single repeated byte value.
// Like Chars, it requires mid.base to be empty: the body has no field for
// a removed_len, so any base bytes in the middle region would have no way
// to be skipped on decode.
//
// Body: varint(prefix_len) || varint(count) || byte
func tryRepeatChars(m mid) ([]byte, bool) {
	if len(m.base) != 0 || len(m.new) == 0 {
		return nil, false
	}

	first := m.new[0]
	for _, b := range m.new[1:] {
		if b != first {
			return nil, false
		}
	}

	buf := newScratch(2*varint.MaxLen + 1)
	appendVarint(buf, uint64(m.prefixLen))
	appendVarint(buf, uint64(len(m.new)))
	buf.WriteByte(first)

	return done(buf), true
}
