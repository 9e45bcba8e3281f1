package delta

import "github.com/arloliu/xpatch/internal/varint"

// tryChars encodes a pure insertion: mid.base is empty, so the entire
// middle change is the literal bytes of mid.new.
//
// Body: varint(prefix_len) || varint(|mid_new|) || mid_new
func tryChars(m mid) ([]byte, bool) {
	if len(m.base) != 0 {
		return nil, false
	}

	buf := newScratch(2*varint.MaxLen + len(m.new))
	appendVarint(buf, uint64(m.prefixLen))
	appendVarint(buf, uint64(len(m.new)))
	buf.Write(m.new)

	return done(buf), true
}
