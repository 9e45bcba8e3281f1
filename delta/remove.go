package delta

import "github.com/arloliu/xpatch/internal/varint"

// tryRemove encodes a pure deletion: mid.new is empty, so only the removed
// length needs transporting (not an absolute end offset, to keep large
// deletions cheap regardless of base size).
//
// Body: varint(prefix_len) || varint(removed_len)
func tryRemove(m mid) ([]byte, bool) {
	if len(m.new) != 0 {
		return nil, false
	}

	buf := newScratch(2 * varint.MaxLen)
	appendVarint(buf, uint64(m.prefixLen))
	appendVarint(buf, uint64(len(m.base)))

	return done(buf), true
}
