// Package gdelta implements xpatch's general-purpose delta algorithm: a
// copy/insert instruction stream over base, used when none of the
// specialized algorithms in the delta package applies (or none wins).
//
// The decode-side instruction dispatch is grounded on the shape of
// go-git's packfile.patchDelta (copy-from-source vs. literal-insert
// dispatch loop); the instruction framing itself is xpatch's own (a 1-bit
// discriminator packed into a leading varint) rather than git's packed
// offset/size nibbles, since the wire format here is independently
// specified.
//
// The encode-side content-defined matcher (this file) is a fresh design: a
// fixed k-gram rolling window hashed with xxhash, indexed into a
// power-of-two table holding one last-seen offset per bucket (a later
// k-gram overwrites an earlier one; there is no probing).
package gdelta

import "github.com/cespare/xxhash/v2"

// kgramLen is the fixed window size hashed into the match index. 16 gives
// finer-grained matches for the small-to-medium buffers xpatch targets
// (whole files/records materialized in memory, not multi-gigabyte blobs).
const kgramLen = 16

// minTableSize floors the hash table size so tiny bases still get a usable
// (if oversized relative to content) index instead of degenerating to a
// single bucket.
const minTableSize = 16

// matcher is a content-defined hash index over base: for every k-gram
// window it remembers the most recent offset that produced that window's
// hash, so encode can look up "has new[j:j+k] been seen in base before".
//
// Collisions are possible (two different k-grams hashing to the same
// bucket) since the table stores only the last offset, not the key itself;
// every lookup re-verifies the actual bytes before trusting a hit, per the
// requirement that xpatch never emits a COPY instruction that doesn't
// truly match.
type matcher struct {
	base  []byte
	table []int32 // bucket -> last base offset whose k-gram hashed here, or -1
	mask  uint64
}

// newMatcher indexes every k-gram window of base. If base is shorter than
// kgramLen, the table is left empty and every lookup simply misses —
// correctness doesn't depend on the index; it only affects how many COPY
// instructions the encoder manages to find.
func newMatcher(base []byte) *matcher {
	size := nextPow2(max(minTableSize, len(base)/kgramLen))
	table := make([]int32, size)
	for i := range table {
		table[i] = -1
	}

	m := &matcher{base: base, table: table, mask: uint64(size - 1)}

	if len(base) < kgramLen {
		return m
	}

	for i := 0; i+kgramLen <= len(base); i++ {
		bucket := xxhash.Sum64(base[i:i+kgramLen]) & m.mask
		table[bucket] = int32(i)
	}

	return m
}

// lookup finds the longest verified run starting at new[pos:] that also
// appears in base, by hashing the k-gram at pos and checking the candidate
// offset the table remembers for that bucket.
//
// Returns ok=false if there's no k-gram to hash (fewer than kgramLen bytes
// remain), the bucket is empty, or the candidate is a hash collision that
// doesn't actually match byte-for-byte.
func (m *matcher) lookup(newBuf []byte, pos int) (offset, length int, ok bool) {
	if pos+kgramLen > len(newBuf) {
		return 0, 0, false
	}

	bucket := xxhash.Sum64(newBuf[pos:pos+kgramLen]) & m.mask
	cand := m.table[bucket]
	if cand < 0 {
		return 0, 0, false
	}

	candOffset := int(cand)
	if candOffset+kgramLen > len(m.base) {
		return 0, 0, false
	}

	if string(m.base[candOffset:candOffset+kgramLen]) != string(newBuf[pos:pos+kgramLen]) {
		return 0, 0, false // hash collision, not a real match
	}

	// Extend the match forward as far as possible; the scan is a single
	// forward pass over new, so bytes before pos are already committed to
	// the instruction stream and can't be folded into this match.
	matchLen := kgramLen
	for candOffset+matchLen < len(m.base) && pos+matchLen < len(newBuf) &&
		m.base[candOffset+matchLen] == newBuf[pos+matchLen] {
		matchLen++
	}

	return candOffset, matchLen, true
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
