package delta

import (
	"github.com/arloliu/xpatch/compress"
	"github.com/arloliu/xpatch/internal/varint"
)

// tryCharsZstd is the CharsZstd variant of tryChars: same insertion-only
// precondition, but mid.new travels compressed. It should be chosen only if
// it beats Chars in size — that comparison is the selector's job (it
// compares every candidate's total length), so this function just produces
// the compressed candidate whenever the precondition holds and enableZstd
// is set; a body that loses to Chars is simply never selected.
//
// Body: varint(prefix_len) || varint(new_mid_len) || varint(compressed_len) || compressed_bytes
func tryCharsZstd(m mid, enableZstd bool) ([]byte, bool) {
	if !enableZstd || len(m.base) != 0 || len(m.new) == 0 {
		return nil, false
	}

	compressed, err := compress.Default.Compress(m.new)
	if err != nil {
		return nil, false
	}

	buf := newScratch(3*varint.MaxLen + len(compressed))
	appendVarint(buf, uint64(m.prefixLen))
	appendVarint(buf, uint64(len(m.new)))
	appendVarint(buf, uint64(len(compressed)))
	buf.Write(compressed)

	return done(buf), true
}
