package gdelta_test

import (
	"bytes"
	"testing"

	"github.com/arloliu/xpatch/gdelta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, base, newBuf []byte) {
	t.Helper()

	stream := gdelta.Encode(base, newBuf)
	got, err := gdelta.Decode(base, stream, len(newBuf))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(newBuf, got))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		base string
		new  string
	}{
		{"empty both", "", ""},
		{"empty base", "", "hello world"},
		{"empty new", "hello world", ""},
		{"identical", "the quick brown fox", "the quick brown fox"},
		{"append", "the quick brown fox", "the quick brown fox jumps over the lazy dog"},
		{"prepend", "brown fox", "the quick brown fox"},
		{"interleaved", "AAAABBBBCCCCDDDD", "AAAAXXXXBBBBCCCCYYYYDDDD"},
		{"reordered blocks", "ABCDEFGHIJKLMNOP", "IJKLMNOPABCDEFGH"},
		{"no overlap", "abcdefghijklmnop", "0123456789zyxwvu"},
		{"repeated long run", "abcdefghabcdefghabcdefgh", "abcdefghabcdefghabcdefghabcdefgh"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roundTrip(t, []byte(tc.base), []byte(tc.new))
		})
	}
}

func TestEncodeDecode_LargeRepetitive(t *testing.T) {
	base := bytes.Repeat([]byte("X"), 1000)
	newBuf := append(append([]byte{}, base...), bytes.Repeat([]byte("Y"), 100)...)

	stream := gdelta.Encode(base, newBuf)
	assert.Less(t, len(stream), len(newBuf))

	got, err := gdelta.Decode(base, stream, len(newBuf))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(newBuf, got))
}

func TestDecode_RejectsOutOfRangeCopy(t *testing.T) {
	base := []byte("short")
	// A copy instruction requesting 100 bytes at offset 0 from a 5-byte base.
	stream := []byte{}
	stream = append(stream, encodeTestCopy(100, 0)...)

	_, err := gdelta.Decode(base, stream, 100)
	assert.Error(t, err)
}

func TestDecode_RejectsTruncatedStream(t *testing.T) {
	_, err := gdelta.Decode([]byte("base"), nil, 10)
	assert.Error(t, err)
}

// encodeTestCopy mirrors gdelta's private copy-instruction framing
// (varint((len<<1)|0) || varint(offset)) so decode-side validation can be
// exercised without a matching Encode call that would never produce an
// out-of-range instruction on its own.
func encodeTestCopy(length, offset int) []byte {
	var buf []byte
	buf = appendTestVarint(buf, uint64(length)<<1)
	buf = appendTestVarint(buf, uint64(offset))

	return buf
}

func appendTestVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}
