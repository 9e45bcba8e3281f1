package delta

import (
	"testing"

	"github.com/arloliu/xpatch/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_FastPathRoundTrip(t *testing.T) {
	for tag := uint64(0); tag < tagFastPathLimit; tag++ {
		buf := appendHeader(nil, format.Tokens, tag)
		assert.Len(t, buf, 1)

		algo, gotTag, n, err := parseHeader(buf)
		require.NoError(t, err)
		assert.Equal(t, format.Tokens, algo)
		assert.Equal(t, tag, gotTag)
		assert.Equal(t, 1, n)
	}
}

func TestHeader_EscapeRoundTrip(t *testing.T) {
	tags := []uint64{15, 16, 84, 15 + 127, 15 + 128, 1 << 20}

	for _, tag := range tags {
		buf := appendHeader(nil, format.GDelta, tag)

		algo, gotTag, n, err := parseHeader(buf)
		require.NoError(t, err)
		assert.Equal(t, format.GDelta, algo)
		assert.Equal(t, tag, gotTag)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, headerSize(tag), len(buf))
	}
}

func TestHeader_FastPathOnlyDiffersInLowNibble(t *testing.T) {
	// For tag in [0,15), the delta differs from the tag=0 delta only in
	// the header's low nibble.
	a := appendHeader(nil, format.Chars, 0)
	b := appendHeader(nil, format.Chars, 7)

	assert.Equal(t, len(a), len(b))
	assert.Equal(t, a[0]&0xF0, b[0]&0xF0)
	assert.NotEqual(t, a[0]&0x0F, b[0]&0x0F)
}

func TestParseHeader_TruncatedEmpty(t *testing.T) {
	_, _, _, err := parseHeader(nil)
	assert.Error(t, err)
}

func TestParseHeader_UnknownAlgorithm(t *testing.T) {
	// AlgorithmID 8 doesn't exist; the high nibble carries 8.
	_, _, _, err := parseHeader([]byte{0x80})
	assert.Error(t, err)
}

func TestParseHeader_TruncatedOverflowVarint(t *testing.T) {
	buf := []byte{byte(format.Chars)<<4 | tagEscapeNibble, 0x80, 0x80}
	_, _, _, err := parseHeader(buf)
	assert.Error(t, err)
}

func TestHeaderSize_MatchesAppendHeader(t *testing.T) {
	for _, tag := range []uint64{0, 14, 15, 200, 1 << 30} {
		buf := appendHeader(nil, format.Remove, tag)
		assert.Equal(t, headerSize(tag), len(buf))
	}
}
