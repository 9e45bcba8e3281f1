package compress_test

import (
	"testing"

	"github.com/arloliu/xpatch/compress"
	"github.com/stretchr/testify/require"
)

func TestZstdCodec_RoundTrip(t *testing.T) {
	codec := compress.NewZstdCodec()

	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("a"),
		[]byte("hello, world!"),
		bytesRepeat('x', 10_000),
	}

	for _, original := range cases {
		compressed, err := codec.Compress(original)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed, len(original))
		require.NoError(t, err)
		require.Equal(t, original, restored)
	}
}

func TestZstdCodec_CompressesRepetitiveData(t *testing.T) {
	codec := compress.NewZstdCodec()

	original := bytesRepeat('a', 10_000)
	compressed, err := codec.Compress(original)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(original))
}

func TestZstdCodec_DecompressRejectsCorruption(t *testing.T) {
	codec := compress.NewZstdCodec()

	compressed, err := codec.Compress([]byte("a reasonably compressible payload, repeated, repeated, repeated"))
	require.NoError(t, err)

	corrupted := append([]byte(nil), compressed...)
	corrupted[0] ^= 0xFF // corrupt the zstd magic number, guaranteeing a frame-parse error

	_, err = codec.Decompress(corrupted, 64)
	require.Error(t, err)
}

func bytesRepeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}

	return out
}
