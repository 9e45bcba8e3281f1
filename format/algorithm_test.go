package format_test

import (
	"testing"

	"github.com/arloliu/xpatch/format"
	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	for code := uint8(0); code <= uint8(format.CharsZstd); code++ {
		assert.True(t, format.Valid(code), "code %d should be valid", code)
	}
	assert.False(t, format.Valid(uint8(format.CharsZstd)+1))
	assert.False(t, format.Valid(0xFF))
}

func TestString(t *testing.T) {
	cases := map[format.AlgorithmID]string{
		format.Chars:        "Chars",
		format.Tokens:       "Tokens",
		format.Remove:       "Remove",
		format.RepeatChars:  "RepeatChars",
		format.RepeatTokens: "RepeatTokens",
		format.GDelta:       "GDelta",
		format.GDeltaZstd:   "GDeltaZstd",
		format.CharsZstd:    "CharsZstd",
	}

	for algo, want := range cases {
		assert.Equal(t, want, algo.String())
	}

	assert.Equal(t, "Unknown", format.AlgorithmID(0xFF).String())
}

func TestPriority_ContainsEveryAlgorithmOnce(t *testing.T) {
	seen := make(map[format.AlgorithmID]bool)
	for _, a := range format.Priority {
		assert.False(t, seen[a], "duplicate priority entry for %s", a)
		seen[a] = true
	}
	assert.Len(t, format.Priority, 8)
}
