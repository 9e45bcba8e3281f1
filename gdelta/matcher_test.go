package gdelta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_LookupFindsExactMatch(t *testing.T) {
	base := []byte("the quick brown fox jumps over the lazy dog")
	m := newMatcher(base)

	offset, length, ok := m.lookup([]byte("xxxthe quick brown fox jumps over the lazy dogxxx"), 3)
	assert.True(t, ok)
	assert.Equal(t, 0, offset)
	assert.Equal(t, len("the quick brown fox jumps over the lazy dog"), length)
}

func TestMatcher_LookupMissWhenNoKgram(t *testing.T) {
	base := []byte("short")
	m := newMatcher(base)

	_, _, ok := m.lookup([]byte("anything at all, much longer than base"), 0)
	assert.False(t, ok)
}

func TestMatcher_LookupRespectsBounds(t *testing.T) {
	base := []byte("0123456789abcdef")
	m := newMatcher(base)

	// pos too close to the end of newBuf for a full k-gram.
	_, _, ok := m.lookup([]byte("short"), 2)
	assert.False(t, ok)
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 16: 16, 17: 32, 1000: 1024}
	for in, want := range cases {
		assert.Equal(t, want, nextPow2(in))
	}
}
