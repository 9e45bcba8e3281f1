package pool_test

import (
	"testing"

	"github.com/arloliu/xpatch/internal/pool"
	"github.com/stretchr/testify/assert"
)

func TestGetPut_RoundTrip(t *testing.T) {
	bb := pool.Get()
	assert.Equal(t, 0, bb.Len())

	bb.Write([]byte("hello"))
	bb.WriteByte(' ')
	bb.Write([]byte("world"))
	assert.Equal(t, "hello world", string(bb.Bytes()))

	pool.Put(bb)
}

func TestGrow_PreservesContent(t *testing.T) {
	bb := pool.Get()
	bb.Write([]byte("abc"))
	bb.Grow(10 * pool.CandidateDefaultSize)
	assert.Equal(t, "abc", string(bb.Bytes()))
	assert.GreaterOrEqual(t, cap(bb.B), 3+10*pool.CandidateDefaultSize)

	pool.Put(bb)
}

func TestPut_DiscardsOversizedBuffers(t *testing.T) {
	bb := pool.Get()
	bb.Grow(pool.CandidateMaxThreshold + 1)
	pool.Put(bb) // must not panic; oversized buffers are simply dropped

	fresh := pool.Get()
	assert.Equal(t, 0, fresh.Len())
}

func TestPut_Nil(t *testing.T) {
	assert.NotPanics(t, func() { pool.Put(nil) })
}

func TestReset(t *testing.T) {
	bb := pool.Get()
	bb.Write([]byte("data"))
	bb.Reset()
	assert.Equal(t, 0, bb.Len())

	pool.Put(bb)
}
