package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.Bytes())

	c := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, c, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(64)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("abc"))
		bb.Grow(100)
		assert.Equal(t, []byte("abc"), bb.Bytes())
		assert.GreaterOrEqual(t, bb.Cap()-bb.Len(), PayloadBufferDefaultSize)
	})

	t.Run("large request", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.Grow(PayloadBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, bb.Cap(), PayloadBufferDefaultSize*3)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		bb := NewByteBuffer(8 * PayloadBufferDefaultSize)
		bb.B = bb.B[:bb.Cap()]
		bb.Grow(1)
		assert.Equal(t, 10*PayloadBufferDefaultSize, bb.Cap())
	})
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	_, _ = bb.Write([]byte("payload"))
	p.Put(bb)

	again := p.Get()
	assert.Equal(t, 0, again.Len())

	p.Put(nil)
	p.Put(NewByteBuffer(1024))
}

func TestPayloadPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id byte) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := GetPayloadBuffer()
				assert.Equal(t, 0, bb.Len())
				_, _ = bb.Write([]byte{id, byte(j)})
				assert.Equal(t, []byte{id, byte(j)}, bb.Bytes())
				PutPayloadBuffer(bb)
			}
		}(byte(i))
	}
	wg.Wait()
}
