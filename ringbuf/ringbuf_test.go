package ringbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/ringbuf"
)

func TestNew_Errors(t *testing.T) {
	_, err := ringbuf.New[int](0)
	assert.ErrorIs(t, err, ringbuf.ErrBadCapacity)
	_, err = ringbuf.New[int](-3)
	assert.ErrorIs(t, err, ringbuf.ErrBadCapacity)
	_, err = ringbuf.New(2, 1, 2, 3)
	assert.ErrorIs(t, err, ringbuf.ErrCapacityExceeded)
}

func TestBuffer_FIFO(t *testing.T) {
	b, err := ringbuf.New[string](4)
	require.NoError(t, err)
	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, b.Write(s))
	}
	assert.True(t, b.Full())

	err = b.Write("e")
	assert.ErrorIs(t, err, ringbuf.ErrCapacityExceeded)
	assert.Equal(t, 4, b.Len(), "failed write must not change contents")

	var got []string
	for {
		v, ok := b.Read()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.True(t, b.Empty())
}

// TestBuffer_WrapAround interleaves reads and writes so the head wraps
// the backing slice several times.
func TestBuffer_WrapAround(t *testing.T) {
	b, err := ringbuf.New(3, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())

	next, want := 2, 0
	for i := 0; i < 50; i++ {
		require.NoError(t, b.Write(next))
		next++
		v, ok := b.Read()
		require.True(t, ok)
		assert.Equal(t, want, v)
		want++
	}
	p, ok := b.Peek()
	require.True(t, ok)
	assert.Equal(t, want, p)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 3, b.Cap())

	b.Reset()
	assert.True(t, b.Empty())
	_, ok = b.Read()
	assert.False(t, ok)
	_, ok = b.Peek()
	assert.False(t, ok)
}

func TestBuffer_FullThenCapacityPlusOne(t *testing.T) {
	const capacity = 8
	b, err := ringbuf.New[int](capacity)
	require.NoError(t, err)
	for i := 0; i < capacity; i++ {
		require.NoError(t, b.Write(i))
	}
	assert.ErrorIs(t, b.Write(capacity), ringbuf.ErrCapacityExceeded)
	_, _ = b.Read()
	assert.NoError(t, b.Write(capacity))
}
