package canfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiveQueuePushPop(t *testing.T) {
	q := NewReceiveQueue(4)
	frame := NewFrame(0x184, []byte{1, 2, 3})

	require.NoError(t, q.Push(frame))
	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, frame, got)

	_, ok = q.Pop()
	assert.False(t, ok, "pop on empty queue must report empty")
}

func TestReceiveQueueOverflow(t *testing.T) {
	q := NewReceiveQueue(4)
	a := NewFrame(1, []byte{'A'})
	b := NewFrame(2, []byte{'B'})
	c := NewFrame(3, []byte{'C'})
	d := NewFrame(4, []byte{'D'})
	e := NewFrame(5, []byte{'E'})

	require.NoError(t, q.Push(a))
	require.NoError(t, q.Push(b))
	require.NoError(t, q.Push(c))
	require.NoError(t, q.Push(d))
	assert.Equal(t, 4, q.Len())

	err := q.Push(e)
	assert.ErrorIs(t, err, ErrQueueOverflow)

	for _, want := range []Frame{b, c, d, e} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}
