package queue

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	collections "github.com/aglyzov/go-collections"
	"github.com/aglyzov/go-collections/record"
)

func intRecord(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func recordInt(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func intCompare(first, second []byte) int {
	a, b := recordInt(first), recordInt(second)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func intScheme() record.Scheme {
	return record.Scheme{Width: 4}
}

func drain(t *testing.T, q *Queue) []uint32 {
	t.Helper()

	out := make([]uint32, 0, q.Len())
	buffer := make([]byte, 4)

	for !q.Empty() {
		require.NoError(t, q.Dequeue(buffer))
		out = append(out, recordInt(buffer))
	}

	return out
}

func TestNew_ForwardsValidation(t *testing.T) {
	t.Parallel()

	_, err := New(record.Scheme{Width: 0}, 10)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)

	_, err = New(intScheme(), 0)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)

	q, err := New(intScheme(), 10)
	require.NoError(t, err)
	assert.Equal(t, 4, q.Width())
	assert.Equal(t, 10, q.Limit())
}

func TestEnqueueDequeue_FIFO(t *testing.T) {
	t.Parallel()

	q, err := New(intScheme(), 10)
	require.NoError(t, err)

	for _, n := range []uint32{1, 2, 3} {
		require.NoError(t, q.Enqueue(intRecord(n)))
	}

	assert.Equal(t, []uint32{1, 2, 3}, drain(t, q))
}

func TestPeek_DoesNotConsume(t *testing.T) {
	t.Parallel()

	q, err := New(intScheme(), 10)
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(intRecord(5)))
	require.NoError(t, q.Enqueue(intRecord(6)))

	buffer := make([]byte, 4)
	require.NoError(t, q.Peek(buffer))
	assert.Equal(t, uint32(5), recordInt(buffer))
	assert.Equal(t, 2, q.Len())
}

func TestDequeue_Empty(t *testing.T) {
	t.Parallel()

	q, err := New(intScheme(), 10)
	require.NoError(t, err)

	assert.ErrorIs(t, q.Dequeue(make([]byte, 4)), collections.ErrInvalidArgument)
	assert.ErrorIs(t, q.Peek(make([]byte, 4)), collections.ErrInvalidArgument)
}

func TestEnqueue_AtLimit(t *testing.T) {
	t.Parallel()

	q, err := New(intScheme(), 2)
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(intRecord(1)))
	require.NoError(t, q.Enqueue(intRecord(2)))
	assert.True(t, q.Full())

	assert.ErrorIs(t, q.Enqueue(intRecord(3)), collections.ErrNoSpace)
	assert.Equal(t, 2, q.Len())
}

func TestCopy_Independent(t *testing.T) {
	t.Parallel()

	q, err := New(intScheme(), 10)
	require.NoError(t, err)

	for _, n := range []uint32{1, 2, 3} {
		require.NoError(t, q.Enqueue(intRecord(n)))
	}

	clone, err := q.Copy()
	require.NoError(t, err)

	require.NoError(t, q.Dequeue(nil))
	assert.Equal(t, []uint32{1, 2, 3}, drain(t, clone))
}

func TestReverse(t *testing.T) {
	t.Parallel()

	q, err := New(intScheme(), 10)
	require.NoError(t, err)

	for _, n := range []uint32{1, 2, 3} {
		require.NoError(t, q.Enqueue(intRecord(n)))
	}

	reversed, err := q.Reverse()
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 2, 1}, drain(t, reversed))
	assert.Equal(t, []uint32{1, 2, 3}, drain(t, q))
}

func TestContains(t *testing.T) {
	t.Parallel()

	q, err := New(intScheme(), 10)
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(intRecord(7)))

	assert.True(t, q.Contains(intRecord(7), intCompare))
	assert.False(t, q.Contains(intRecord(8), intCompare))
}

func TestClear_Idempotent(t *testing.T) {
	t.Parallel()

	q, err := New(intScheme(), 10)
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(intRecord(1)))

	require.NoError(t, q.Clear())
	assert.Equal(t, 0, q.Len())
	require.NoError(t, q.Clear())
	assert.Equal(t, 0, q.Len())
}

func TestNilReceiver(t *testing.T) {
	t.Parallel()

	var q *Queue

	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Empty())
	assert.False(t, q.Full())
	assert.False(t, q.Contains(intRecord(1), intCompare))
	assert.ErrorIs(t, q.Enqueue(intRecord(1)), collections.ErrInvalidArgument)
	assert.ErrorIs(t, q.Dequeue(nil), collections.ErrInvalidArgument)
}
