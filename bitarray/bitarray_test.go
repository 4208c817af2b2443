package bitarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	collections "github.com/aglyzov/go-collections"
)

func mustNew(t *testing.T, size int) *BitArray {
	t.Helper()

	b, err := New(size)
	require.NoError(t, err)
	return b
}

func setBits(t *testing.T, b *BitArray, indices ...int) {
	t.Helper()

	for _, i := range indices {
		require.NoError(t, b.Set(i))
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name       string
		Size       int
		ExpBuckets int
		ExpOK      bool
	}{
		{"zero size", 0, 0, false},
		{"negative size", -1, 0, false},
		{"one bit", 1, 1, true},
		{"full bucket", 64, 1, true},
		{"bucket plus one", 65, 2, true},
		{"several buckets", 200, 4, true},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			b, err := New(tcase.Size)

			if !tcase.ExpOK {
				assert.ErrorIs(t, err, collections.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tcase.Size, b.Size())
			assert.Equal(t, tcase.ExpBuckets, b.Buckets())
			assert.True(t, b.None())
		})
	}
}

func TestSetResetFlip(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 100)

	require.NoError(t, b.Set(3))
	require.NoError(t, b.Set(64))

	on, err := b.Test(3)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = b.Test(4)
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, b.Reset(3))
	on, err = b.Test(3)
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, b.Flip(64)) // off
	require.NoError(t, b.Flip(64)) // on again
	on, err = b.Test(64)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestIndexBounds(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 10)

	_, err := b.Test(10)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	assert.ErrorIs(t, b.Set(-1), collections.ErrInvalidArgument)
	assert.ErrorIs(t, b.Reset(10), collections.ErrInvalidArgument)
	assert.ErrorIs(t, b.Flip(10), collections.ErrInvalidArgument)
}

func TestCount(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 130)
	setBits(t, b, 0, 63, 64, 127, 128)

	assert.Equal(t, 5, b.Count())
}

func TestAnyAllNone(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 70)

	assert.False(t, b.Any())
	assert.True(t, b.None())
	assert.False(t, b.All())

	setBits(t, b, 7)
	assert.True(t, b.Any())
	assert.False(t, b.None())
	assert.False(t, b.All())

	require.NoError(t, b.Fill())
	assert.True(t, b.All())
	assert.Equal(t, 70, b.Count())

	require.NoError(t, b.Clear())
	assert.True(t, b.None())
	assert.Equal(t, 0, b.Count())
}

// Fill and Not must not set the unused tail bits of the last bucket, or
// Count and All would be wrong.
func TestTailBitsStayZero(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 10)

	require.NoError(t, b.Fill())
	assert.Equal(t, 10, b.Count())

	empty := mustNew(t, 10)
	inverted, err := empty.Not()
	require.NoError(t, err)
	assert.Equal(t, 10, inverted.Count())
	assert.True(t, inverted.All())
}

func TestBinaryOperators(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 8)
	setBits(t, a, 0, 1, 2)

	b := mustNew(t, 8)
	setBits(t, b, 1, 2, 3)

	and, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, 2, and.Count()) // bits 1, 2

	or, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, 4, or.Count()) // bits 0..3

	xor, err := a.Xor(b)
	require.NoError(t, err)
	assert.Equal(t, 2, xor.Count()) // bits 0, 3

	on, err := xor.Test(0)
	require.NoError(t, err)
	assert.True(t, on)
	on, err = xor.Test(3)
	require.NoError(t, err)
	assert.True(t, on)
}

// The shorter operand is zero-extended to the longer one's size.
func TestBinaryOperators_ZeroExtension(t *testing.T) {
	t.Parallel()

	short := mustNew(t, 10)
	setBits(t, short, 0, 9)

	long := mustNew(t, 70)
	setBits(t, long, 0, 69)

	or, err := short.Or(long)
	require.NoError(t, err)
	assert.Equal(t, 70, or.Size())
	assert.Equal(t, 3, or.Count()) // bits 0, 9, 69

	and, err := long.And(short)
	require.NoError(t, err)
	assert.Equal(t, 70, and.Size())
	assert.Equal(t, 1, and.Count()) // bit 0 only
}

func TestDeMorgan(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 40)
	setBits(t, a, 1, 5, 30)

	b := mustNew(t, 40)
	setBits(t, b, 5, 6, 39)

	and, err := a.And(b)
	require.NoError(t, err)
	left, err := and.Not()
	require.NoError(t, err)

	notA, err := a.Not()
	require.NoError(t, err)
	notB, err := b.Not()
	require.NoError(t, err)
	right, err := notA.Or(notB)
	require.NoError(t, err)

	assert.Equal(t, left.Count(), right.Count())
	for i := 0; i < 40; i++ {
		l, err := left.Test(i)
		require.NoError(t, err)
		r, err := right.Test(i)
		require.NoError(t, err)
		assert.Equal(t, l, r, "bit %d", i)
	}
}

func TestCopy_Independent(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 20)
	setBits(t, b, 3, 4)

	clone, err := b.Copy()
	require.NoError(t, err)

	require.NoError(t, b.Reset(3))

	on, err := clone.Test(3)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, 2, clone.Count())
}

func TestNilReceiver(t *testing.T) {
	t.Parallel()

	var b *BitArray

	assert.Equal(t, 0, b.Size())
	assert.Equal(t, 0, b.Buckets())
	assert.Equal(t, 0, b.Count())
	assert.False(t, b.Any())
	assert.True(t, b.None())
	assert.False(t, b.All())

	_, err := b.Test(0)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	assert.ErrorIs(t, b.Set(0), collections.ErrInvalidArgument)

	_, err = b.Not()
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}
