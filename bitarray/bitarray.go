// Package bitarray implements a fixed-size bit vector with boolean-algebra
// operators. Binary operators accept operands of different sizes and treat
// the shorter one as zero-extended instead of erroring.
package bitarray

import (
	"github.com/cockroachdb/errors"
	"github.com/hideo55/go-popcount"

	collections "github.com/aglyzov/go-collections"
)

const bucketBits = 64

// BitArray is a fixed-length vector of bits packed into 64-bit buckets.
// Construct with New. Bits beyond the configured size are always zero.
//
// A BitArray is not safe for concurrent mutation.
type BitArray struct {
	bits []uint64
	size int
}

// New constructs a bit array of size bits, all reset.
func New(size int) (*BitArray, error) {
	if size <= 0 {
		return nil, errors.Wrapf(collections.ErrInvalidArgument, "bit array size %d", size)
	}

	return &BitArray{
		bits: make([]uint64, buckets(size)),
		size: size,
	}, nil
}

// Copy returns an independent bit array with the same size and bits.
func (b *BitArray) Copy() (*BitArray, error) {
	if b == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil bit array")
	}

	clone := &BitArray{
		bits: make([]uint64, len(b.bits)),
		size: b.size,
	}
	copy(clone.bits, b.bits)

	return clone, nil
}

// Test reports whether the bit at index is set.
func (b *BitArray) Test(index int) (bool, error) {
	if b == nil || index < 0 || index >= b.size {
		return false, errors.Wrapf(collections.ErrInvalidArgument, "bit %d", index)
	}

	return b.bits[index/bucketBits]&(1<<(index%bucketBits)) != 0, nil
}

// Set turns the bit at index on.
func (b *BitArray) Set(index int) error {
	if b == nil || index < 0 || index >= b.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "bit %d", index)
	}

	b.bits[index/bucketBits] |= 1 << (index % bucketBits)

	return nil
}

// Reset turns the bit at index off.
func (b *BitArray) Reset(index int) error {
	if b == nil || index < 0 || index >= b.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "bit %d", index)
	}

	b.bits[index/bucketBits] &^= 1 << (index % bucketBits)

	return nil
}

// Flip inverts the bit at index.
func (b *BitArray) Flip(index int) error {
	if b == nil || index < 0 || index >= b.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "bit %d", index)
	}

	b.bits[index/bucketBits] ^= 1 << (index % bucketBits)

	return nil
}

// Any reports whether at least one bit is set.
func (b *BitArray) Any() bool {
	if b == nil {
		return false
	}

	for _, bucket := range b.bits {
		if bucket != 0 {
			return true
		}
	}

	return false
}

// All reports whether every bit is set.
func (b *BitArray) All() bool {
	return b != nil && b.Count() == b.size
}

// None reports whether no bit is set.
func (b *BitArray) None() bool {
	return !b.Any()
}

// Fill sets every bit.
func (b *BitArray) Fill() error {
	if b == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil bit array")
	}

	for i := range b.bits {
		b.bits[i] = ^uint64(0)
	}
	b.maskTail()

	return nil
}

// Clear resets every bit.
func (b *BitArray) Clear() error {
	if b == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil bit array")
	}

	for i := range b.bits {
		b.bits[i] = 0
	}

	return nil
}

// And returns a new bit array with the conjunction of both operands, sized
// to the larger one.
func (b *BitArray) And(other *BitArray) (*BitArray, error) {
	return b.combine(other, func(x, y uint64) uint64 { return x & y })
}

// Or returns a new bit array with the disjunction of both operands, sized
// to the larger one.
func (b *BitArray) Or(other *BitArray) (*BitArray, error) {
	return b.combine(other, func(x, y uint64) uint64 { return x | y })
}

// Xor returns a new bit array with the exclusive disjunction of both
// operands, sized to the larger one.
func (b *BitArray) Xor(other *BitArray) (*BitArray, error) {
	return b.combine(other, func(x, y uint64) uint64 { return x ^ y })
}

// Not returns a new bit array with every bit inverted.
func (b *BitArray) Not() (*BitArray, error) {
	if b == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil bit array")
	}

	inverted := &BitArray{
		bits: make([]uint64, len(b.bits)),
		size: b.size,
	}
	for i, bucket := range b.bits {
		inverted.bits[i] = ^bucket
	}
	inverted.maskTail()

	return inverted, nil
}

// Count returns the number of set bits.
func (b *BitArray) Count() int {
	if b == nil {
		return 0
	}

	var count uint64
	for _, bucket := range b.bits {
		count += popcount.Count(bucket)
	}

	return int(count)
}

// Size returns the number of bits.
func (b *BitArray) Size() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Buckets returns the number of 64-bit buckets backing the array.
func (b *BitArray) Buckets() int {
	if b == nil {
		return 0
	}
	return len(b.bits)
}

// combine builds the result of a binary operator, zero-extending the
// shorter operand to the size of the longer one.
func (b *BitArray) combine(other *BitArray, op func(x, y uint64) uint64) (*BitArray, error) {
	if b == nil || other == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil bit array")
	}

	size := b.size
	if other.size > size {
		size = other.size
	}

	result := &BitArray{
		bits: make([]uint64, buckets(size)),
		size: size,
	}

	for i := range result.bits {
		var x, y uint64
		if i < len(b.bits) {
			x = b.bits[i]
		}
		if i < len(other.bits) {
			y = other.bits[i]
		}
		result.bits[i] = op(x, y)
	}
	result.maskTail()

	return result, nil
}

// maskTail zeroes the unused high bits of the last bucket, preserving the
// invariant that bits beyond size are never set.
func (b *BitArray) maskTail() {
	if used := b.size % bucketBits; used != 0 {
		b.bits[len(b.bits)-1] &= (1 << used) - 1
	}
}

func buckets(size int) int {
	return (size + bucketBits - 1) / bucketBits
}
