// Package vector implements a growable array of fixed-width records with a
// bounded, geometrically growing capacity.
package vector

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	collections "github.com/aglyzov/go-collections"
	"github.com/aglyzov/go-collections/record"
)

const (
	// MaxLimit bounds the configurable element limit so that capacity
	// arithmetic stays well inside the int index space.
	MaxLimit = math.MaxInt/2 - 1

	// MinGrowth is the smallest accepted capacity growth factor. Anything
	// at or above it guarantees progress on every growth step.
	MinGrowth = 1.5

	// NotFound is returned by Search when no element matches the key.
	NotFound = -1
)

// Vector is a growable array of records. The zero value is not usable;
// construct with New. Invariant: Len() <= Cap() <= Limit() at all times.
//
// A Vector is not safe for concurrent mutation.
type Vector struct {
	slots  [][]byte // len(slots) is the capacity; entries beyond size are nil
	size   int
	limit  int
	growth float64
	scheme record.Scheme
}

// New constructs an empty vector holding records described by scheme, with
// at most limit elements, capacity slots pre-allocated and the given growth
// factor.
func New(scheme record.Scheme, limit, capacity int, growth float64) (*Vector, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > MaxLimit {
		return nil, errors.Wrapf(collections.ErrInvalidArgument, "limit %d out of range", limit)
	}
	if capacity < 0 || capacity > limit {
		return nil, errors.Wrapf(collections.ErrInvalidArgument,
			"capacity %d exceeds limit %d", capacity, limit)
	}
	if growth < MinGrowth {
		return nil, errors.Wrapf(collections.ErrInvalidArgument,
			"growth factor %v below %v", growth, MinGrowth)
	}

	v := &Vector{limit: limit, growth: growth, scheme: scheme}
	if capacity > 0 {
		v.slots = make([][]byte, capacity)
	}

	return v, nil
}

// Copy returns a new vector with the same configuration and a fresh clone
// of every record. On failure nothing is returned and everything already
// built is released.
func (v *Vector) Copy() (*Vector, error) {
	if v == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil vector")
	}

	clone, err := New(v.scheme, v.limit, len(v.slots), v.growth)
	if err != nil {
		return nil, err
	}

	for i := 0; i < v.size; i++ {
		if err := clone.Insert(clone.size, v.slots[i]); err != nil {
			clone.Clear()
			return nil, err
		}
	}

	return clone, nil
}

// Reverse returns a new vector holding clones of the records in back-to-front
// order. The receiver is not modified.
func (v *Vector) Reverse() (*Vector, error) {
	if v == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil vector")
	}

	reversed, err := New(v.scheme, v.limit, len(v.slots), v.growth)
	if err != nil {
		return nil, err
	}

	for i := v.size; i > 0; i-- {
		if err := reversed.Insert(reversed.size, v.slots[i-1]); err != nil {
			reversed.Clear()
			return nil, err
		}
	}

	return reversed, nil
}

// Clear releases every record and empties the vector. Capacity is kept;
// use Trim to give it back.
func (v *Vector) Clear() error {
	if v == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil vector")
	}

	for i := 0; i < v.size; i++ {
		v.scheme.Release(v.slots[i])
		v.slots[i] = nil
	}
	v.size = 0

	return nil
}

// Reserve grows capacity until it holds at least size elements, multiplying
// by the growth factor on every step and saturating at the limit. Capacity
// never shrinks here and is untouched when it already suffices.
func (v *Vector) Reserve(size int) error {
	if v == nil || size < 0 || size > v.limit {
		return errors.Wrapf(collections.ErrInvalidArgument, "reserve %d", size)
	}

	if size <= len(v.slots) {
		return nil
	}

	capacity := len(v.slots)
	if capacity == 0 {
		capacity = 1
	}

	for capacity < size {
		// Saturating step: the ceiling keeps every step strictly
		// increasing for any growth >= MinGrowth, so the loop terminates.
		next := math.Ceil(float64(capacity) * v.growth)
		if next >= float64(v.limit) {
			capacity = v.limit
		} else {
			capacity = int(next)
		}
	}

	grown := make([][]byte, capacity)
	copy(grown, v.slots)
	v.slots = grown

	return nil
}

// Trim reallocates the backing storage down to exactly Len() slots, freeing
// it entirely when the vector is empty.
func (v *Vector) Trim() error {
	if v == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil vector")
	}

	if v.size == 0 {
		v.slots = nil
		return nil
	}

	trimmed := make([][]byte, v.size)
	copy(trimmed, v.slots[:v.size])
	v.slots = trimmed

	return nil
}

// Insert clones value into a fresh slot at index, shifting later records one
// position right. Valid indices are [0, Len()]. A vector already at its
// limit fails with ErrNoSpace before any allocation.
func (v *Vector) Insert(index int, value []byte) error {
	if v == nil || value == nil || index < 0 || index > v.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "insert at %d", index)
	}

	if v.size == v.limit {
		return errors.Wrapf(collections.ErrNoSpace, "vector holds its limit of %d", v.limit)
	}

	if err := v.Reserve(v.size + 1); err != nil {
		return err
	}

	slot, err := v.scheme.Make(value)
	if err != nil {
		return err
	}

	copy(v.slots[index+1:v.size+1], v.slots[index:v.size])
	v.slots[index] = slot
	v.size++

	return nil
}

// Remove releases the record at index, shifting later records one position
// left. When destination is non-nil the record is first copied out; a copy
// failure aborts before any mutation. Valid indices are [0, Len()).
func (v *Vector) Remove(index int, destination []byte) error {
	if v == nil || index < 0 || index >= v.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "remove at %d", index)
	}

	if destination != nil {
		if err := v.scheme.Copy(v.slots[index], destination); err != nil {
			return err
		}
	}

	v.scheme.Release(v.slots[index])
	copy(v.slots[index:v.size-1], v.slots[index+1:v.size])
	v.size--
	v.slots[v.size] = nil

	return nil
}

// RemoveAll removes every record that compares equal to key. The scan runs
// back to front so the indices of not-yet-visited records stay stable.
func (v *Vector) RemoveAll(key []byte, compare record.CompareFunc) error {
	if v == nil || key == nil || compare == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "remove all")
	}

	for i := v.size; i > 0; i-- {
		if compare(v.slots[i-1], key) == 0 {
			if err := v.Remove(i-1, nil); err != nil {
				return err
			}
		}
	}

	return nil
}

// Get copies the record at index into destination without consuming it.
func (v *Vector) Get(index int, destination []byte) error {
	if v == nil || destination == nil || index < 0 || index >= v.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "get at %d", index)
	}

	return v.scheme.Copy(v.slots[index], destination)
}

// Set replaces the record at index with a clone of value. The old record is
// released only after the new one is successfully built, so a failed Set
// leaves the vector unchanged.
func (v *Vector) Set(index int, value []byte) error {
	if v == nil || value == nil || index < 0 || index >= v.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "set at %d", index)
	}

	slot, err := v.scheme.Make(value)
	if err != nil {
		return err
	}

	v.scheme.Release(v.slots[index])
	v.slots[index] = slot

	return nil
}

// Sort orders the records in place by compare, inverted when reverse is
// true. It delegates to the system sort over the slot handles and is NOT
// stable: records that compare equal may change relative order. The list
// container provides the stable counterpart.
func (v *Vector) Sort(compare record.CompareFunc, reverse bool) error {
	if v == nil || compare == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "sort")
	}

	sign := 1
	if reverse {
		sign = -1
	}

	sort.Slice(v.slots[:v.size], func(i, j int) bool {
		return sign*compare(v.slots[i], v.slots[j]) < 0
	})

	return nil
}

// Search returns the index of the first record that compares equal to key,
// or NotFound. A nil key or comparator also yields NotFound. The scan is
// linear from the front.
func (v *Vector) Search(key []byte, compare record.CompareFunc) int {
	if v == nil || key == nil || compare == nil {
		return NotFound
	}

	for i := 0; i < v.size; i++ {
		if compare(v.slots[i], key) == 0 {
			return i
		}
	}

	return NotFound
}

// Contains reports whether any record compares equal to key.
func (v *Vector) Contains(key []byte, compare record.CompareFunc) bool {
	return v.Search(key, compare) != NotFound
}

// Len returns the number of stored records.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Width returns the fixed record width in bytes.
func (v *Vector) Width() int {
	if v == nil {
		return 0
	}
	return v.scheme.Width
}

// Limit returns the maximum number of records the vector will ever hold.
func (v *Vector) Limit() int {
	if v == nil {
		return 0
	}
	return v.limit
}

// Cap returns the number of currently allocated slots.
func (v *Vector) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.slots)
}

// Growth returns the configured capacity growth factor.
func (v *Vector) Growth() float64 {
	if v == nil {
		return 0
	}
	return v.growth
}

// Empty reports whether the vector holds no records.
func (v *Vector) Empty() bool {
	return v.Len() == 0
}

// Full reports whether the vector holds its configured limit of records.
func (v *Vector) Full() bool {
	return v != nil && v.size == v.limit
}
