// Package list implements a doubly-linked sequence of fixed-width records
// with positional access from whichever end is closer and a stable merge
// sort over the node chain.
package list

import (
	"github.com/cockroachdb/errors"

	collections "github.com/aglyzov/go-collections"
	"github.com/aglyzov/go-collections/record"
)

// NotFound is returned by Search when no element matches the key.
const NotFound = -1

// node is one link in the chain. The list owns every node exclusively;
// previous and next must stay mutually consistent and the chain acyclic.
type node struct {
	value    []byte
	next     *node
	previous *node
}

// List is a doubly-linked sequence of records. Construct with New.
// front == nil, back == nil and size == 0 hold together or not at all.
//
// A List is not safe for concurrent mutation.
type List struct {
	front  *node
	back   *node
	size   int
	limit  int
	scheme record.Scheme
}

// New constructs an empty list holding records described by scheme, with at
// most limit elements.
func New(scheme record.Scheme, limit int) (*List, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, errors.Wrapf(collections.ErrInvalidArgument, "limit %d", limit)
	}

	return &List{limit: limit, scheme: scheme}, nil
}

// Copy returns a new list with a fresh clone of every record in order. A
// mid-copy failure releases everything already built and returns the error.
func (l *List) Copy() (*List, error) {
	if l == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil list")
	}

	clone, err := New(l.scheme, l.limit)
	if err != nil {
		return nil, err
	}

	for n := l.front; n != nil; n = n.next {
		if err := clone.Insert(clone.size, n.value); err != nil {
			clone.Clear()
			return nil, err
		}
	}

	return clone, nil
}

// Reverse returns a new list holding clones of the records in back-to-front
// order, built by prepending during a single front-to-back pass.
func (l *List) Reverse() (*List, error) {
	if l == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil list")
	}

	reversed, err := New(l.scheme, l.limit)
	if err != nil {
		return nil, err
	}

	for n := l.front; n != nil; n = n.next {
		if err := reversed.Insert(0, n.value); err != nil {
			reversed.Clear()
			return nil, err
		}
	}

	return reversed, nil
}

// Clear releases every record and drops all nodes, leaving an empty list.
func (l *List) Clear() error {
	if l == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil list")
	}

	n := l.front
	for n != nil {
		drop := n
		n = n.next

		l.scheme.Release(drop.value)
		drop.value, drop.next, drop.previous = nil, nil, nil
	}

	l.front = nil
	l.back = nil
	l.size = 0

	return nil
}

// Insert clones value into a fresh node at index. Valid indices are
// [0, Len()]: 0 prepends, Len() appends, anything between splices before
// the node currently at index, reached from whichever end is closer.
func (l *List) Insert(index int, value []byte) error {
	if l == nil || value == nil || index < 0 || index > l.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "insert at %d", index)
	}

	if l.size == l.limit {
		return errors.Wrapf(collections.ErrNoSpace, "list holds its limit of %d", l.limit)
	}

	slot, err := l.scheme.Make(value)
	if err != nil {
		return err
	}
	fresh := &node{value: slot}

	switch {
	case l.size == 0:
		l.front = fresh
		l.back = fresh

	case index == 0:
		fresh.next = l.front
		l.front.previous = fresh
		l.front = fresh

	case index == l.size:
		fresh.previous = l.back
		l.back.next = fresh
		l.back = fresh

	default:
		at := l.locate(index)

		fresh.previous = at.previous
		fresh.next = at

		at.previous.next = fresh
		at.previous = fresh
	}

	l.size++

	return nil
}

// Remove unlinks the node at index and releases its record. When
// destination is non-nil the record is first copied out; a copy failure
// aborts before any mutation. Valid indices are [0, Len()).
func (l *List) Remove(index int, destination []byte) error {
	if l == nil || index < 0 || index >= l.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "remove at %d", index)
	}

	drop := l.locate(index)

	if destination != nil {
		if err := l.scheme.Copy(drop.value, destination); err != nil {
			return err
		}
	}

	l.unlink(drop)

	return nil
}

// RemoveAll unlinks every record that compares equal to key in a single
// forward pass.
func (l *List) RemoveAll(key []byte, compare record.CompareFunc) error {
	if l == nil || key == nil || compare == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "remove all")
	}

	n := l.front
	for n != nil {
		// Snapshot the successor first: unlinking invalidates n.next.
		candidate := n
		n = n.next

		if compare(candidate.value, key) == 0 {
			l.unlink(candidate)
		}
	}

	return nil
}

// Get copies the record at index into destination without consuming it.
func (l *List) Get(index int, destination []byte) error {
	if l == nil || destination == nil || index < 0 || index >= l.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "get at %d", index)
	}

	return l.scheme.Copy(l.locate(index).value, destination)
}

// Set replaces the record at index with a clone of value. The old record is
// released only after the new one is successfully built.
func (l *List) Set(index int, value []byte) error {
	if l == nil || value == nil || index < 0 || index >= l.size {
		return errors.Wrapf(collections.ErrInvalidArgument, "set at %d", index)
	}

	slot, err := l.scheme.Make(value)
	if err != nil {
		return err
	}

	at := l.locate(index)
	l.scheme.Release(at.value)
	at.value = slot

	return nil
}

// Sort orders the records in place by compare, inverted when reverse is
// true. The sort is a stable merge over the existing nodes: records that
// compare equal keep their relative order, with or without reverse.
func (l *List) Sort(compare record.CompareFunc, reverse bool) error {
	if l == nil || compare == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "sort")
	}

	sign := 1
	if reverse {
		sign = -1
	}

	l.front = mergeSort(l.front, sign, compare)

	// Merging repairs next and previous but does not track the tail.
	l.back = l.front
	for n := l.front; n != nil; n = n.next {
		l.back = n
	}

	return nil
}

// Search returns the index of the first record that compares equal to key,
// or NotFound. A nil key or comparator also yields NotFound. The scan is
// linear from the front.
func (l *List) Search(key []byte, compare record.CompareFunc) int {
	if l == nil || key == nil || compare == nil {
		return NotFound
	}

	i := 0
	for n := l.front; n != nil; n = n.next {
		if compare(n.value, key) == 0 {
			return i
		}
		i++
	}

	return NotFound
}

// Contains reports whether any record compares equal to key.
func (l *List) Contains(key []byte, compare record.CompareFunc) bool {
	return l.Search(key, compare) != NotFound
}

// Len returns the number of stored records.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Width returns the fixed record width in bytes.
func (l *List) Width() int {
	if l == nil {
		return 0
	}
	return l.scheme.Width
}

// Limit returns the maximum number of records the list will ever hold.
func (l *List) Limit() int {
	if l == nil {
		return 0
	}
	return l.limit
}

// Empty reports whether the list holds no records.
func (l *List) Empty() bool {
	return l.Len() == 0
}

// Full reports whether the list holds its configured limit of records.
func (l *List) Full() bool {
	return l != nil && l.size == l.limit
}

// locate finds the node at index by walking from whichever end is closer.
// The caller guarantees 0 <= index < size.
func (l *List) locate(index int) *node {
	if index < l.size/2 {
		n := l.front
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}

	n := l.back
	for i := l.size - 1; i > index; i-- {
		n = n.previous
	}
	return n
}

// unlink removes a node from the chain, releases its record and decrements
// the size. Four cases: sole node, front node, back node, interior node.
func (l *List) unlink(n *node) {
	switch {
	case l.size == 1:
		l.front = nil
		l.back = nil

	case n == l.front:
		l.front = l.front.next
		l.front.previous = nil

	case n == l.back:
		l.back = l.back.previous
		l.back.next = nil

	default:
		n.previous.next = n.next
		n.next.previous = n.previous
	}

	l.scheme.Release(n.value)
	n.value, n.next, n.previous = nil, nil, nil
	l.size--
}

// split finds the midpoint of a chain with a fast/slow traversal, detaches
// the back half and returns it.
func split(front *node) *node {
	fast, slow := front, front
	for fast.next != nil && fast.next.next != nil {
		fast = fast.next.next
		slow = slow.next
	}

	half := slow.next
	slow.next = nil

	return half
}

// merge interleaves two sorted chains. On ties the head of the first chain
// is consumed first, which is what makes the sort stable. Each step repairs
// next and previous and clears the emitted node's stale previous pointer;
// the caller one level up fixes it again when it links the node in.
func merge(first, second *node, sign int, compare record.CompareFunc) *node {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}

	var lead *node

	if sign*compare(first.value, second.value) <= 0 {
		first.next = merge(first.next, second, sign, compare)
		first.next.previous = first
		first.previous = nil

		lead = first
	} else {
		second.next = merge(first, second.next, sign, compare)
		second.next.previous = second
		second.previous = nil

		lead = second
	}

	return lead
}

// mergeSort sorts a chain by recursive split and merge. Base case: chains
// of zero or one node. In place on the existing nodes.
func mergeSort(front *node, sign int, compare record.CompareFunc) *node {
	if front == nil || front.next == nil {
		return front
	}

	half := split(front)

	front = mergeSort(front, sign, compare)
	half = mergeSort(half, sign, compare)

	return merge(front, half, sign, compare)
}
