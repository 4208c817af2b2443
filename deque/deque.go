// Package deque implements a double-ended view over the doubly-linked
// record sequence: push/pop/back work the tail and unshift/shift/front work
// the head, all in O(1) pointer operations without traversal.
package deque

import (
	"github.com/cockroachdb/errors"

	collections "github.com/aglyzov/go-collections"
	"github.com/aglyzov/go-collections/list"
	"github.com/aglyzov/go-collections/record"
)

// Deque stores fixed-width records with O(1) access at both ends.
// Construct with New.
//
// A Deque is not safe for concurrent mutation.
type Deque struct {
	seq *list.List
}

// New constructs an empty deque holding records described by scheme, with
// at most limit elements.
func New(scheme record.Scheme, limit int) (*Deque, error) {
	seq, err := list.New(scheme, limit)
	if err != nil {
		return nil, err
	}

	return &Deque{seq: seq}, nil
}

// Copy returns a new deque with a fresh clone of every record in order.
func (d *Deque) Copy() (*Deque, error) {
	if d == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil deque")
	}

	seq, err := d.seq.Copy()
	if err != nil {
		return nil, err
	}

	return &Deque{seq: seq}, nil
}

// Clear releases every record and empties the deque.
func (d *Deque) Clear() error {
	if d == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil deque")
	}
	return d.seq.Clear()
}

// Push clones value onto the tail.
func (d *Deque) Push(value []byte) error {
	if d == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil deque")
	}
	return d.seq.Insert(d.seq.Len(), value)
}

// Pop removes the tail record, copying it into destination first when
// destination is non-nil.
func (d *Deque) Pop(destination []byte) error {
	if d == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil deque")
	}
	return d.seq.Remove(d.seq.Len()-1, destination)
}

// Back copies the tail record into destination without consuming it.
func (d *Deque) Back(destination []byte) error {
	if d == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil deque")
	}
	return d.seq.Get(d.seq.Len()-1, destination)
}

// Unshift clones value onto the head.
func (d *Deque) Unshift(value []byte) error {
	if d == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil deque")
	}
	return d.seq.Insert(0, value)
}

// Shift removes the head record, copying it into destination first when
// destination is non-nil.
func (d *Deque) Shift(destination []byte) error {
	if d == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil deque")
	}
	return d.seq.Remove(0, destination)
}

// Front copies the head record into destination without consuming it.
func (d *Deque) Front(destination []byte) error {
	if d == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil deque")
	}
	return d.seq.Get(0, destination)
}

// Contains reports whether any record compares equal to key.
func (d *Deque) Contains(key []byte, compare record.CompareFunc) bool {
	if d == nil {
		return false
	}
	return d.seq.Contains(key, compare)
}

// Len returns the number of stored records.
func (d *Deque) Len() int {
	if d == nil {
		return 0
	}
	return d.seq.Len()
}

// Width returns the fixed record width in bytes.
func (d *Deque) Width() int {
	if d == nil {
		return 0
	}
	return d.seq.Width()
}

// Limit returns the maximum number of records the deque will ever hold.
func (d *Deque) Limit() int {
	if d == nil {
		return 0
	}
	return d.seq.Limit()
}

// Empty reports whether the deque holds no records.
func (d *Deque) Empty() bool {
	return d.Len() == 0
}

// Full reports whether the deque holds its configured limit of records.
func (d *Deque) Full() bool {
	return d != nil && d.seq.Full()
}
