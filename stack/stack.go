// Package stack implements a last-in/first-out view over the growable
// record vector: push, pop and peek are the vector's insert, remove and get
// pinned to the tail index.
package stack

import (
	"github.com/cockroachdb/errors"

	collections "github.com/aglyzov/go-collections"
	"github.com/aglyzov/go-collections/record"
	"github.com/aglyzov/go-collections/vector"
)

// Stack stores fixed-width records in LIFO order. Construct with New.
//
// A Stack is not safe for concurrent mutation.
type Stack struct {
	vec *vector.Vector
}

// New constructs an empty stack with the same configuration surface as the
// backing vector: record scheme, element limit, pre-allocated capacity and
// growth factor.
func New(scheme record.Scheme, limit, capacity int, growth float64) (*Stack, error) {
	vec, err := vector.New(scheme, limit, capacity, growth)
	if err != nil {
		return nil, err
	}

	return &Stack{vec: vec}, nil
}

// Copy returns a new stack with a fresh clone of every record, preserving
// the bottom-to-top order.
func (s *Stack) Copy() (*Stack, error) {
	if s == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil stack")
	}

	vec, err := s.vec.Copy()
	if err != nil {
		return nil, err
	}

	return &Stack{vec: vec}, nil
}

// Reverse returns a new stack holding clones of the records with their
// bottom-to-top order flipped.
func (s *Stack) Reverse() (*Stack, error) {
	if s == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil stack")
	}

	vec, err := s.vec.Reverse()
	if err != nil {
		return nil, err
	}

	return &Stack{vec: vec}, nil
}

// Clear releases every record and empties the stack.
func (s *Stack) Clear() error {
	if s == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil stack")
	}
	return s.vec.Clear()
}

// Reserve grows the backing capacity to hold at least size records.
func (s *Stack) Reserve(size int) error {
	if s == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil stack")
	}
	return s.vec.Reserve(size)
}

// Trim shrinks the backing capacity to exactly Len() slots.
func (s *Stack) Trim() error {
	if s == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil stack")
	}
	return s.vec.Trim()
}

// Push clones value onto the top of the stack.
func (s *Stack) Push(value []byte) error {
	if s == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil stack")
	}
	return s.vec.Insert(s.vec.Len(), value)
}

// Pop removes the top record, copying it into destination first when
// destination is non-nil. Popping an empty stack fails.
func (s *Stack) Pop(destination []byte) error {
	if s == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil stack")
	}
	return s.vec.Remove(s.vec.Len()-1, destination)
}

// Peek copies the top record into destination without consuming it.
func (s *Stack) Peek(destination []byte) error {
	if s == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil stack")
	}
	return s.vec.Get(s.vec.Len()-1, destination)
}

// Contains reports whether any record compares equal to key.
func (s *Stack) Contains(key []byte, compare record.CompareFunc) bool {
	if s == nil {
		return false
	}
	return s.vec.Contains(key, compare)
}

// Len returns the number of stored records.
func (s *Stack) Len() int {
	if s == nil {
		return 0
	}
	return s.vec.Len()
}

// Width returns the fixed record width in bytes.
func (s *Stack) Width() int {
	if s == nil {
		return 0
	}
	return s.vec.Width()
}

// Limit returns the maximum number of records the stack will ever hold.
func (s *Stack) Limit() int {
	if s == nil {
		return 0
	}
	return s.vec.Limit()
}

// Cap returns the number of currently allocated slots.
func (s *Stack) Cap() int {
	if s == nil {
		return 0
	}
	return s.vec.Cap()
}

// Growth returns the configured capacity growth factor.
func (s *Stack) Growth() float64 {
	if s == nil {
		return 0
	}
	return s.vec.Growth()
}

// Empty reports whether the stack holds no records.
func (s *Stack) Empty() bool {
	return s.Len() == 0
}

// Full reports whether the stack holds its configured limit of records.
func (s *Stack) Full() bool {
	return s != nil && s.vec.Full()
}
