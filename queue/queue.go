// Package queue implements a first-in/first-out view over the doubly-linked
// record sequence: enqueue appends at the tail, dequeue and peek work the
// head, all in O(1).
package queue

import (
	"github.com/cockroachdb/errors"

	collections "github.com/aglyzov/go-collections"
	"github.com/aglyzov/go-collections/list"
	"github.com/aglyzov/go-collections/record"
)

// Queue stores fixed-width records in FIFO order. Construct with New.
//
// A Queue is not safe for concurrent mutation.
type Queue struct {
	seq *list.List
}

// New constructs an empty queue holding records described by scheme, with
// at most limit elements.
func New(scheme record.Scheme, limit int) (*Queue, error) {
	seq, err := list.New(scheme, limit)
	if err != nil {
		return nil, err
	}

	return &Queue{seq: seq}, nil
}

// Copy returns a new queue with a fresh clone of every record in order.
func (q *Queue) Copy() (*Queue, error) {
	if q == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil queue")
	}

	seq, err := q.seq.Copy()
	if err != nil {
		return nil, err
	}

	return &Queue{seq: seq}, nil
}

// Reverse returns a new queue holding clones of the records in reversed
// order, so the last enqueued record dequeues first.
func (q *Queue) Reverse() (*Queue, error) {
	if q == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil queue")
	}

	seq, err := q.seq.Reverse()
	if err != nil {
		return nil, err
	}

	return &Queue{seq: seq}, nil
}

// Clear releases every record and empties the queue.
func (q *Queue) Clear() error {
	if q == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil queue")
	}
	return q.seq.Clear()
}

// Enqueue clones value onto the tail of the queue.
func (q *Queue) Enqueue(value []byte) error {
	if q == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil queue")
	}
	return q.seq.Insert(q.seq.Len(), value)
}

// Dequeue removes the head record, copying it into destination first when
// destination is non-nil. Dequeueing an empty queue fails.
func (q *Queue) Dequeue(destination []byte) error {
	if q == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil queue")
	}
	return q.seq.Remove(0, destination)
}

// Peek copies the head record into destination without consuming it.
func (q *Queue) Peek(destination []byte) error {
	if q == nil {
		return errors.Wrap(collections.ErrInvalidArgument, "nil queue")
	}
	return q.seq.Get(0, destination)
}

// Contains reports whether any record compares equal to key.
func (q *Queue) Contains(key []byte, compare record.CompareFunc) bool {
	if q == nil {
		return false
	}
	return q.seq.Contains(key, compare)
}

// Len returns the number of stored records.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.seq.Len()
}

// Width returns the fixed record width in bytes.
func (q *Queue) Width() int {
	if q == nil {
		return 0
	}
	return q.seq.Width()
}

// Limit returns the maximum number of records the queue will ever hold.
func (q *Queue) Limit() int {
	if q == nil {
		return 0
	}
	return q.seq.Limit()
}

// Empty reports whether the queue holds no records.
func (q *Queue) Empty() bool {
	return q.Len() == 0
}

// Full reports whether the queue holds its configured limit of records.
func (q *Queue) Full() bool {
	return q != nil && q.seq.Full()
}
