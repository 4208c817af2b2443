// Package record implements the value-ownership protocol shared by every
// container in the module: values are fixed-width opaque byte records that
// enter a container by cloning and leave it by copying out, so that the
// container is always the sole owner of its stored records.
package record

import (
	"github.com/cockroachdb/errors"

	collections "github.com/aglyzov/go-collections"
)

// CloneFunc deep-copies a record from source into destination. Both buffers
// are exactly the record width. A hook returns false when it cannot build
// the copy, typically because a nested resource could not be allocated.
type CloneFunc func(source, destination []byte) bool

// DestroyFunc releases the nested resources a record owns. The record
// buffer itself is reclaimed by the runtime.
type DestroyFunc func(value []byte)

// CompareFunc orders two records. It returns a negative number when first
// sorts before second, zero when they are equal and a positive number
// otherwise.
type CompareFunc func(first, second []byte) int

// Scheme describes the records a container stores: their fixed width in
// bytes and the optional hooks that customize deep copy and release for
// values with nested ownership. A Scheme is fixed at container construction
// and never changes afterwards.
type Scheme struct {
	Width   int
	Clone   CloneFunc
	Destroy DestroyFunc
}

// Validate reports whether the scheme can back a container.
func (s Scheme) Validate() error {
	if s.Width <= 0 {
		return errors.Wrapf(collections.ErrInvalidArgument, "record width %d", s.Width)
	}
	return nil
}

// Make allocates a fresh record slot and fills it from source. The returned
// slot is owned by the caller until it is handed to a container.
func (s Scheme) Make(source []byte) ([]byte, error) {
	if source == nil {
		return nil, errors.Wrap(collections.ErrInvalidArgument, "nil source record")
	}

	slot := make([]byte, s.Width)

	if err := s.Copy(source, slot); err != nil {
		return nil, err
	}

	return slot, nil
}

// Copy copies a record into destination without consuming it, through the
// clone hook when one is configured and byte-for-byte otherwise.
func (s Scheme) Copy(source, destination []byte) error {
	if len(source) < s.Width || len(destination) < s.Width {
		return errors.Wrapf(collections.ErrInvalidArgument,
			"record buffers must hold %d bytes", s.Width)
	}

	if s.Clone != nil {
		if !s.Clone(source[:s.Width], destination[:s.Width]) {
			return errors.Wrap(collections.ErrOutOfMemory, "clone hook failed")
		}
		return nil
	}

	copy(destination, source[:s.Width])

	return nil
}

// Release runs the destroy hook on a slot that is leaving its container.
// The slot must not be used afterwards. Releasing a nil slot is a no-op.
func (s Scheme) Release(slot []byte) {
	if slot != nil && s.Destroy != nil {
		s.Destroy(slot)
	}
}
