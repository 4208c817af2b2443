// Package collections provides a family of homogeneous containers (vector,
// stack, list, deque, queue, bitarray) that store fixed-width opaque byte
// records instead of typed elements.
//
// Every container is configured at construction with a record.Scheme: the
// record width in bytes plus optional clone and destroy hooks for values
// that own nested resources. A container exclusively owns every record it
// stores; values cross the API boundary only by copy, never by aliasing.
//
// The containers are not safe for concurrent mutation. Callers that share a
// container across goroutines must serialize access externally.
package collections
