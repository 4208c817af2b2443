package collections

import "github.com/cockroachdb/errors"

// Error taxonomy shared by every container in the module. Operations wrap
// these sentinels with context; match them with errors.Is.
var (
	// ErrInvalidArgument reports a nil required value, an index out of
	// range, a zero width or limit, or a growth factor below the minimum.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory reports a failed record construction, which in this
	// implementation can only originate from a clone hook signalling that
	// it could not allocate the nested resources a value owns.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrNoSpace reports an insert into a container that already holds its
	// configured limit of elements. It is a policy bound, not resource
	// exhaustion.
	ErrNoSpace = errors.New("no space left")
)
