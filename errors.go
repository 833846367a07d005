// Package qcache holds the error vocabulary and small conveniences
// shared by the fifo, lru, and twoq cache packages. It has no cache
// logic of its own.
package qcache

// ErrorKind classifies why a fallible operation failed. The set is
// exhaustive: every error this module returns carries exactly one of
// these kinds.
type ErrorKind int

const (
	// KindInvalidArgument marks a construction-time misconfiguration,
	// such as a non-positive capacity.
	KindInvalidArgument ErrorKind = iota
	// KindOutOfMemory would mark an allocation failure. Go's allocator
	// panics rather than returning an error from make/new, so no path
	// in this module can actually produce it; it exists so the error
	// vocabulary stays exhaustive relative to the cache's original
	// contract, not because it is reachable here.
	KindOutOfMemory
	// KindNotFound marks a lookup miss. It is defined for completeness;
	// Get/Contains/Take report misses as a plain boolean, the idiom
	// every cache in this module uses.
	KindNotFound
)

// kindError pairs an ErrorKind with a message.
type kindError struct {
	kind ErrorKind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

// ErrInvalidArgument is returned by New when Capacity < 1.
var ErrInvalidArgument = &kindError{KindInvalidArgument, "qcache: invalid argument"}

// ErrOutOfMemory is never returned by this module (see KindOutOfMemory);
// it is exported so callers that branch on the full error-kind
// vocabulary have something to compare against.
var ErrOutOfMemory = &kindError{KindOutOfMemory, "qcache: out of memory"}
