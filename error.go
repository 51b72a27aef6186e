package list

import "github.com/pkg/errors"

var (
	// ErrNilHead indicates a nil head reference was passed where the address of a head is required.
	ErrNilHead = errors.New("nil head reference")

	// ErrIndexOutOfRange indicates the list ended before the requested index.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrOutOfMemory indicates a node could not be allocated.
	ErrOutOfMemory = errors.New("node allocation failed")
)
