package easel

import "errors"

// Errors returned by the engine and its collaborators.
var (
	// ErrInvalidArgument is returned for non-positive canvas dimensions and
	// for dimension or interval text that cannot be parsed.
	ErrInvalidArgument = errors.New("easel: invalid argument")

	// ErrIO is returned when reading or writing an image file fails.
	// The in-memory buffer and history are never modified when it is returned.
	ErrIO = errors.New("easel: i/o failure")
)
