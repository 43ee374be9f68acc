package drawkit

import "errors"

// Common drawing errors.
var (
	// ErrInvalidArgument is returned for precondition violations at the
	// call site: an odd-length coordinate list, an unparseable color
	// string, or a negative or non-finite line width. These are
	// programmer errors; there is nothing to retry.
	ErrInvalidArgument = errors.New("drawkit: invalid argument")

	// ErrNoBackend is returned when backend selection resolved to none
	// and a draw surface is requested anyway.
	ErrNoBackend = errors.New("drawkit: no supported rendering backend")
)
