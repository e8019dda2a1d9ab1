package domain

import "errors"

// Protocol errors returned to the caller of a trusted application command.
var (
	// ErrBadParameters is returned for malformed, out-of-range or mis-sized input,
	// unknown commands and unsupported algorithms.
	ErrBadParameters = errors.New("bad parameters")

	// ErrItemNotFound is returned when a session ID does not name an open session.
	ErrItemNotFound = errors.New("item not found")

	// ErrOutOfSessions is returned when the session table is full.
	ErrOutOfSessions = errors.New("too many open sessions")

	// ErrBadState is returned when the trusted application is not running.
	ErrBadState = errors.New("bad state")
)
