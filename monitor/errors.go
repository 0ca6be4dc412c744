package monitor

import "errors"

var (
	// ErrUnknownCommand is returned for a request line the console does
	// not recognize.
	ErrUnknownCommand = errors.New("monitor: unknown command")

	// ErrBadResponse is returned when a response line does not match the
	// expected shape.
	ErrBadResponse = errors.New("monitor: malformed response")
)
