package wire

import "errors"

var (
	// ErrCorruptMessage is returned when a frame's metadata_length or
	// payload_length is negative, or its payload_length is MaxPayloadLen
	// or more.
	ErrCorruptMessage = errors.New("wire: corrupt message")
	// ErrHandshakeFailed is returned when either side's handshake string
	// does not match exactly.
	ErrHandshakeFailed = errors.New("wire: handshake failed")
	// ErrNoConnection is returned when an operation is attempted on a
	// connection that has not reached the established state.
	ErrNoConnection = errors.New("wire: no connection")
	// ErrUnknown wraps unexpected I/O failures that do not fit a more
	// specific sentinel.
	ErrUnknown = errors.New("wire: unknown error")
)
