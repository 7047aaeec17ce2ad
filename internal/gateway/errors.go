package gateway

import "errors"

var (
	// ErrUnavailable indicates the remote store is unreachable.
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrTimeout indicates the call exceeded the configured timeout.
	ErrTimeout = errors.New("remote call timed out")

	// ErrRemoteRejected indicates the remote store answered with an error
	// status for an otherwise well-formed call.
	ErrRemoteRejected = errors.New("remote store rejected the call")

	// ErrNotFound indicates the requested entity does not exist remotely.
	ErrNotFound = errors.New("entity not found")
)
