package domain

import (
	"errors"
	"fmt"
)

// ValidationError marks a client-side precondition failure. It is raised
// before any network call is issued.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AuthorizationError marks a transition the acting role is not permitted
// to make.
type AuthorizationError struct {
	Role Role
	From Status
	To   Status
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role %s may not move quotation from %s to %s", e.Role, e.From, e.To)
}

// PreconditionError marks an operation forbidden by current entity state,
// such as creating a final quotation when one already exists.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return e.Msg }

// Preconditionf builds a PreconditionError from a format string.
func Preconditionf(format string, args ...any) *PreconditionError {
	return &PreconditionError{Msg: fmt.Sprintf(format, args...)}
}

// RemoteError wraps a failure reported by the remote store or the network.
// Local state is left untouched when one is returned; callers should
// re-fetch before retrying.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Remotef wraps err as a RemoteError for the named operation.
func Remotef(op string, err error) *RemoteError {
	return &RemoteError{Op: op, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAuthorization reports whether err is (or wraps) an AuthorizationError.
func IsAuthorization(err error) bool {
	var ae *AuthorizationError
	return errors.As(err, &ae)
}

// IsPrecondition reports whether err is (or wraps) a PreconditionError.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// IsRemote reports whether err is (or wraps) a RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
