// Copyright 2026 The lcqueue Authors
// This file is part of the lcqueue library.
//
// This software is provided "as is", without warranty of any kind,
// express or implied, including but not limited to the warranties
// of merchantability, fitness for a particular purpose and
// noninfringement. In no event shall the authors or copyright
// holders be liable for any claim, damages, or other liability,
// whether in an action of contract, tort or otherwise, arising
// from, out of or in connection with the software or the use or
// other dealings in the software.

package queue

import "github.com/pkg/errors"

// HandlerError is the error shape a MsgHandler returns. Recoverable distinguishes
// a transient failure (worth retrying, e.g. an RPC timeout) from a terminal one
// (a malformed message, which retrying cannot fix); RetryV consults it via
// errors.As to decide whether remaining attempts are worth spending.
type HandlerError struct {
	cause       error
	recoverable bool
}

// NewHandlerError wraps cause as a HandlerError with the given recoverability.
func NewHandlerError(cause error, recoverable bool) *HandlerError {
	return &HandlerError{cause: errors.WithStack(cause), recoverable: recoverable}
}

func (e *HandlerError) Error() string { return e.cause.Error() }
func (e *HandlerError) Unwrap() error { return e.cause }

// Recoverable reports whether the failure is worth retrying.
func (e *HandlerError) Recoverable() bool { return e.recoverable }

// recoverableErr reports whether err should be retried under a RetryV frame. Errors
// that do not carry a HandlerError are treated as non-recoverable: an unannotated
// error is assumed to be a programming or structural fault, not a transient one.
func recoverableErr(err error) bool {
	var he *HandlerError
	if errors.As(err, &he) {
		return he.Recoverable()
	}
	return false
}
