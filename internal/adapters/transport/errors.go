package transport

import (
	"errors"
	"fmt"
)

// Error is a provider call that produced no response. TimedOut covers both
// deadlines and caller cancellation; the provider-side effect is unknown.
type Error struct {
	Provider string
	TimedOut bool
	Err      error
}

func (e *Error) Error() string {
	kind := "connection failure"
	if e.TimedOut {
		kind = "timeout"
	}
	return fmt.Sprintf("%s transport %s: %v", e.Provider, kind, e.Err)
}

// Timeout makes Error satisfy the Timeout() convention of net.Error.
func (e *Error) Timeout() bool {
	return e.TimedOut
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) (*Error, bool) {
	var transportErr *Error
	ok := errors.As(err, &transportErr)
	return transportErr, ok
}
