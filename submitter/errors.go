package submitter

import (
	"errors"
	"fmt"
)

var (
	ErrNoForm   = errors.New("form is required")
	ErrNoRegion = errors.New("display region is required")
)

// TransportError is a failure to complete or parse the HTTP exchange,
// as opposed to a failure the server reported.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportErr(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}
