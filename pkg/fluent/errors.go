package fluent

import (
	"errors"
	"fmt"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

var (
	ErrInvalidTarget    = errors.New("invalid target")
	ErrMethodNotFound   = errors.New("method not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrResolution       = errors.New("cannot resolve target")
	ErrNotRegistered    = errors.New("not registered")
	ErrTimeout          = errors.New("operation timed out")
)

// TimeoutError reports a callback that finished after its budget.
type TimeoutError struct {
	Budget time.Duration
	Span   timespan.TimeSpan
}

func NewTimeoutError(budget time.Duration, start, end time.Time) *TimeoutError {
	return &TimeoutError{Budget: budget, Span: timespan.BetweenTimes(start, end)}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("operation timed out after %s (took %s)", e.Budget, e.Elapsed())
}

// Elapsed is the measured duration of the call.
func (e *TimeoutError) Elapsed() time.Duration {
	return e.Span.Duration()
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// PanicError carries a panic recovered inside a failure boundary.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error itself.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
