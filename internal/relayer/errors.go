package relayer

import (
	"errors"
	"fmt"
)

// ErrNoClientID is returned when an update is due but the destination has
// never generated a client identifier.
var ErrNoClientID = errors.New("destination has no client identifier")

// ErrSubmission is returned when a transaction could not be sent or
// confirmed. Submissions are not retried.
type ErrSubmission struct {
	Method string
	Height int64
	Reason error
}

func (e ErrSubmission) Error() string {
	return fmt.Sprintf("%s at height %d failed: %v", e.Method, e.Height, e.Reason)
}

func (e ErrSubmission) Unwrap() error { return e.Reason }

// ErrNonMonotonicHeight is returned when an update would not move the
// trusted height forward.
type ErrNonMonotonicHeight struct {
	Trusted int64
	Height  int64
}

func (e ErrNonMonotonicHeight) Error() string {
	return fmt.Sprintf("height %d does not follow trusted height %d", e.Height, e.Trusted)
}
