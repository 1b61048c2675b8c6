package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrLightBlockNotFound is returned when a provider can't find the
	// requested light block.
	ErrLightBlockNotFound = errors.New("light block not found")
	// ErrInvalidHeight is returned for heights that can never exist.
	ErrInvalidHeight = errors.New("height must be positive")
)

// ErrBadLightBlock is returned when a provider returns an invalid
// light block.
type ErrBadLightBlock struct {
	Reason error
}

func (e ErrBadLightBlock) Error() string {
	return fmt.Sprintf("client provided bad signed header: %s", e.Reason.Error())
}

func (e ErrBadLightBlock) Unwrap() error { return e.Reason }

// ErrRetriesExhausted is returned when a height could not be fetched within
// the configured number of attempts. Reason is the error of the last attempt.
type ErrRetriesExhausted struct {
	Height   int64
	Attempts int
	Reason   error
}

func (e ErrRetriesExhausted) Error() string {
	return fmt.Sprintf("failed to fetch height %d after %d attempts: %v", e.Height, e.Attempts, e.Reason)
}

func (e ErrRetriesExhausted) Unwrap() error { return e.Reason }
