package canonical

import "fmt"

// ErrConversion is returned when source data cannot be mapped to its
// canonical form, usually because a mandatory field is absent.
type ErrConversion struct {
	Field  string
	Height int64
	Reason error
}

func (e ErrConversion) Error() string {
	if e.Reason == nil {
		return fmt.Sprintf("missing %s at height %d", e.Field, e.Height)
	}
	return fmt.Sprintf("cannot convert %s at height %d: %v", e.Field, e.Height, e.Reason)
}

// Unwrap returns underlying reason.
func (e ErrConversion) Unwrap() error {
	return e.Reason
}

func errMissing(field string, height int64) error {
	return ErrConversion{Field: field, Height: height}
}
