package timeformat

import (
	"errors"
	"fmt"
	"time"
)

// FormatError describes an input string rejected by one of the parsers:
// it does not match the required grammar or carries a numeric field
// outside its valid range. The error is reported before any time
// computation takes place.
type FormatError struct {
	Input  string // the rejected wire string
	Reason string // violated rule, empty when the grammar itself failed
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("timestamp %q has the wrong format", e.Input)
	}
	return fmt.Sprintf("timestamp %q has the wrong format: %s", e.Input, e.Reason)
}

// Is reports whether target is a FormatError, so that
// errors.Is(err, &FormatError{}) matches independent of the input text.
func (e *FormatError) Is(target error) bool {
	var formatError *FormatError
	return errors.As(target, &formatError)
}

// OverflowError describes a duration that cannot be represented in the
// relative time format: the derived year count does not fit the two-digit
// field, or the duration is negative and the format has no sign for it.
type OverflowError struct {
	Duration time.Duration // the rejected duration
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("time duration %s overflows", e.Duration)
}

// Is reports whether target is an OverflowError.
func (e *OverflowError) Is(target error) bool {
	var overflowError *OverflowError
	return errors.As(target, &overflowError)
}
