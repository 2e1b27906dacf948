package timeformat

import "time"

// Clock supplies the current time to the parsers. Injecting a fixed
// clock makes the relative and derived-duration results deterministic
// in tests; a nil Clock on a Codec means the system clock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock by calling f.
func (f ClockFunc) Now() time.Time { return f() }
