// Package timeformat implements the SMPP 3.4 time formats (§7.1.1):
// the 16-character "YYMMDDhhmmsstnnp" string carrying either an absolute
// calendar instant with a quarter-hour UTC offset or a relative time
// delta, and the 10-digit "YYMMDDhhmm" form used in delivery receipts.
// The codec is pure: the only outside state it reads is the current
// time, and that is injectable through a Codec.
package timeformat

import (
	"fmt"
	"regexp"
	"time"
)

// reTimestamp describes the wire form of an SMPP timestamp: six two-digit
// calendar fields, a tenths-of-second digit, a two-digit quarter-hour
// offset magnitude and the final tag. Compiled once, safe for concurrent use.
var reTimestamp = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})(\d)(\d{2})([R+-])$`)

// denormalized calendar used by the relative form
const (
	hoursPerYear  = 365 * 24
	hoursPerMonth = 30 * 24
)

// maxQuarterOffset is the largest encodable UTC offset magnitude,
// counted in 15-minute units.
const maxQuarterOffset = 95

// Kind tells which of the two timestamp forms was parsed.
type Kind int

const (
	Absolute Kind = iota // tagged "+" or "-", a calendar instant
	Relative             // tagged "R", a time delta
)

func (k Kind) String() string {
	if k == Relative {
		return "relative"
	}
	return "absolute"
}

// Timestamp is the result of parsing an SMPP timestamp. Both views are
// always filled in: for an absolute timestamp the Duration is derived as
// Time minus the current time at the moment of parsing (truncated to
// whole seconds), and for a relative one the Time is derived as the
// current time plus Duration. The derived values let absolute and
// relative timestamps be compared uniformly.
type Timestamp struct {
	Kind     Kind
	Time     time.Time
	Duration time.Duration
}

// Codec parses SMPP timestamps. The zero value is ready to use: a nil
// Clock means the system clock and a nil Location means the local time
// zone. Location is consulted only by ParseDlrTimestamp, since the full
// form carries its own UTC offset.
type Codec struct {
	Clock    Clock
	Location *time.Location
}

func (c Codec) now() time.Time {
	if c.Clock != nil {
		return c.Clock.Now()
	}
	return time.Now()
}

func (c Codec) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

// std backs the package-level calls.
var std Codec

// ParseSmppTimestamp parses text with the default codec: system clock,
// local time zone.
func ParseSmppTimestamp(text string) (Timestamp, error) {
	return std.ParseSmppTimestamp(text)
}

// ParseDlrTimestamp parses text with the default codec.
func ParseDlrTimestamp(text string) (time.Time, error) {
	return std.ParseDlrTimestamp(text)
}

// ParseSmppTimestamp parses the 16-character "YYMMDDhhmmsstnnp" form.
//
// A trailing "R" makes the timestamp relative: the six calendar fields
// are unit counts with a year of 365 days and a month of 30 days, summed
// into a duration. A trailing "+" or "-" makes it absolute: the fields
// name a calendar instant of year 2000+YY observed at a UTC offset of
// nn quarter hours in the direction of the sign. Two strings encoding
// the same instant under equivalent offsets resolve to instants that
// compare Equal. Inputs that do not match the grammar, or whose
// calendar fields are out of range, are rejected with a FormatError.
// The quarter-hour field is bounded at 95 in both forms, even though
// the relative form ignores its value.
//
// The clock is read once per call, so the derived field is consistent
// with a single parse moment.
func (c Codec) ParseSmppTimestamp(text string) (Timestamp, error) {
	parts := reTimestamp.FindStringSubmatch(text)
	if parts == nil {
		return Timestamp{}, &FormatError{Input: text}
	}
	yy, mon, dd := num(parts[1]), num(parts[2]), num(parts[3])
	hh, min, ss := num(parts[4]), num(parts[5]), num(parts[6])
	// parts[7], the tenths-of-second digit, is validated by the grammar
	// but carries no meaning on the wire
	nn := num(parts[8])
	if nn > maxQuarterOffset {
		return Timestamp{}, &FormatError{Input: text, Reason: "utc offset out of range"}
	}

	if parts[9] == "R" {
		hours := (yy*365+mon*30+dd)*24 + hh
		d := time.Duration(hours)*time.Hour +
			time.Duration(min)*time.Minute +
			time.Duration(ss)*time.Second
		return Timestamp{Kind: Relative, Time: c.now().Add(d), Duration: d}, nil
	}

	if err := calendarError(text, mon, dd, hh, min); err != nil {
		return Timestamp{}, err
	}
	if ss > 59 {
		return Timestamp{}, &FormatError{Input: text, Reason: "second out of range"}
	}
	offset := (nn>>2)*3600 + (nn%4)*15*60
	if parts[9] == "-" {
		offset = -offset
	}
	when := time.Date(2000+yy, time.Month(mon), dd, hh, min, ss, 0,
		time.FixedZone("", offset))
	return Timestamp{
		Kind:     Absolute,
		Time:     when,
		Duration: when.Sub(c.now()).Truncate(time.Second),
	}, nil
}

// ParseDlrTimestamp parses the short "YYMMDDhhmm" form carried in the
// submit date and done date fields of a delivery receipt. The input must
// be exactly ten decimal digits; anything else, including malformed
// trailing content, is rejected with a FormatError. The year is 2000+YY,
// seconds are zero and the instant is built in the codec's Location,
// since the short form carries no offset of its own.
func (c Codec) ParseDlrTimestamp(text string) (time.Time, error) {
	if len(text) != 10 {
		return time.Time{}, &FormatError{Input: text, Reason: "must be exactly 10 digits"}
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return time.Time{}, &FormatError{Input: text, Reason: "must be exactly 10 digits"}
		}
	}
	yy, mon, dd := num(text[0:2]), num(text[2:4]), num(text[4:6])
	hh, min := num(text[6:8]), num(text[8:10])
	if err := calendarError(text, mon, dd, hh, min); err != nil {
		return time.Time{}, err
	}
	return time.Date(2000+yy, time.Month(mon), dd, hh, min, 0, 0, c.location()), nil
}

// FormatDuration renders d in the relative "YYMMDDhhmmss000R" form,
// decomposing whole seconds into the denormalized calendar. Durations
// whose year count exceeds the two-digit field, and negative durations,
// for which the form has no sign, are rejected with an OverflowError.
func FormatDuration(d time.Duration) (string, error) {
	if d < 0 {
		return "", &OverflowError{Duration: d}
	}
	total := int64(d / time.Second)
	ss := total % 60
	min := total / 60 % 60
	hours := total / 3600
	yy := hours / hoursPerYear
	if yy > 99 {
		return "", &OverflowError{Duration: d}
	}
	hours %= hoursPerYear
	mon := hours / hoursPerMonth
	hours %= hoursPerMonth
	return fmt.Sprintf("%02d%02d%02d%02d%02d%02d000R",
		yy, mon, hours/24, hours%24, min, ss), nil
}

// FormatTime renders t in the absolute "YYMMDDhhmmss0nnp" form, taking
// the UTC offset from t's own location and encoding it as a count of
// quarter hours plus a sign. For any timestamp produced by the absolute
// branch of ParseSmppTimestamp this is its exact inverse.
func FormatTime(t time.Time) string {
	_, offset := t.Zone()
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("%02d%02d%02d%02d%02d%02d0%02d%c",
		t.Year()%100, int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), offset/900, sign)
}

// calendarError reports the first calendar field outside its valid
// range. Both parsers share these bounds; the full form checks seconds
// and the offset magnitude separately.
func calendarError(text string, mon, dd, hh, min int) error {
	switch {
	case mon < 1 || mon > 12:
		return &FormatError{Input: text, Reason: "month out of range"}
	case dd < 1 || dd > 31:
		return &FormatError{Input: text, Reason: "day out of range"}
	case hh > 23:
		return &FormatError{Input: text, Reason: "hour out of range"}
	case min > 59:
		return &FormatError{Input: text, Reason: "minute out of range"}
	}
	return nil
}

// num converts a run of decimal digits already vetted by the grammar,
// so it cannot fail.
func num(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
