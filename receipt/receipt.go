// Package receipt parses SMPP delivery receipts: the short message body
// of a deliver_sm that reports what became of a previously submitted
// message (SMPP 3.4, Appendix B).
package receipt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"smpptime/timeformat"
)

// Message states reported in the stat field.
const (
	Enroute       = "ENROUTE"
	Delivered     = "DELIVRD"
	Expired       = "EXPIRED"
	Deleted       = "DELETED"
	Undeliverable = "UNDELIV"
	Accepted      = "ACCEPTD"
	Unknown       = "UNKNOWN"
	Rejected      = "REJECTD"
)

// Report describes a parsed delivery receipt.
type Report struct {
	ID     string    // message identifier assigned by the SMSC
	Sub    int       // number of short messages originally submitted
	Dlvrd  int       // number of short messages delivered
	Submit time.Time // time the message was submitted
	Done   time.Time // time the message reached its final state
	Stat   string    // message state in its textual form
	Err    int       // network specific error code
	Text   string    // first characters of the original message
}

// Final reports whether the message has reached a terminal state, so no
// further receipts are expected for it.
func (r *Report) Final() bool {
	switch r.Stat {
	case Delivered, Expired, Deleted, Undeliverable, Rejected:
		return true
	}
	return false
}

// reReport describes the receipt body format. The id field is kept loose
// since SMSCs disagree on decimal versus hex identifiers, and the text
// field may be empty.
var reReport = regexp.MustCompile(`^\s*id:(\S+) sub:(\d+) dlvrd:(\d+) submit date:(\d+) done date:(\d+) stat:(\w+) err:(\d+) text:(.*?)\s*$`)

// Parser parses delivery receipts. The zero value uses the default time
// codec: system clock, local time zone. Set Codec to control how the
// submit and done dates are interpreted.
type Parser struct {
	Codec timeformat.Codec
}

var std Parser

// Parse parses text with the default Parser.
func Parse(text string) (*Report, error) { return std.Parse(text) }

// Parse parses the textual receipt body. The submit and done dates go
// through the short timestamp form and a malformed date fails the whole
// receipt rather than being silently zeroed.
func (p Parser) Parse(text string) (*Report, error) {
	parts := reReport.FindStringSubmatch(text)
	if parts == nil {
		return nil, fmt.Errorf("delivery receipt %q has the wrong format", text)
	}
	r := &Report{
		ID:   parts[1],
		Stat: parts[6],
		Text: parts[8],
	}
	// the counters are digit-only captures, conversion cannot fail
	r.Sub, _ = strconv.Atoi(parts[2])
	r.Dlvrd, _ = strconv.Atoi(parts[3])
	r.Err, _ = strconv.Atoi(parts[7])
	var err error
	if r.Submit, err = p.Codec.ParseDlrTimestamp(parts[4]); err != nil {
		return nil, fmt.Errorf("delivery receipt submit date: %w", err)
	}
	if r.Done, err = p.Codec.ParseDlrTimestamp(parts[5]); err != nil {
		return nil, fmt.Errorf("delivery receipt done date: %w", err)
	}
	return r, nil
}
