package receipt

import (
	"errors"
	"testing"
	"time"

	"github.com/kr/pretty"

	"smpptime/coder"
	"smpptime/timeformat"
)

func testParser() Parser {
	return Parser{Codec: timeformat.Codec{Location: time.UTC}}
}

func TestParse(t *testing.T) {
	p := testParser()
	r, err := p.Parse(`id:881444543 sub:001 dlvrd:000 submit date:1512201521 done date:1512201521 stat:ACCEPTD err:000 text:ACK/OK      `)
	if err != nil {
		t.Fatal(err)
	}
	want := Report{
		ID:     "881444543",
		Sub:    1,
		Dlvrd:  0,
		Submit: time.Date(2015, 12, 20, 15, 21, 0, 0, time.UTC),
		Done:   time.Date(2015, 12, 20, 15, 21, 0, 0, time.UTC),
		Stat:   Accepted,
		Err:    0,
		Text:   "ACK/OK",
	}
	if *r != want {
		t.Errorf("Parse = %v, want %v", pretty.Sprint(*r), pretty.Sprint(want))
	}
	if r.Final() {
		t.Error("ACCEPTD reported as final")
	}
}

func TestParseFinal(t *testing.T) {
	p := testParser()
	r, err := p.Parse(`id:0123Zx9 sub:001 dlvrd:001 submit date:1402031337 done date:1402031338 stat:DELIVRD err:000 text:Hello`)
	if err != nil {
		t.Fatal(err)
	}
	if r.ID != "0123Zx9" || r.Dlvrd != 1 || r.Stat != Delivered {
		t.Errorf("Parse = %v", pretty.Sprint(*r))
	}
	if !r.Done.Equal(time.Date(2014, 2, 3, 13, 38, 0, 0, time.UTC)) {
		t.Errorf("done = %v", r.Done)
	}
	if !r.Final() {
		t.Error("DELIVRD not reported as final")
	}
}

func TestParseEmptyText(t *testing.T) {
	r, err := testParser().Parse(`id:1 sub:001 dlvrd:000 submit date:1402031337 done date:1402031337 stat:EXPIRED err:012 text:`)
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "" || r.Err != 12 {
		t.Errorf("Parse = %v", pretty.Sprint(*r))
	}
}

func TestParseErrors(t *testing.T) {
	p := testParser()
	if r, err := p.Parse("some unrelated message text"); err == nil {
		t.Errorf("Parse accepted garbage: %v", r)
	}
	// a malformed date fails the whole receipt
	_, err := p.Parse(`id:1 sub:001 dlvrd:000 submit date:140203133 done date:1402031337 stat:DELIVRD err:000 text:x`)
	if err == nil {
		t.Fatal("Parse accepted a 9-digit submit date")
	}
	if !errors.Is(err, &timeformat.FormatError{}) {
		t.Errorf("error %v does not wrap a FormatError", err)
	}
}

func TestFromShortMessage(t *testing.T) {
	p := testParser()
	line := `id:42 sub:001 dlvrd:001 submit date:1402031337 done date:1402031338 stat:DELIVRD err:000 text:hi`
	r, err := p.FromShortMessage(0x04, 0, coder.Encode(0, line))
	if err != nil {
		t.Fatal(err)
	}
	if r.ID != "42" || r.Stat != Delivered {
		t.Errorf("FromShortMessage = %v", pretty.Sprint(*r))
	}
	// the same receipt carried in UCS2
	r, err = p.FromShortMessage(0x04, 8, coder.Encode(8, line))
	if err != nil {
		t.Fatal(err)
	}
	if r.ID != "42" {
		t.Errorf("FromShortMessage (ucs2) = %v", pretty.Sprint(*r))
	}
	// an ordinary incoming message is not a receipt
	if _, err = p.FromShortMessage(0x00, 0, []byte(line)); err == nil {
		t.Error("FromShortMessage accepted esm_class 0")
	}
}
