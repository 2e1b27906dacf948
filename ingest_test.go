package main

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"smpptime/receipt"
	"smpptime/timeformat"
)

func TestIngest(t *testing.T) {
	input := strings.Join([]string{
		`id:881444543 sub:001 dlvrd:000 submit date:1512201521 done date:1512201521 stat:ACCEPTD err:000 text:ACK/OK`,
		``,
		`id:881444543 sub:001 dlvrd:001 submit date:1512201521 done date:1512201522 stat:DELIVRD err:000 text:ACK/OK`,
		`id:881444543 sub:001 dlvrd:001 submit date:1512201521 done date:1512201522 stat:DELIVRD err:000 text:ACK/OK`,
		`this is not a receipt`,
	}, "\n")
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	in := &Ingest{
		Parser: receipt.Parser{Codec: timeformat.Codec{Location: time.UTC}},
		Logger: logger.WithField("test", "ingest"),
	}
	if err := in.Run(strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	if in.lines.Load() != 4 || in.parsed.Load() != 2 ||
		in.duplicates.Load() != 1 || in.failed.Load() != 1 {
		t.Errorf("counters: lines=%d parsed=%d duplicates=%d failed=%d",
			in.lines.Load(), in.parsed.Load(), in.duplicates.Load(), in.failed.Load())
	}
}

// TestSummaryDuringRun interleaves the interrupt-path summary with a
// running ingest, the way main reports counters on an endless stream.
func TestSummaryDuringRun(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	in := &Ingest{
		Parser: receipt.Parser{Codec: timeformat.Codec{Location: time.UTC}},
		Logger: logger.WithField("test", "ingest"),
	}
	pr, pw := io.Pipe()
	done := make(chan error, 1)
	go func() { done <- in.Run(pr) }()
	for i := 0; i < expireEvery; i++ {
		fmt.Fprintf(pw, "id:%d sub:001 dlvrd:001 submit date:1512201521 "+
			"done date:1512201522 stat:DELIVRD err:000 text:ok\n", i)
		in.Summary()
	}
	pw.Close()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if n := in.parsed.Load(); n != expireEvery {
		t.Errorf("parsed = %d, want %d", n, expireEvery)
	}
}
