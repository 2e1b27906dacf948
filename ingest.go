package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"smpptime/receipt"
	"smpptime/sqlog"
	"smpptime/zabbix"
)

// expireEvery is how many lines pass between duplicate-history sweeps,
// so a stream that never ends cannot grow the history without bound.
const expireEvery = 1000

// Ingest reads delivery receipt lines, parses them and fans the reports
// out to the log, the optional store and the optional monitoring
// counters.
type Ingest struct {
	Parser  receipt.Parser
	DB      *sqlog.DB     // nil disables the receipt store
	Zabbix  *zabbix.Log   // nil disables monitoring counters
	Logger  *logrus.Entry // log output
	history History

	// read by Summary from the interrupt goroutine while the run loop
	// is still counting
	lines, parsed, duplicates, failed atomic.Int64
}

// Run processes r line by line until EOF. Empty lines are skipped and a
// malformed receipt is counted and logged without stopping the run.
func (in *Ingest) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := in.lines.Add(1); n%expireEvery == 0 {
			if dropped := in.history.Expire(time.Now()); dropped > 0 {
				in.Logger.WithField("dropped", dropped).Debug("Receipt history expired")
			}
		}
		in.process(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading receipts: %w", err)
	}
	in.Summary()
	return nil
}

func (in *Ingest) process(line string) {
	report, err := in.Parser.Parse(line)
	if err != nil {
		in.failed.Add(1)
		in.Logger.WithError(err).Error("Receipt parse error")
		in.count("smpp.dlr.failed")
		return
	}
	logEntry := in.Logger.WithFields(logrus.Fields{
		"id":    report.ID,
		"stat":  report.Stat,
		"sub":   report.Sub,
		"dlvrd": report.Dlvrd,
		"done":  report.Done,
	})
	if !in.history.Add(report.ID, report.Stat, time.Now()) {
		in.duplicates.Add(1)
		logEntry.Debug("Receipt repeated")
		return
	}
	in.parsed.Add(1)
	logEntry.Infof("Receipt: %q", report.Stat)
	logEntry.Debugf("Receipt text: %q", report.Text)
	if in.DB != nil {
		if err := in.DB.Insert(report); err != nil {
			logEntry.WithError(err).Error("Receipt store error")
		}
	}
	in.count("smpp.dlr." + strings.ToLower(report.Stat))
}

// Summary writes the run counters to the log. The interrupt path calls
// it from another goroutine while Run is still reading, so the counters
// are atomic.
func (in *Ingest) Summary() {
	in.Logger.WithFields(logrus.Fields{
		"lines":      in.lines.Load(),
		"parsed":     in.parsed.Load(),
		"duplicates": in.duplicates.Load(),
		"failed":     in.failed.Load(),
	}).Info("Receipts processed")
}

// count sends a single monitoring increment; a failed send is only
// worth a warning.
func (in *Ingest) count(key string) {
	if in.Zabbix == nil {
		return
	}
	if err := in.Zabbix.Send(key, "1"); err != nil {
		in.Logger.WithError(err).WithField("key", key).Warning("Zabbix send error")
	}
}
