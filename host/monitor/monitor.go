package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Report is one tick report from the device.
type Report struct {
	// Seq is the tick sequence number, counting from zero.
	Seq uint32

	// At is the host time the report was read from the port.
	At time.Time
}

// Stats summarizes a monitoring session.
type Stats struct {
	Reports   uint64 // well-formed tick reports seen
	Missed    uint64 // gaps implied by skipped sequence numbers
	Restarts  uint64 // sequence numbers that went backwards
	Malformed uint64 // lines that were not tick reports
	Last      uint32 // last sequence number seen
}

func (s Stats) String() string {
	return fmt.Sprintf("reports=%d missed=%d restarts=%d malformed=%d last=%d",
		s.Reports, s.Missed, s.Restarts, s.Malformed, s.Last)
}

// ParseReport parses one line of device output. The firmware prints one
// report per compare match in the form "tick N", with N counting from
// zero.
func ParseReport(line string) (uint32, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "tick ")
	if !ok {
		return 0, false
	}
	seq, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(seq), true
}

// Monitor consumes device output line by line and accounts for every
// tick report it sees.
type Monitor struct {
	scanner *bufio.Scanner
	stats   Stats
	started bool
}

// New returns a Monitor reading device output from r, normally an open
// serial port.
func New(r io.Reader) *Monitor {
	return &Monitor{scanner: bufio.NewScanner(r)}
}

// Next blocks until the next well-formed tick report. Blank lines are
// ignored; anything else that fails to parse counts as malformed and is
// skipped, since the device may print boot banners or error messages on
// the same UART. Next returns io.EOF once the stream ends.
func (m *Monitor) Next() (Report, error) {
	for m.scanner.Scan() {
		line := strings.TrimSpace(m.scanner.Text())
		if line == "" {
			continue
		}
		seq, ok := ParseReport(line)
		if !ok {
			m.stats.Malformed++
			continue
		}
		m.observe(seq)
		return Report{Seq: seq, At: time.Now()}, nil
	}
	if err := m.scanner.Err(); err != nil {
		return Report{}, err
	}
	return Report{}, io.EOF
}

// observe folds a sequence number into the session statistics. A skipped
// number means the host lost reports; a number going backwards means the
// device restarted its counter.
func (m *Monitor) observe(seq uint32) {
	m.stats.Reports++
	switch {
	case !m.started:
		m.started = true
	case seq == m.stats.Last+1:
	case seq > m.stats.Last+1:
		m.stats.Missed += uint64(seq - m.stats.Last - 1)
	default:
		m.stats.Restarts++
	}
	m.stats.Last = seq
}

// Stats returns a copy of the session statistics so far.
func (m *Monitor) Stats() Stats {
	return m.stats
}

// Reset zeroes the session statistics.
func (m *Monitor) Reset() {
	m.stats = Stats{}
	m.started = false
}
