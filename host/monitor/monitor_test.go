package monitor

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseReport(t *testing.T) {
	if seq, ok := ParseReport("tick 42"); !ok || seq != 42 {
		t.Errorf("Expected (42, true), got (%d, %v)", seq, ok)
	}
	// Carriage returns from the device UART are tolerated.
	if seq, ok := ParseReport("tick 7\r"); !ok || seq != 7 {
		t.Errorf("Expected (7, true) with trailing CR, got (%d, %v)", seq, ok)
	}
	if seq, ok := ParseReport("tick 4294967295"); !ok || seq != 4294967295 {
		t.Errorf("Expected full 32-bit sequence accepted, got (%d, %v)", seq, ok)
	}

	for _, line := range []string{
		"",
		"tick",
		"tick x",
		"tick -1",
		"tick 4294967296",
		"gpio: pin not configured",
		"booting",
	} {
		if _, ok := ParseReport(line); ok {
			t.Errorf("Expected %q rejected", line)
		}
	}
}

func TestMonitorSession(t *testing.T) {
	// Boot noise, a lost report (2) and a device restart, as a real
	// session might produce them.
	input := "booting\ntick 0\ntick 1\ntick 3\n\ntick 0\n"
	m := New(strings.NewReader(input))

	want := []uint32{0, 1, 3, 0}
	for i, w := range want {
		rep, err := m.Next()
		if err != nil {
			t.Fatalf("Next %d failed: %v", i, err)
		}
		if rep.Seq != w {
			t.Errorf("Expected sequence %d, got %d", w, rep.Seq)
		}
	}

	if _, err := m.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF at end of stream, got %v", err)
	}

	stats := m.Stats()
	if stats.Reports != 4 {
		t.Errorf("Expected 4 reports, got %d", stats.Reports)
	}
	if stats.Missed != 1 {
		t.Errorf("Expected 1 missed report, got %d", stats.Missed)
	}
	if stats.Restarts != 1 {
		t.Errorf("Expected 1 restart, got %d", stats.Restarts)
	}
	if stats.Malformed != 1 {
		t.Errorf("Expected 1 malformed line, got %d", stats.Malformed)
	}
	if stats.Last != 0 {
		t.Errorf("Expected last sequence 0 after restart, got %d", stats.Last)
	}
}

func TestMonitorReset(t *testing.T) {
	m := New(strings.NewReader("tick 5\ntick 6\n"))
	if _, err := m.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	m.Reset()
	if m.Stats() != (Stats{}) {
		t.Errorf("Expected zeroed stats after Reset, got %v", m.Stats())
	}

	// The first report after Reset starts a fresh session: a jump from
	// the pre-Reset sequence must not count as missed.
	if _, err := m.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if stats := m.Stats(); stats.Missed != 0 || stats.Reports != 1 {
		t.Errorf("Expected fresh session after Reset, got %v", stats)
	}
}
