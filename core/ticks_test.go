package core

import (
	"testing"
	"time"
)

func TestTickRate(t *testing.T) {
	if TickHz != 1000000 {
		t.Errorf("Expected 1MHz tick rate, got %d", TickHz)
	}
	if TickPeriod != time.Microsecond {
		t.Errorf("Expected 1us tick period, got %v", TickPeriod)
	}
}

func TestTicksFromDuration(t *testing.T) {
	if n := TicksFromDuration(509 * time.Microsecond); n != 509 {
		t.Errorf("Expected 509 ticks, got %d", n)
	}
	// Partial ticks round down.
	if n := TicksFromDuration(1500 * time.Nanosecond); n != 1 {
		t.Errorf("Expected 1 tick for 1.5us, got %d", n)
	}
	if n := TicksFromDuration(999 * time.Nanosecond); n != 0 {
		t.Errorf("Expected 0 ticks below one tick, got %d", n)
	}
	if n := TicksFromDuration(0); n != 0 {
		t.Errorf("Expected 0 ticks for zero duration, got %d", n)
	}
	if n := TicksFromDuration(-time.Second); n != 0 {
		t.Errorf("Expected 0 ticks for negative duration, got %d", n)
	}
	if n := TicksFromDuration(time.Second); n != 1000000 {
		t.Errorf("Expected 1000000 ticks per second, got %d", n)
	}
}

func TestMaxPeriodFitsCompareRegister(t *testing.T) {
	if n := TicksFromDuration(MaxPeriod); n != 1<<32-1 {
		t.Errorf("Expected MaxPeriod to convert to the full register range, got %d", n)
	}
	// A little over 71 minutes at one tick per microsecond.
	if MaxPeriod < 71*time.Minute || MaxPeriod > 72*time.Minute {
		t.Errorf("Expected MaxPeriod near 71.5 minutes, got %v", MaxPeriod)
	}
}

func TestDurationFromTicks(t *testing.T) {
	if d := DurationFromTicks(509); d != 509*time.Microsecond {
		t.Errorf("Expected 509us, got %v", d)
	}
	if d := DurationFromTicks(0); d != 0 {
		t.Errorf("Expected zero duration, got %v", d)
	}
}
