package core

import "time"

// Timer clocking on the nRF52810. The timer counts the 16MHz high
// frequency clock divided by 2^PRESCALER; the driver fixes the divider
// at 16 so one counter tick is exactly one microsecond, which keeps
// compare arithmetic trivial and the current draw low.
const (
	// BaseClockHz is the high frequency clock feeding the timer.
	BaseClockHz = 16000000

	// TickPrescaler is the divisor exponent programmed into the
	// prescaler register: the counter runs at BaseClockHz / 2^TickPrescaler.
	TickPrescaler = 4

	// TickHz is the resulting counter rate, one tick per microsecond.
	TickHz = BaseClockHz >> TickPrescaler

	// TickPeriod is the duration of one counter tick.
	TickPeriod = time.Second / TickHz
)

// MaxPeriod is the longest period representable in the 32-bit compare
// register at the fixed tick rate, a little over 71 minutes.
const MaxPeriod = time.Duration(1<<32-1) * TickPeriod

// TicksFromDuration converts a duration to whole counter ticks, rounding
// down. Durations shorter than one tick convert to zero.
func TicksFromDuration(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(d / TickPeriod)
}

// DurationFromTicks converts a counter tick count back to a duration.
func DurationFromTicks(ticks uint32) time.Duration {
	return time.Duration(ticks) * TickPeriod
}
