package core

import "time"

// Handler is invoked on every compare match. On hardware it runs in
// interrupt context: keep it short, and never call Arm or Disarm from
// inside it.
type Handler func()

// Timer is the exclusive handle to the hardware timer. Obtain it with
// Claim.
type Timer struct {
	regs    TimerDriver
	line    IRQDriver
	handler Handler
}

// Claim returns the process-wide handle to the timer peripheral. It
// fails with ErrNoDriver before SetTimerDriver has run, and with
// ErrAlreadyClaimed on a second call: there is one peripheral, one
// compare channel and one vector, so a second independent user could
// only corrupt the first.
func Claim() (*Timer, error) {
	if timerDriver == nil || timerIRQ == nil {
		return nil, ErrNoDriver
	}
	if timerInUse {
		return nil, ErrAlreadyClaimed
	}
	timerInUse = true
	return &Timer{regs: timerDriver, line: timerIRQ}, nil
}

// Arm configures the timer to invoke handler every period and starts it
// counting. The first invocation comes one full period after Arm
// returns, then one every period after that.
//
// Arm validates before touching hardware: handler must be non-nil and
// period must be at least TickPeriod and at most MaxPeriod. On error the
// peripheral keeps whatever state it had.
//
// Arm on a timer that is already running reprograms it. The counter
// restarts from zero under the new period, and the old threshold and
// handler cannot fire again.
func (t *Timer) Arm(period time.Duration, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	if period < TickPeriod {
		return ErrInvalidPeriod
	}
	if period > MaxPeriod {
		return ErrPeriodTooLong
	}
	ticks := uint32(TicksFromDuration(period))

	// Force a known stopped state before reconfiguring. Stopping first
	// means a previously armed threshold cannot fire mid-update, and
	// clearing the counter plus any stale event flag means the new
	// period is measured from zero once the interrupt is unmasked.
	t.regs.Stop()
	t.regs.Clear()
	t.regs.ClearCompareEvent()

	t.regs.SetMode(ModeTimer)
	t.regs.SetPrescaler(TickPrescaler)
	t.regs.SetBitMode(BitMode32)
	t.regs.SetCompare(ticks)

	critical(func() {
		t.handler = handler
		t.line.SetVector(t.ServiceIRQ)
	})

	t.regs.EnableCompareInterrupt()
	t.line.Enable()
	t.regs.Start()
	return nil
}

// Disarm stops the timer and releases the interrupt plumbing: the
// counter is stopped and cleared, the compare threshold zeroed, the
// compare interrupt masked and the vector unbound. A match that was
// pending but not yet serviced is discarded. Disarming a timer that is
// not running is a no-op.
//
// Disarm does not wait for an in-flight handler invocation. Call it from
// normal context only, never from the handler itself.
func (t *Timer) Disarm() {
	t.regs.Stop()
	t.regs.Clear()
	t.regs.SetCompare(0)

	// Mask before clearing the event flag. A service routine that runs
	// in this window sees the flag without the enable bit and backs
	// off, leaving the flag for the line below.
	t.regs.DisableCompareInterrupt()
	t.regs.ClearCompareEvent()
	t.line.Disable()

	critical(func() {
		t.handler = nil
		t.line.SetVector(nil)
	})
}
