// Package emu models the nRF52810 peripherals the driver programs, for
// host-side tests and demos.
//
// Interrupt delivery is synchronous: whenever a compare match is latched
// while the compare interrupt and the vector line are both enabled, the
// bound service routine runs on the calling goroutine before the
// mutating call returns. That is the hosted stand-in for hardware
// preemption, and it keeps the whole model single-goroutine.
package emu

import (
	"fmt"

	"github.com/sudhamtd/nRF52810-example/core"
)

// retriggerLimit bounds consecutive service-routine entries for one
// asserted line. The line is level-sensitive, so a routine that returns
// without clearing the event flag is re-entered; real hardware loops
// forever. The model panics instead, so a broken handler fails a test
// rather than hanging it.
const retriggerLimit = 8

// Timer is a software model of one TIMER peripheral block plus its
// interrupt line. It implements both core.TimerDriver and
// core.IRQDriver, so a single instance registers as the full binding.
//
// The model counts prescaled ticks handed to Step, or base-clock cycles
// handed to StepCycles. As on the hardware with the compare-clear
// shortcut wired, a compare match latches the event flag and restarts
// the counter, so matches recur every Compare() ticks.
type Timer struct {
	mode      core.TimerMode
	bitMode   core.BitMode
	prescaler uint8
	compare   uint32
	counter   uint32
	running   bool
	short     bool

	eventPending bool
	intenCompare bool

	vector      func()
	lineEnabled bool

	cycles uint64 // base-clock cycles not yet folded into ticks

	writes []string
}

// NewTimer returns a model in power-on reset state: stopped, cleared,
// 16-bit timer mode, prescaler zero, all events and routing off.
func NewTimer() *Timer {
	return &Timer{}
}

// Start begins counting from the current counter value.
func (t *Timer) Start() {
	t.record("TASKS_START")
	t.running = true
}

// Stop freezes the counter.
func (t *Timer) Stop() {
	t.record("TASKS_STOP")
	t.running = false
}

// Clear resets the counter to zero.
func (t *Timer) Clear() {
	t.record("TASKS_CLEAR")
	t.counter = 0
}

// SetMode selects what advances the counter.
func (t *Timer) SetMode(m core.TimerMode) {
	if m == core.ModeCounter {
		t.record("MODE=counter")
	} else {
		t.record("MODE=timer")
	}
	t.mode = m
}

// SetBitMode selects the counter width.
func (t *Timer) SetBitMode(w core.BitMode) {
	if w == core.BitMode16 {
		t.record("BITMODE=16")
	} else {
		t.record("BITMODE=32")
	}
	t.bitMode = w
}

// SetPrescaler sets the clock divisor exponent. The hardware field is
// four bits with nine as the highest documented value; the model rejects
// anything larger outright.
func (t *Timer) SetPrescaler(exp uint8) {
	if exp > 9 {
		panic(fmt.Sprintf("emu: prescaler exponent %d out of range", exp))
	}
	t.record(fmt.Sprintf("PRESCALER=%d", exp))
	t.prescaler = exp
}

// SetCompare programs the compare threshold.
func (t *Timer) SetCompare(ticks uint32) {
	t.record(fmt.Sprintf("CC[0]=%d", ticks))
	t.compare = ticks
}

// Compare reads back the compare threshold.
func (t *Timer) Compare() uint32 {
	return t.compare
}

// CompareEventPending reports whether the compare event flag is latched.
func (t *Timer) CompareEventPending() bool {
	return t.eventPending
}

// ClearCompareEvent clears the latched compare event flag.
func (t *Timer) ClearCompareEvent() {
	t.record("EVENTS_COMPARE[0]=0")
	t.eventPending = false
}

// EnableCompareInterrupt routes the compare event to the interrupt line.
// Like the hardware binding it also wires the compare-clear shortcut, so
// the counter restarts on every match. A flag that is already latched
// asserts the line the moment it is unmasked.
func (t *Timer) EnableCompareInterrupt() {
	t.record("INTENSET.COMPARE0")
	t.intenCompare = true
	t.short = true
	t.deliver()
}

// DisableCompareInterrupt masks the compare event and unwires the
// compare-clear shortcut.
func (t *Timer) DisableCompareInterrupt() {
	t.record("INTENCLR.COMPARE0")
	t.intenCompare = false
	t.short = false
}

// CompareInterruptEnabled reports whether the compare event is routed to
// the interrupt line.
func (t *Timer) CompareInterruptEnabled() bool {
	return t.intenCompare
}

// SetVector binds the service routine for the timer's line.
func (t *Timer) SetVector(fn func()) {
	t.vector = fn
}

// Enable unmasks the timer's line. A latched, routed event is delivered
// immediately.
func (t *Timer) Enable() {
	t.record("NVIC.ENABLE")
	t.lineEnabled = true
	t.deliver()
}

// Disable masks the timer's line. Latched events stay latched.
func (t *Timer) Disable() {
	t.record("NVIC.DISABLE")
	t.lineEnabled = false
}

// Step advances the model by n prescaled counter ticks. With the
// driver's fixed divider one tick is one microsecond.
func (t *Timer) Step(n uint64) {
	for ; n > 0; n-- {
		t.tick()
	}
}

// StepCycles advances the model by n base-clock cycles, applying the
// programmed prescaler. Cycles left over below one tick carry into the
// next call.
func (t *Timer) StepCycles(n uint64) {
	t.cycles += n
	ticks := t.cycles >> t.prescaler
	t.cycles -= ticks << t.prescaler
	t.Step(ticks)
}

func (t *Timer) tick() {
	if !t.running || t.mode != core.ModeTimer {
		return
	}
	t.counter = t.truncate(t.counter + 1)
	if t.counter == t.compare {
		t.eventPending = true
		if t.short {
			t.counter = 0
		}
		t.deliver()
	}
}

// deliver services the interrupt line. The line stays asserted while a
// latched event is routed and unmasked, so entry repeats until the
// service routine clears the flag or the retrigger limit trips.
func (t *Timer) deliver() {
	for n := 0; t.eventPending && t.intenCompare && t.lineEnabled && t.vector != nil; n++ {
		if n == retriggerLimit {
			panic("emu: compare event never cleared, interrupt storm")
		}
		t.vector()
	}
}

// LatchCompareEvent latches the compare event flag without delivering
// the interrupt, as if the match fired while the exception had not yet
// been taken. Pair with DeliverPending to model the late delivery.
func (t *Timer) LatchCompareEvent() {
	t.eventPending = true
}

// DeliverPending services the line now if it is asserted.
func (t *Timer) DeliverPending() {
	t.deliver()
}

// Counter returns the current counter value.
func (t *Timer) Counter() uint32 {
	return t.counter
}

// Running reports whether the counter is started.
func (t *Timer) Running() bool {
	return t.running
}

// LineEnabled reports whether the vector line is unmasked.
func (t *Timer) LineEnabled() bool {
	return t.lineEnabled
}

// Writes returns the register write journal in program order.
func (t *Timer) Writes() []string {
	return t.writes
}

// ResetWrites clears the register write journal.
func (t *Timer) ResetWrites() {
	t.writes = nil
}

func (t *Timer) record(w string) {
	t.writes = append(t.writes, w)
}

func (t *Timer) truncate(v uint32) uint32 {
	if t.bitMode == core.BitMode16 {
		return v & 0xFFFF
	}
	return v
}
