//go:build nrf52810

package main

import (
	"device/arm"
	"device/nrf"
	"runtime/interrupt"

	"github.com/sudhamtd/nRF52810-example/core"
)

// Timer0 implements core.TimerDriver on the TIMER0 peripheral block.
// Tasks are write-1-to-trigger and the compare event is write-0-to-clear,
// exactly as the register map defines them.
type Timer0 struct {
	regs *nrf.TIMER_Type
}

// NewTimer0 returns the TIMER0 binding.
func NewTimer0() *Timer0 {
	return &Timer0{regs: nrf.TIMER0}
}

func (t *Timer0) Start() {
	t.regs.TASKS_START.Set(1)
}

func (t *Timer0) Stop() {
	t.regs.TASKS_STOP.Set(1)
}

func (t *Timer0) Clear() {
	t.regs.TASKS_CLEAR.Set(1)
}

func (t *Timer0) SetMode(mode core.TimerMode) {
	if mode == core.ModeCounter {
		t.regs.MODE.Set(nrf.TIMER_MODE_MODE_Counter)
		return
	}
	t.regs.MODE.Set(nrf.TIMER_MODE_MODE_Timer)
}

func (t *Timer0) SetBitMode(width core.BitMode) {
	if width == core.BitMode16 {
		t.regs.BITMODE.Set(nrf.TIMER_BITMODE_BITMODE_16Bit)
		return
	}
	t.regs.BITMODE.Set(nrf.TIMER_BITMODE_BITMODE_32Bit)
}

func (t *Timer0) SetPrescaler(exp uint8) {
	t.regs.PRESCALER.Set(uint32(exp))
}

func (t *Timer0) SetCompare(ticks uint32) {
	t.regs.CC[0].Set(ticks)
}

func (t *Timer0) Compare() uint32 {
	return t.regs.CC[0].Get()
}

func (t *Timer0) CompareEventPending() bool {
	return t.regs.EVENTS_COMPARE[0].Get() != 0
}

func (t *Timer0) ClearCompareEvent() {
	t.regs.EVENTS_COMPARE[0].Set(0)
}

// EnableCompareInterrupt also wires the compare-clear shortcut, so the
// counter restarts on every match and the event recurs each period.
func (t *Timer0) EnableCompareInterrupt() {
	t.regs.SHORTS.SetBits(nrf.TIMER_SHORTS_COMPARE0_CLEAR_Msk)
	t.regs.INTENSET.Set(nrf.TIMER_INTENSET_COMPARE0_Msk)
}

func (t *Timer0) DisableCompareInterrupt() {
	t.regs.INTENCLR.Set(nrf.TIMER_INTENCLR_COMPARE0_Msk)
	t.regs.SHORTS.ClearBits(nrf.TIMER_SHORTS_COMPARE0_CLEAR_Msk)
}

func (t *Timer0) CompareInterruptEnabled() bool {
	return t.regs.INTENSET.Get()&nrf.TIMER_INTENSET_COMPARE0_Msk != 0
}

// Timer0IRQ implements core.IRQDriver on the TIMER0 NVIC line.
//
// The interrupt table is fixed at compile time, so the vector passed to
// interrupt.New is a trampoline; the routine the driver binds at runtime
// lives in timer0Vector.
type Timer0IRQ struct {
	intr interrupt.Interrupt
}

var (
	timer0Vector func()
	timer0Intr   = interrupt.New(nrf.IRQ_TIMER0, timer0ISR)
)

// NewTimer0IRQ returns the TIMER0 interrupt-line binding.
func NewTimer0IRQ() *Timer0IRQ {
	return &Timer0IRQ{intr: timer0Intr}
}

func timer0ISR(interrupt.Interrupt) {
	if fn := timer0Vector; fn != nil {
		fn()
	}
}

func (q *Timer0IRQ) SetVector(fn func()) {
	timer0Vector = fn
}

func (q *Timer0IRQ) Enable() {
	q.intr.Enable()
}

func (q *Timer0IRQ) Disable() {
	arm.DisableIRQ(uint32(nrf.IRQ_TIMER0))
}
