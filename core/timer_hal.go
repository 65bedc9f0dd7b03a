package core

// TimerMode selects what advances the counter.
type TimerMode uint8

const (
	// ModeTimer advances the counter on prescaled clock ticks.
	ModeTimer TimerMode = iota
	// ModeCounter advances the counter on external count triggers.
	ModeCounter
)

// BitMode selects the counter width.
type BitMode uint8

const (
	// BitMode16 wraps the counter at 16 bits.
	BitMode16 BitMode = iota
	// BitMode32 wraps the counter at 32 bits.
	BitMode32
)

// TimerDriver is the abstract timer register interface that core code
// programs. Platform-specific implementations map it onto the real
// peripheral block; the emu package maps it onto a software model.
//
// Start, Stop and Clear mirror hardware task registers: writing one
// triggers the action, there is no state to read back.
type TimerDriver interface {
	// Start starts the counter free-running from its current value.
	Start()

	// Stop freezes the counter. Configuration registers are unaffected.
	Stop()

	// Clear resets the counter value to zero.
	Clear()

	// SetMode selects timer or counter mode.
	SetMode(mode TimerMode)

	// SetBitMode selects the counter width.
	SetBitMode(width BitMode)

	// SetPrescaler sets the clock divisor exponent: the counter ticks
	// at the base clock divided by 2^exp.
	SetPrescaler(exp uint8)

	// SetCompare programs the compare threshold in counter ticks.
	SetCompare(ticks uint32)

	// Compare reads back the programmed compare threshold.
	Compare() uint32

	// CompareEventPending reports whether the compare-match event flag
	// is latched.
	CompareEventPending() bool

	// ClearCompareEvent clears the latched compare-match event flag.
	ClearCompareEvent()

	// EnableCompareInterrupt routes the compare-match event to the
	// timer's interrupt line.
	EnableCompareInterrupt()

	// DisableCompareInterrupt masks the compare-match event.
	DisableCompareInterrupt()

	// CompareInterruptEnabled reports whether the compare-match event
	// is routed to the interrupt line.
	CompareInterruptEnabled() bool
}

// IRQDriver is the interrupt-controller interface for the timer's vector
// line. There is exactly one line and one vector slot: binding a new
// service routine replaces the previous one process-wide.
type IRQDriver interface {
	// SetVector binds fn as the service routine for the timer's
	// interrupt line. A nil fn unbinds it.
	SetVector(fn func())

	// Enable unmasks the timer's line at the interrupt controller.
	Enable()

	// Disable masks the timer's line at the interrupt controller.
	Disable()
}

// Global singletons used by core code.
var (
	timerDriver TimerDriver
	timerIRQ    IRQDriver
	timerInUse  bool
)

// SetTimerDriver is called by target-specific code to register its timer
// and interrupt-line drivers. Registering a new binding revokes any
// outstanding Claim.
func SetTimerDriver(d TimerDriver, irq IRQDriver) {
	timerDriver = d
	timerIRQ = irq
	timerInUse = false
}
