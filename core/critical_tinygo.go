//go:build tinygo

package core

import "runtime/interrupt"

// critical runs fn with interrupts masked so the timer service routine
// cannot observe a half-updated handler binding.
func critical(fn func()) {
	state := interrupt.Disable()
	fn()
	interrupt.Restore(state)
}
