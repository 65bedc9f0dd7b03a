package core

// ServiceIRQ is the timer's interrupt service routine. Target code
// installs it on the timer vector via IRQDriver.SetVector; the simulated
// peripheral calls it directly when it raises the line.
//
// The routine re-checks hardware state before doing any work. Both the
// event flag and the interrupt-enable bit must be set: entry with no
// flag latched is spurious, and a latched flag with the enable bit
// cleared belongs to a disarm in progress, which clears the flag itself.
// Either way the routine returns without side effects.
//
// On a genuine match the event flag is cleared before the handler runs.
// Clearing first lets a match that lands during handler execution latch
// the flag again and keep the line asserted, so that match is serviced
// next; clearing afterwards would silently drop it. Several matches
// landing before servicing resumes collapse into the single latched
// flag and yield a single invocation.
func (t *Timer) ServiceIRQ() {
	if !t.regs.CompareEventPending() || !t.regs.CompareInterruptEnabled() {
		return
	}
	t.regs.ClearCompareEvent()
	if h := t.handler; h != nil {
		h()
	}
}
