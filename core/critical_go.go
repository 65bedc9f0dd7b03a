//go:build !tinygo

package core

// critical runs fn with the handler binding protected from the timer
// service routine. On regular Go there is no preemption to mask: the
// simulated peripheral dispatches the service routine synchronously on
// the calling goroutine, so fn just runs.
func critical(fn func()) {
	fn()
}
