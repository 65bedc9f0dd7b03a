package core

import "errors"

// Errors returned by the timer API.
var (
	// ErrNoDriver means no hardware binding has been registered yet.
	ErrNoDriver = errors.New("timer driver not configured")

	// ErrAlreadyClaimed means the timer handle has already been handed out.
	ErrAlreadyClaimed = errors.New("timer already claimed")

	// ErrInvalidPeriod means the requested period is shorter than one
	// counter tick.
	ErrInvalidPeriod = errors.New("period shorter than one timer tick")

	// ErrPeriodTooLong means the requested period does not fit the
	// 32-bit compare register.
	ErrPeriodTooLong = errors.New("period exceeds compare register range")

	// ErrNilHandler means Arm was called without a tick handler.
	ErrNilHandler = errors.New("nil tick handler")
)
