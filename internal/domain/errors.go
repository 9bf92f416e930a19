package domain

import "errors"

// Invariant violations the storage layer reports to the HTTP layer. Each maps
// to a conflict response; not-found conditions use sql.ErrNoRows.
var (
	ErrAlreadyApplied                = errors.New("you have already applied to this shift")
	ErrShiftNotAcceptingApplications = errors.New("this shift is no longer accepting applications")
	ErrShiftAlreadyFilled            = errors.New("shift is already filled")
	ErrApplicationShiftMismatch      = errors.New("application does not belong to this shift")
)
