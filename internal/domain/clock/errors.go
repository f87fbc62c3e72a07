package clock

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNotClockedIn     = errors.New("no open clock-in to close")
)
