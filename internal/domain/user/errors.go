package user

import "errors"

var (
	ErrNotFound     = errors.New("employee not found")
	ErrEmailTaken   = errors.New("email is already registered")
	ErrAvailability = errors.New("availability update failed")
)
