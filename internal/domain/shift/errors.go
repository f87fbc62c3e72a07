package shift

import "errors"

var (
	ErrAccessDenied = errors.New("access denied. Only managers or admins can view shifts")
	ErrNotFound     = errors.New("shift not found")
)
