package timeoff

import "errors"

var ErrNotFound = errors.New("time-off request not found")
