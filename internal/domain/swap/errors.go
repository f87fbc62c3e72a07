package swap

import "errors"

var ErrNotFound = errors.New("swap request not found")
