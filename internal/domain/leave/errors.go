package leave

import "errors"

var ErrInvalidInput = errors.New("invalid leave balance input")
