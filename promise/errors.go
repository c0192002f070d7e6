package promise

import "errors"

var (
	ErrTimeout = errors.New("computation timed out")
)
