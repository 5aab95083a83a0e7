package analyses

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrCreationInFlight = errors.New("analysis creation already in flight")
)
