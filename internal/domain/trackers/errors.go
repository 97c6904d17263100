package trackers

import "errors"

var (
	ErrTrackerNotFound = errors.New("tracker not found")
	ErrInvalidInput    = errors.New("invalid input")
)
