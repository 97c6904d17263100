package entries

import "errors"

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidInput  = errors.New("invalid input")
)
