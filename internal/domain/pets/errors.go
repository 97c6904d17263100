package pets

import "errors"

var (
	ErrPetNotFound  = errors.New("pet not found")
	ErrInvalidInput = errors.New("invalid input")
)
