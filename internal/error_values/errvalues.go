package errorvalues

import "errors"

var (
	ErrTaskNotFound  = errors.New("task doesn't exist")
	ErrInvalidTaskID = errors.New("invalid task id")
	ErrValidation    = errors.New("validation error")
)
