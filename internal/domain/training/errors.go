package training

import "errors"

var (
	ErrProgramNotFound = errors.New("training program not found")
	ErrTermRequired    = errors.New("term is required")
	ErrInvalidWeek     = errors.New("curriculum week must be positive")
	ErrDuplicateWeek   = errors.New("curriculum week listed twice")
	ErrContentRequired = errors.New("curriculum content is required")
)
