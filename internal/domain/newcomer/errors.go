package newcomer

import "errors"

var (
	ErrNewcomerNotFound      = errors.New("newcomer not found")
	ErrNameRequired          = errors.New("name is required")
	ErrInvalidRegisteredDate = errors.New("registered date must be YYYY-MM-DD")
)
