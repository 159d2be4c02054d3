package member

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrNameRequired   = errors.New("name is required")

	ErrDepartmentNotFound = errors.New("department not found")
)
