package department

import "errors"

var (
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrParentNotFound        = errors.New("parent department not found")
	ErrNameRequired          = errors.New("name is required")
	ErrDepartmentHasChildren = errors.New("department has child departments")
)
