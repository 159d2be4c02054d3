package ministry

import "errors"

var (
	ErrMinistryNotFound = errors.New("ministry not found")
	ErrStatNotFound     = errors.New("ministry stat not found")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidCategory  = errors.New("unknown ministry category")
	ErrInvalidCount     = errors.New("count must not be negative")
	ErrInvalidRoleInfo  = errors.New("role info must be a JSON object")
	ErrInvalidStatData  = errors.New("stat data must be a JSON object")
)
