package servingpeople

import "errors"

var (
	ErrPersonNotFound  = errors.New("serving person not found")
	ErrInvalidCategory = errors.New("unknown serving category")
	ErrRoleRequired    = errors.New("role is required")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidImageURL = errors.New("image url must be http or https")
)
