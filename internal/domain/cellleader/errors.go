package cellleader

import "errors"

var (
	ErrCellLeaderNotFound   = errors.New("cell leader not found")
	ErrNameRequired         = errors.New("name is required")
	ErrInvalidAppointedDate = errors.New("appointed date must be YYYY-MM-DD")
)
