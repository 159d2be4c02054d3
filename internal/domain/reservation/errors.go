package reservation

import "errors"

var (
	ErrFacilityNotFound    = errors.New("facility not found")
	ErrFacilityRequired    = errors.New("facility id is required")
	ErrMemberNotFound      = errors.New("member not found")
	ErrInvalidTimeRange    = errors.New("start time must be before end time")
	ErrReservationConflict = errors.New("reservation overlaps an existing reservation")
	ErrInvalidStatus       = errors.New("unknown reservation status")
)
