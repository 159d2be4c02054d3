package reservation

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ParseStatus accepts a status name in any letter case.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
	return status, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Blocking reports whether a reservation in this status holds its slot.
func (s Status) Blocking() bool {
	switch s {
	case StatusPending, StatusApproved:
		return true
	case StatusRejected:
		return false
	default:
		return false
	}
}
