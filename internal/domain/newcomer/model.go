package newcomer

import (
	"time"

	memberdomain "church-office-go/internal/domain/member"
)

// Newcomer is a first-visit intake record. RegisteredDate is a calendar date
// in YYYY-MM-DD form.
type Newcomer struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Name           string `gorm:"not null"`
	Phone          *string
	RegisteredDate string `gorm:"type:text;not null"`
	Introducer     *string
	Description    *string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

type UpsertInput struct {
	ID             string
	Name           string
	Phone          *string
	RegisteredDate string
	Introducer     *string
	Description    *string
}

type UpsertResult struct {
	Newcomer Newcomer
	Created  bool
	// Promoted is set when the intake created a new member.
	Promoted *memberdomain.Member
}

const (
	DateLayout       = "2006-01-02"
	introducerPrefix = "인도자: "

	EventNewcomerRegistered = "newcomer.registered"
	EventMemberPromoted     = "member.promoted"
)

type registeredEvent struct {
	NewcomerID     string  `json:"newcomer_id"`
	Name           string  `json:"name"`
	RegisteredDate string  `json:"registered_date"`
	MemberID       *string `json:"member_id,omitempty"`
}

type promotedEvent struct {
	MemberID   string `json:"member_id"`
	NewcomerID string `json:"newcomer_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}
