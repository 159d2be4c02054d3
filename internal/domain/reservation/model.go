package reservation

import (
	"time"

	memberdomain "church-office-go/internal/domain/member"
)

type Facility struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Location  string    `gorm:"not null"`
	Capacity  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Reservation claims [StartTime, EndTime) of a facility. Touching intervals
// do not overlap.
type Reservation struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	FacilityID string    `gorm:"type:uuid;not null;index"`
	MemberID   *string   `gorm:"type:uuid"`
	StartTime  time.Time `gorm:"not null"`
	EndTime    time.Time `gorm:"not null"`
	Purpose    string    `gorm:"not null"`
	Status     Status    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Facility *Facility            `gorm:"foreignKey:FacilityID"`
	Member   *memberdomain.Member `gorm:"foreignKey:MemberID"`
}

type CreateReservationInput struct {
	FacilityID string
	MemberID   *string
	StartTime  time.Time
	EndTime    time.Time
	Purpose    string
}

type ListFilter struct {
	// From is inclusive. Zero means the start of today.
	From       time.Time
	FacilityID string
	// Status narrows the listing to one status. Empty means every status.
	Status Status
}

type FacilitySeed struct {
	Name     string
	Location string
	Capacity int
}

const (
	EventReservationCreated = "reservation.created"

	facilitySeedLockKey = "facility:seed"
	facilityLockPrefix  = "facility:"
)

func facilityLockKey(facilityID string) string {
	return facilityLockPrefix + facilityID
}

type createdEvent struct {
	ReservationID string    `json:"reservation_id"`
	FacilityID    string    `json:"facility_id"`
	MemberID      *string   `json:"member_id,omitempty"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        Status    `json:"status"`
}
