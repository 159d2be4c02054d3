package member

import "time"

type Member struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"not null"`
	Phone        *string
	Role         string    `gorm:"not null"`
	RegisteredAt time.Time `gorm:"not null"`
	District     *string
	BirthDate    *time.Time `gorm:"type:date"`
	Gender       *string
	Address      *string
	ChoirPart    *string
	DepartmentID *string   `gorm:"type:uuid"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

type MemberInput struct {
	Name         string
	Phone        *string
	Role         string
	District     *string
	BirthDate    string
	Gender       *string
	Address      *string
	ChoirPart    *string
	DepartmentID *string
}

const (
	dateLayout           = "2006-01-02"
	minCandidateQueryLen = 2
	candidateSearchLimit = 5
)
