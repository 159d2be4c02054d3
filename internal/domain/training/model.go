package training

import "time"

// Program is one discipleship training term.
type Program struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Term           string `gorm:"not null"`
	Period         *string
	Participants   *string
	Curriculum     []CurriculumWeek `gorm:"serializer:json;type:text;not null"`
	CompletionRate *string
	Testimony      *string
	Note           *string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Program) TableName() string {
	return "training_programs"
}

type CurriculumWeek struct {
	Week    int    `json:"week"`
	Content string `json:"content"`
	Note    string `json:"note,omitempty"`
}

// Input carries the editable fields. A nil field keeps the stored value on
// update; a nil Curriculum keeps the stored weeks.
type Input struct {
	Term           *string
	Period         *string
	Participants   *string
	Curriculum     []CurriculumWeek
	CompletionRate *string
	Testimony      *string
	Note           *string
}
