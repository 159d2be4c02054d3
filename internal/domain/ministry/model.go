package ministry

import (
	"encoding/json"
	"time"
)

// Ministry is one entry on a ministry screen: a supported church, a
// missionary, a committee, a men's or women's group or a worship group.
// RoleInfo holds screen-specific officers as a JSON object.
type Ministry struct {
	ID          string   `gorm:"type:uuid;primaryKey"`
	Category    Category `gorm:"type:text;not null"`
	Name        string   `gorm:"not null"`
	Description *string
	Count       int `gorm:"not null"`
	Location    *string
	RoleInfo    string `gorm:"type:text;not null"`
	Icon        *string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Ministry) TableName() string {
	return "ministries"
}

// Stat is the per-category summary block shown above a ministry list.
type Stat struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Category  Category  `gorm:"type:text;not null"`
	Data      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Stat) TableName() string {
	return "ministry_stats"
}

// Input carries the editable fields. A nil field keeps the stored value on
// update and takes the default on create.
type Input struct {
	Name        *string
	Description *string
	Count       *int
	Location    *string
	RoleInfo    json.RawMessage
	Icon        *string
}

const emptyObject = "{}"

func ministryLockKey(category Category, name string) string {
	return "ministry:" + string(category) + "|" + name
}

func statLockKey(category Category) string {
	return "ministry-stat:" + string(category)
}
