package servingpeople

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryPastor     Category = "pastor"
	CategoryEvangelist Category = "evangelist"
	CategoryElder      Category = "elder"
)

func ParseCategory(value string) (Category, error) {
	category := Category(strings.ToLower(strings.TrimSpace(value)))
	if !category.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, value)
	}
	return category, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPastor, CategoryEvangelist, CategoryElder:
		return true
	default:
		return false
	}
}

// Person is an entry on the "serving people" page: clergy and the elders'
// council, shown in SortOrder.
type Person struct {
	ID          string   `gorm:"type:uuid;primaryKey"`
	Category    Category `gorm:"type:text;not null"`
	Role        string   `gorm:"not null"`
	Name        string   `gorm:"not null"`
	Description *string
	ImageURL    *string   `gorm:"column:image_url"`
	SortOrder   int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Person) TableName() string {
	return "serving_people"
}

// Seed is a boot-time entry for an empty table.
type Seed struct {
	Category    string
	Role        string
	Name        string
	Description string
	SortOrder   int
}

// Input carries the editable fields. A nil field keeps the stored value on
// update. A nil SortOrder on create places the person last.
type Input struct {
	Category    *string
	Role        *string
	Name        *string
	Description *string
	ImageURL    *string
	SortOrder   *int
}

const seedLockKey = "serving_people:seed"
