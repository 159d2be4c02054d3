package ministry

import (
	"fmt"
	"strings"
)

// Category groups ministries by the admin screen that owns them.
type Category string

const (
	CategoryDomestic  Category = "DOMESTIC"
	CategoryOverseas  Category = "OVERSEAS"
	CategoryCommittee Category = "COMMITTEE"
	CategoryMen       Category = "MEN"
	CategoryWomen     Category = "WOMEN"
	CategoryWorship   Category = "WORSHIP"
)

// ParseCategory accepts a category name in any letter case.
func ParseCategory(value string) (Category, error) {
	category := Category(strings.ToUpper(strings.TrimSpace(value)))
	if !category.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, value)
	}
	return category, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryDomestic, CategoryOverseas, CategoryCommittee, CategoryMen, CategoryWomen, CategoryWorship:
		return true
	default:
		return false
	}
}
