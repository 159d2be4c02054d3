package department

import "time"

type Department struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	ParentID  *string   `gorm:"type:uuid;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// DepartmentCount is a department row with the number of members assigned
// directly to it.
type DepartmentCount struct {
	Department
	MemberCount int64
}

type Node struct {
	ID          string
	Name        string
	ParentID    *string
	MemberCount int64
	Children    []Node
}

type CreateInput struct {
	Name     string
	ParentID *string
}
