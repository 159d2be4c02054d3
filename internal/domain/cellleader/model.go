package cellleader

import "time"

type CellLeader struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	Name          string `gorm:"not null"`
	District      *string
	CellName      *string
	Region        *string
	Phone         *string
	AppointedDate *time.Time `gorm:"type:date"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

type Input struct {
	Name          string
	District      *string
	CellName      *string
	Region        *string
	Phone         *string
	AppointedDate string
}

const dateLayout = "2006-01-02"
