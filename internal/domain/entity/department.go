package entity

import "time"

// DepartmentType partitions the test catalog for the assignment rules.
type DepartmentType string

const (
	DepartmentRadiology  DepartmentType = "radiology"
	DepartmentCardiology DepartmentType = "cardiology"
)

// Department is a clinical service line. Static reference data.
type Department struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Type        DepartmentType `gorm:"type:varchar(50);not null;index" json:"type"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Tests []Test `gorm:"foreignKey:DepartmentID" json:"tests,omitempty"`
	Rooms []Room `gorm:"foreignKey:DepartmentID" json:"rooms,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
