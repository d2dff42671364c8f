package entity

import "time"

// TestCode is the stable identifier the assignment rules key on.
// Display names may change; codes may not.
type TestCode string

const (
	TestCodeMammogram  TestCode = "mammogram"
	TestCodeUSGAbdomen TestCode = "usg_abdomen"
	TestCodeXRayChest  TestCode = "xray_chest"
	TestCodeECG        TestCode = "ecg"
	TestCodeTMT        TestCode = "tmt"
	TestCodeEcho2D     TestCode = "echo_2d"
	TestCodePFT        TestCode = "pft"
)

// Test is a catalog entry describing a diagnostic procedure.
// Static reference data, looked up by code during assignment.
type Test struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code         TestCode  `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	DepartmentID uint      `gorm:"not null;index" json:"department_id"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	// EstimatedDuration is in minutes.
	EstimatedDuration int       `gorm:"not null;default:0" json:"estimated_duration"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}
