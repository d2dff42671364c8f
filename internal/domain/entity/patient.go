package entity

import (
	"strings"
	"time"
)

// RiskLevel is the clinical risk classification derived from the
// patient's risk factors and age.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Patient represents a registered patient with clinical risk factors.
// UniqueID is generated once at registration and never changes.
type Patient struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UniqueID    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"unique_id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string    `gorm:"type:varchar(10);not null" json:"gender"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`

	// Risk factors
	Smoking       bool `gorm:"not null;default:false" json:"smoking"`
	Diabetes      bool `gorm:"not null;default:false" json:"diabetes"`
	Hypertension  bool `gorm:"not null;default:false" json:"hypertension"`
	Obesity       bool `gorm:"not null;default:false" json:"obesity"`
	FamilyHistory bool `gorm:"not null;default:false" json:"family_history"`

	RiskLevel RiskLevel `gorm:"type:varchar(10);not null;default:'low';index" json:"risk_level"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PatientTests []PatientTest `gorm:"foreignKey:PatientID" json:"patient_tests,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Age returns the patient's age in whole years as of now
// (current year minus birth year, no month adjustment).
func (p *Patient) Age() int {
	return time.Now().Year() - p.DateOfBirth.Year()
}

// IsFemale reports whether the patient's gender is female, case-insensitively.
func (p *Patient) IsFemale() bool {
	return strings.EqualFold(p.Gender, GenderFemale)
}

// FullName returns the patient's display name.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
