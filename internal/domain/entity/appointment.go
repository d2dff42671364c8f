package entity

import "time"

// AppointmentStatus represents the status of a scheduled appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// Appointment is a scheduled room occupancy for a patient. It competes
// for rooms under the same mutual-exclusion discipline as PatientTest
// and releases its room on completion or cancellation.
type Appointment struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       uint              `gorm:"not null;index" json:"patient_id"`
	RoomID          *uint             `gorm:"index" json:"room_id,omitempty"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	// EstimatedWaitTime is in minutes.
	EstimatedWaitTime int               `gorm:"not null;default:0" json:"estimated_wait_time"`
	Status            AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Room    *Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CanTransitionTo reports whether next is reachable from the current status.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status.IsTerminal() {
		return false
	}
	return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
}

// IsScheduled checks if the appointment is still upcoming
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}
