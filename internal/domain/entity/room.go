package entity

import "time"

// OccupantType identifies which kind of entity holds a room.
type OccupantType string

const (
	OccupantPatientTest OccupantType = "patient_test"
	OccupantAppointment OccupantType = "appointment"
)

// Room is a physical resource scoped to one department. At most one
// non-terminal PatientTest or Appointment may hold it at any instant;
// the occupant token records which one, so occupancy is never a bare flag.
type Room struct {
	ID           uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomNumber   string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"room_number"`
	DepartmentID uint          `gorm:"not null;index" json:"department_id"`
	IsAvailable  bool          `gorm:"not null;default:true;index" json:"is_available"`
	OccupantType *OccupantType `gorm:"type:varchar(20)" json:"occupant_type,omitempty"`
	OccupantID   *uint         `json:"occupant_id,omitempty"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

// IsOccupiedBy reports whether the room is currently held by the given occupant.
func (r *Room) IsOccupiedBy(occupantType OccupantType, occupantID uint) bool {
	return !r.IsAvailable &&
		r.OccupantType != nil && *r.OccupantType == occupantType &&
		r.OccupantID != nil && *r.OccupantID == occupantID
}
