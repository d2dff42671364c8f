package entity

import "time"

// TestStatus represents the lifecycle status of an assigned test
type TestStatus string

const (
	TestStatusPending    TestStatus = "pending"
	TestStatusInProgress TestStatus = "in_progress"
	TestStatusCompleted  TestStatus = "completed"
	TestStatusCancelled  TestStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s TestStatus) IsTerminal() bool {
	return s == TestStatusCompleted || s == TestStatusCancelled
}

// PatientTest links one patient to one catalog test and tracks it
// through the queue workflow: pending -> in_progress -> completed,
// with cancellation possible from either non-terminal state.
type PatientTest struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      uint       `gorm:"not null;index" json:"patient_id"`
	TestID         uint       `gorm:"not null;index" json:"test_id"`
	Status         TestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AssignedRoomID *uint      `gorm:"index" json:"assigned_room_id,omitempty"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Test    Test    `gorm:"foreignKey:TestID" json:"test,omitempty"`
	Room    *Room   `gorm:"foreignKey:AssignedRoomID" json:"room,omitempty"`
}

func (PatientTest) TableName() string {
	return "patient_tests"
}

// CanTransitionTo reports whether next is reachable from the current status.
// Completed and cancelled are absorbing.
func (pt *PatientTest) CanTransitionTo(next TestStatus) bool {
	switch pt.Status {
	case TestStatusPending:
		return next == TestStatusInProgress || next == TestStatusCancelled
	case TestStatusInProgress:
		return next == TestStatusCompleted || next == TestStatusCancelled
	default:
		return false
	}
}

// IsPending checks if the test has not been started yet
func (pt *PatientTest) IsPending() bool {
	return pt.Status == TestStatusPending
}

// IsActive checks if the test still occupies a place in the queue
func (pt *PatientTest) IsActive() bool {
	return !pt.Status.IsTerminal()
}
