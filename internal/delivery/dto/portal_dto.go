package dto

import "time"

// Request DTOs

// PortalAccessRequest identifies a patient from the public portal:
// the unique id handed out at registration plus date of birth (YYYY-MM-DD).
type PortalAccessRequest struct {
	UniqueID    string `json:"unique_id" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
}

type PortalScheduleRequest struct {
	UniqueID          string    `json:"unique_id" validate:"required"`
	DateOfBirth       string    `json:"date_of_birth" validate:"required"`
	RoomID            uint      `json:"room_id" validate:"required,min=1"`
	AppointmentDate   time.Time `json:"appointment_date" validate:"required"`
	EstimatedWaitTime int       `json:"estimated_wait_time" validate:"gte=0"`
}

// Response DTOs

type PortalTestHistory struct {
	ID          uint       `json:"id"`
	TestName    string     `json:"test_name"`
	Department  string     `json:"department"`
	Status      string     `json:"status"`
	RoomNumber  *string    `json:"room_number,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type PortalSummaryResponse struct {
	PatientName    string              `json:"patient_name"`
	UniqueID       string              `json:"unique_id"`
	UpcomingTests  []PortalTestHistory `json:"upcoming_tests"`
	CompletedTests []PortalTestHistory `json:"completed_tests"`
	Message        string              `json:"message"`
}

type NextAppointmentResponse struct {
	PatientName       string               `json:"patient_name"`
	NextAppointment   *AppointmentResponse `json:"next_appointment,omitempty"`
	RoomNumber        *string              `json:"room_number,omitempty"`
	EstimatedWaitTime *int                 `json:"estimated_wait_time,omitempty"`
	Message           string               `json:"message"`
}
