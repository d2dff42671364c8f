package dto

import "time"

// Request DTOs

type UpdateTestStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
	RoomID *uint   `json:"room_id" validate:"omitempty,min=1"`
	Notes  *string `json:"notes"`
}

type AssignRoomRequest struct {
	RoomID uint `json:"room_id" validate:"required,min=1"`
}

// Response DTOs

type PatientTestResponse struct {
	ID          uint       `json:"id"`
	PatientID   uint       `json:"patient_id"`
	TestID      uint       `json:"test_id"`
	TestCode    string     `json:"test_code"`
	TestName    string     `json:"test_name"`
	Department  string     `json:"department,omitempty"`
	Status      string     `json:"status"`
	RoomNumber  *string    `json:"room_number,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type PatientTestListResponse struct {
	Tests []PatientTestResponse `json:"tests"`
	Total int                   `json:"total"`
}

type CatalogTestResponse struct {
	ID                uint   `json:"id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	DepartmentID      uint   `json:"department_id"`
	Department        string `json:"department,omitempty"`
	Description       string `json:"description,omitempty"`
	EstimatedDuration int    `json:"estimated_duration"`
}

type CatalogTestListResponse struct {
	Tests []CatalogTestResponse `json:"tests"`
	Total int                   `json:"total"`
}

type QueueEntryResponse struct {
	ID          uint      `json:"id"`
	PatientID   uint      `json:"patient_id"`
	UniqueID    string    `json:"unique_id"`
	PatientName string    `json:"patient_name"`
	TestName    string    `json:"test_name"`
	Department  string    `json:"department"`
	Status      string    `json:"status"`
	RoomNumber  *string   `json:"room_number,omitempty"`
	WaitTime    *int      `json:"wait_time,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type QueueStatusResponse struct {
	Entries []QueueEntryResponse `json:"entries"`
	Total   int                  `json:"total"`
}

type DepartmentMetricsResponse struct {
	Department string `json:"department"`
	Pending    int64  `json:"pending"`
	InProgress int64  `json:"in_progress"`
	Completed  int64  `json:"completed"`
}

type QueueMetricsResponse struct {
	TotalPending      int64                       `json:"total_pending"`
	TotalInProgress   int64                       `json:"total_in_progress"`
	TotalCompleted    int64                       `json:"total_completed"`
	DepartmentMetrics []DepartmentMetricsResponse `json:"department_metrics"`
}

type DepartmentResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}

type RoomResponse struct {
	ID           uint    `json:"id"`
	RoomNumber   string  `json:"room_number"`
	DepartmentID uint    `json:"department_id"`
	Department   string  `json:"department,omitempty"`
	IsAvailable  bool    `json:"is_available"`
	OccupantType *string `json:"occupant_type,omitempty"`
	OccupantID   *uint   `json:"occupant_id,omitempty"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}
