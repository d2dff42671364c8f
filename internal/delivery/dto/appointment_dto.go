package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID         uint      `json:"patient_id" validate:"required,min=1"`
	RoomID            uint      `json:"room_id" validate:"required,min=1"`
	AppointmentDate   time.Time `json:"appointment_date" validate:"required"`
	EstimatedWaitTime int       `json:"estimated_wait_time" validate:"gte=0"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate   *time.Time `json:"appointment_date"`
	EstimatedWaitTime *int       `json:"estimated_wait_time" validate:"omitempty,gte=0"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                uint      `json:"id"`
	PatientID         uint      `json:"patient_id"`
	PatientName       string    `json:"patient_name,omitempty"`
	RoomID            *uint     `json:"room_id,omitempty"`
	RoomNumber        *string   `json:"room_number,omitempty"`
	Department        *string   `json:"department,omitempty"`
	AppointmentDate   time.Time `json:"appointment_date"`
	EstimatedWaitTime int       `json:"estimated_wait_time"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
