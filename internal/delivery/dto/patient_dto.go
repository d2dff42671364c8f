package dto

import "time"

// Request DTOs

type RegisterPatientRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"required,max=100"`
	DateOfBirth   string `json:"date_of_birth" validate:"required"`
	Gender        string `json:"gender" validate:"required,oneof=male female"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
	Smoking       bool   `json:"smoking"`
	Diabetes      bool   `json:"diabetes"`
	Hypertension  bool   `json:"hypertension"`
	Obesity       bool   `json:"obesity"`
	FamilyHistory bool   `json:"family_history"`
}

type UpdatePatientRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"required,max=100"`
	DateOfBirth   string `json:"date_of_birth" validate:"required"`
	Gender        string `json:"gender" validate:"required,oneof=male female"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
	Smoking       bool   `json:"smoking"`
	Diabetes      bool   `json:"diabetes"`
	Hypertension  bool   `json:"hypertension"`
	Obesity       bool   `json:"obesity"`
	FamilyHistory bool   `json:"family_history"`
}

// Response DTOs

type PatientResponse struct {
	ID            uint      `json:"id"`
	UniqueID      string    `json:"unique_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateOfBirth   string    `json:"date_of_birth"`
	Gender        string    `json:"gender"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	Smoking       bool      `json:"smoking"`
	Diabetes      bool      `json:"diabetes"`
	Hypertension  bool      `json:"hypertension"`
	Obesity       bool      `json:"obesity"`
	FamilyHistory bool      `json:"family_history"`
	RiskLevel     string    `json:"risk_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type RegistrationResponse struct {
	Patient       PatientResponse       `json:"patient"`
	AssignedTests []PatientTestResponse `json:"assigned_tests"`
	RiskLevel     string                `json:"risk_level"`
	Message       string                `json:"message"`
}
