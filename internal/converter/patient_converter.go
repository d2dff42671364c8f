package converter

import (
	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            patient.ID,
		UniqueID:      patient.UniqueID,
		FirstName:     patient.FirstName,
		LastName:      patient.LastName,
		DateOfBirth:   patient.DateOfBirth.Format("2006-01-02"),
		Gender:        patient.Gender,
		Phone:         patient.Phone,
		Email:         patient.Email,
		Address:       patient.Address,
		Smoking:       patient.Smoking,
		Diabetes:      patient.Diabetes,
		Hypertension:  patient.Hypertension,
		Obesity:       patient.Obesity,
		FamilyHistory: patient.FamilyHistory,
		RiskLevel:     string(patient.RiskLevel),
		CreatedAt:     patient.CreatedAt,
		UpdatedAt:     patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
