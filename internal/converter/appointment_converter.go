package converter

import (
	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                appointment.ID,
		PatientID:         appointment.PatientID,
		RoomID:            appointment.RoomID,
		AppointmentDate:   appointment.AppointmentDate,
		EstimatedWaitTime: appointment.EstimatedWaitTime,
		Status:            string(appointment.Status),
		CreatedAt:         appointment.CreatedAt,
		UpdatedAt:         appointment.UpdatedAt,
	}

	if appointment.Patient.ID != 0 {
		response.PatientName = appointment.Patient.FullName()
	}
	if appointment.Room != nil {
		response.RoomNumber = &appointment.Room.RoomNumber
		if appointment.Room.Department.ID != 0 {
			response.Department = &appointment.Room.Department.Name
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
