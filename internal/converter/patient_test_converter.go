package converter

import (
	"time"

	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
	"healthcare-qms/internal/service"
)

// PatientTestToResponse converts a PatientTest entity to its response DTO
func PatientTestToResponse(test *entity.PatientTest) *dto.PatientTestResponse {
	if test == nil {
		return nil
	}

	response := &dto.PatientTestResponse{
		ID:          test.ID,
		PatientID:   test.PatientID,
		TestID:      test.TestID,
		Status:      string(test.Status),
		AssignedAt:  test.AssignedAt,
		StartedAt:   test.StartedAt,
		CompletedAt: test.CompletedAt,
		Notes:       test.Notes,
		CreatedAt:   test.CreatedAt,
		UpdatedAt:   test.UpdatedAt,
	}

	if test.Test.ID != 0 {
		response.TestCode = string(test.Test.Code)
		response.TestName = test.Test.Name
		if test.Test.Department.ID != 0 {
			response.Department = test.Test.Department.Name
		}
	}
	if test.Room != nil {
		response.RoomNumber = &test.Room.RoomNumber
	}

	return response
}

// PatientTestsToResponses converts a slice of PatientTest entities to response DTOs
func PatientTestsToResponses(tests []entity.PatientTest) []dto.PatientTestResponse {
	responses := make([]dto.PatientTestResponse, len(tests))
	for i := range tests {
		resp := PatientTestToResponse(&tests[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PatientTestToQueueEntry builds the live queue view of a test,
// including the wait time since room assignment.
func PatientTestToQueueEntry(test *entity.PatientTest, now time.Time) dto.QueueEntryResponse {
	entry := dto.QueueEntryResponse{
		ID:        test.ID,
		PatientID: test.PatientID,
		Status:    string(test.Status),
		WaitTime:  service.WaitTimeMinutes(test.AssignedAt, now),
		CreatedAt: test.CreatedAt,
	}

	if test.Patient.ID != 0 {
		entry.UniqueID = test.Patient.UniqueID
		entry.PatientName = test.Patient.FullName()
	}
	if test.Test.ID != 0 {
		entry.TestName = test.Test.Name
		if test.Test.Department.ID != 0 {
			entry.Department = test.Test.Department.Name
		}
	}
	if test.Room != nil {
		entry.RoomNumber = &test.Room.RoomNumber
	}

	return entry
}

// PatientTestToPortalHistory builds the patient-portal view of a test.
func PatientTestToPortalHistory(test *entity.PatientTest) dto.PortalTestHistory {
	history := dto.PortalTestHistory{
		ID:          test.ID,
		Status:      string(test.Status),
		AssignedAt:  test.AssignedAt,
		StartedAt:   test.StartedAt,
		CompletedAt: test.CompletedAt,
		Notes:       test.Notes,
	}

	if test.Test.ID != 0 {
		history.TestName = test.Test.Name
		if test.Test.Department.ID != 0 {
			history.Department = test.Test.Department.Name
		}
	}
	if test.Room != nil {
		history.RoomNumber = &test.Room.RoomNumber
	}

	return history
}
