package converter

import (
	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
)

// DepartmentsToResponses converts Department entities to response DTOs
func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i, department := range departments {
		responses[i] = dto.DepartmentResponse{
			ID:          department.ID,
			Name:        department.Name,
			Type:        string(department.Type),
			Description: department.Description,
		}
	}
	return responses
}

// CatalogTestToResponse converts a catalog Test entity to its response DTO
func CatalogTestToResponse(test *entity.Test) *dto.CatalogTestResponse {
	if test == nil {
		return nil
	}

	response := &dto.CatalogTestResponse{
		ID:                test.ID,
		Code:              string(test.Code),
		Name:              test.Name,
		DepartmentID:      test.DepartmentID,
		Description:       test.Description,
		EstimatedDuration: test.EstimatedDuration,
	}

	if test.Department.ID != 0 {
		response.Department = test.Department.Name
	}

	return response
}

// CatalogTestsToResponses converts a slice of catalog Test entities to response DTOs
func CatalogTestsToResponses(tests []entity.Test) []dto.CatalogTestResponse {
	responses := make([]dto.CatalogTestResponse, len(tests))
	for i := range tests {
		resp := CatalogTestToResponse(&tests[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// RoomToResponse converts a Room entity to its response DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	response := &dto.RoomResponse{
		ID:           room.ID,
		RoomNumber:   room.RoomNumber,
		DepartmentID: room.DepartmentID,
		IsAvailable:  room.IsAvailable,
		OccupantID:   room.OccupantID,
	}

	if room.Department.ID != 0 {
		response.Department = room.Department.Name
	}
	if room.OccupantType != nil {
		occupantType := string(*room.OccupantType)
		response.OccupantType = &occupantType
	}

	return response
}

// RoomsToResponses converts a slice of Room entities to response DTOs
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		resp := RoomToResponse(&rooms[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
