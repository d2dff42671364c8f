package converter

import (
	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	if user.IsActive != nil {
		response.IsActive = *user.IsActive
	}
	if user.Role.ID != 0 {
		response.Role = user.Role.RoleName
	}

	return response
}
