package repository

import (
	"healthcare-qms/internal/domain/entity"

	"gorm.io/gorm"
)

type RoomRepository interface {
	FindByID(db *gorm.DB, id uint) (*entity.Room, error)
	FindAll(db *gorm.DB, departmentID *uint) ([]entity.Room, error)
	FindAvailable(db *gorm.DB, departmentID *uint) ([]entity.Room, error)
	// MarkOccupied conditionally claims the room for the given occupant.
	// The update only applies while the room is still available; the
	// returned row count is 0 when another holder won the race.
	MarkOccupied(db *gorm.DB, id uint, occupantType entity.OccupantType, occupantID uint) (int64, error)
	// MarkReleased frees the room and clears the occupant token.
	// Releasing an already-free room affects no rows and is not an error.
	MarkReleased(db *gorm.DB, id uint) (int64, error)
}
