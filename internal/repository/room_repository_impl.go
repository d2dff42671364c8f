package repository

import (
	"errors"

	"healthcare-qms/internal/domain/entity"
	domainRepo "healthcare-qms/internal/domain/repository"

	"gorm.io/gorm"
)

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) FindByID(db *gorm.DB, id uint) (*entity.Room, error) {
	var room entity.Room
	err := db.Preload("Department").Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(db *gorm.DB, departmentID *uint) ([]entity.Room, error) {
	query := db.Preload("Department")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var rooms []entity.Room
	err := query.Order("room_number").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindAvailable(db *gorm.DB, departmentID *uint) ([]entity.Room, error) {
	query := db.Preload("Department").Where("is_available = ?", true)
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var rooms []entity.Room
	err := query.Order("room_number").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// MarkOccupied atomically claims the room ONLY while it is still available.
// With two concurrent claims on the same room, row locking serializes the
// updates and the loser matches zero rows.
func (r *roomRepository) MarkOccupied(db *gorm.DB, id uint, occupantType entity.OccupantType, occupantID uint) (int64, error) {
	result := db.Model(&entity.Room{}).
		Where("id = ? AND is_available = ?", id, true).
		Updates(map[string]interface{}{
			"is_available":  false,
			"occupant_type": occupantType,
			"occupant_id":   occupantID,
		})
	return result.RowsAffected, result.Error
}

func (r *roomRepository) MarkReleased(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Room{}).
		Where("id = ? AND is_available = ?", id, false).
		Updates(map[string]interface{}{
			"is_available":  true,
			"occupant_type": nil,
			"occupant_id":   nil,
		})
	return result.RowsAffected, result.Error
}
