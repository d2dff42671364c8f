package repository

import (
	"time"

	"healthcare-qms/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByUniqueID(db *gorm.DB, uniqueID string) (*entity.Patient, error)
	FindAll(db *gorm.DB, offset, limit int) ([]entity.Patient, error)
	Save(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id uint) (int64, error)
	CountRegisteredBetween(db *gorm.DB, from, to time.Time) (int64, error)
}
