package repository

import (
	"healthcare-qms/internal/domain/entity"

	"gorm.io/gorm"
)

// AppointmentFilter narrows appointment listings. Nil fields match everything.
type AppointmentFilter struct {
	PatientID *uint
	RoomID    *uint
	Status    *entity.AppointmentStatus
}

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *AppointmentFilter) ([]entity.Appointment, error)
	FindNextScheduled(db *gorm.DB, patientID uint) (*entity.Appointment, error)
	Save(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
