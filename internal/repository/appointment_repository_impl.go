package repository

import (
	"errors"

	"healthcare-qms/internal/domain/entity"
	domainRepo "healthcare-qms/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Room.Department").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *domainRepo.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Preload("Patient").Preload("Room.Department")
	if filter != nil {
		if filter.PatientID != nil {
			query = query.Where("patient_id = ?", *filter.PatientID)
		}
		if filter.RoomID != nil {
			query = query.Where("room_id = ?", *filter.RoomID)
		}
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
	}

	var appointments []entity.Appointment
	err := query.Order("appointment_date").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindNextScheduled(db *gorm.DB, patientID uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Room.Department").
		Where("patient_id = ? AND status = ?", patientID, entity.AppointmentStatusScheduled).
		Order("appointment_date").
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Save(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Appointment{}, id)
	return result.RowsAffected, result.Error
}
