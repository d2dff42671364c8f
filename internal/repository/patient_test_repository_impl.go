package repository

import (
	"errors"
	"time"

	"healthcare-qms/internal/domain/entity"
	domainRepo "healthcare-qms/internal/domain/repository"

	"gorm.io/gorm"
)

type patientTestRepository struct{}

func NewPatientTestRepository() domainRepo.PatientTestRepository {
	return &patientTestRepository{}
}

func (r *patientTestRepository) CreateBatch(db *gorm.DB, tests []entity.PatientTest) error {
	if len(tests) == 0 {
		return nil
	}
	return db.Create(&tests).Error
}

func (r *patientTestRepository) FindByID(db *gorm.DB, id uint) (*entity.PatientTest, error) {
	var test entity.PatientTest
	err := db.Preload("Patient").Preload("Test.Department").Preload("Room").
		Where("id = ?", id).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *patientTestRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.PatientTest, error) {
	var tests []entity.PatientTest
	err := db.Preload("Test.Department").Preload("Room").
		Where("patient_id = ?", patientID).
		Order("created_at").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *patientTestRepository) FindQueue(db *gorm.DB, departmentID *uint) ([]entity.PatientTest, error) {
	query := db.Preload("Patient").Preload("Test.Department").Preload("Room").
		Joins("JOIN tests ON tests.id = patient_tests.test_id").
		Where("patient_tests.status != ?", entity.TestStatusCompleted)

	if departmentID != nil {
		query = query.Where("tests.department_id = ?", *departmentID)
	}

	var tests []entity.PatientTest
	err := query.Order("patient_tests.created_at").Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *patientTestRepository) FindByDateRange(db *gorm.DB, from, to *time.Time, departmentID *uint) ([]entity.PatientTest, error) {
	query := db.Preload("Patient").Preload("Test.Department").Preload("Room").
		Joins("JOIN tests ON tests.id = patient_tests.test_id")

	if from != nil {
		query = query.Where("patient_tests.created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("patient_tests.created_at <= ?", *to)
	}
	if departmentID != nil {
		query = query.Where("tests.department_id = ?", *departmentID)
	}

	var tests []entity.PatientTest
	err := query.Order("patient_tests.created_at").Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *patientTestRepository) Save(db *gorm.DB, test *entity.PatientTest) error {
	return db.Save(test).Error
}

func (r *patientTestRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.PatientTest{}, id)
	return result.RowsAffected, result.Error
}

func (r *patientTestRepository) CountByStatus(db *gorm.DB, departmentID *uint) ([]domainRepo.StatusCount, error) {
	query := db.Model(&entity.PatientTest{}).
		Select("patient_tests.status as status, COUNT(*) as count").
		Group("patient_tests.status")

	if departmentID != nil {
		query = query.Joins("JOIN tests ON tests.id = patient_tests.test_id").
			Where("tests.department_id = ?", *departmentID)
	}

	var counts []domainRepo.StatusCount
	err := query.Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *patientTestRepository) CountCreatedBetween(db *gorm.DB, from, to time.Time, status *entity.TestStatus) (int64, error) {
	query := db.Model(&entity.PatientTest{}).
		Where("created_at >= ? AND created_at <= ?", from, to)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *patientTestRepository) CountTotalByDepartment(db *gorm.DB, departmentID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.PatientTest{}).
		Joins("JOIN tests ON tests.id = patient_tests.test_id").
		Where("tests.department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}

func (r *patientTestRepository) CountCompletedByDepartment(db *gorm.DB, departmentID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.PatientTest{}).
		Joins("JOIN tests ON tests.id = patient_tests.test_id").
		Where("tests.department_id = ? AND patient_tests.status = ?", departmentID, entity.TestStatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *patientTestRepository) AverageWaitMinutes(db *gorm.DB, departmentID uint) (float64, error) {
	var avg float64
	err := db.Model(&entity.PatientTest{}).
		Select("COALESCE(AVG(EXTRACT(EPOCH FROM (patient_tests.started_at - patient_tests.assigned_at)) / 60), 0)").
		Joins("JOIN tests ON tests.id = patient_tests.test_id").
		Where("tests.department_id = ? AND patient_tests.status = ?", departmentID, entity.TestStatusCompleted).
		Scan(&avg).Error
	return avg, err
}

func (r *patientTestRepository) AverageDurationMinutes(db *gorm.DB, departmentID uint) (float64, error) {
	var avg float64
	err := db.Model(&entity.PatientTest{}).
		Select("COALESCE(AVG(EXTRACT(EPOCH FROM (patient_tests.completed_at - patient_tests.started_at)) / 60), 0)").
		Joins("JOIN tests ON tests.id = patient_tests.test_id").
		Where("tests.department_id = ? AND patient_tests.status = ?", departmentID, entity.TestStatusCompleted).
		Scan(&avg).Error
	return avg, err
}
