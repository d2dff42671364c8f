package repository

import (
	"time"

	"healthcare-qms/internal/domain/entity"

	"gorm.io/gorm"
)

// StatusCount is one row of a per-status aggregate query.
type StatusCount struct {
	Status entity.TestStatus
	Count  int64
}

type PatientTestRepository interface {
	CreateBatch(db *gorm.DB, tests []entity.PatientTest) error
	FindByID(db *gorm.DB, id uint) (*entity.PatientTest, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.PatientTest, error)
	// FindQueue returns tests still moving through the queue (not completed),
	// optionally scoped to one department.
	FindQueue(db *gorm.DB, departmentID *uint) ([]entity.PatientTest, error)
	FindByDateRange(db *gorm.DB, from, to *time.Time, departmentID *uint) ([]entity.PatientTest, error)
	Save(db *gorm.DB, test *entity.PatientTest) error
	Delete(db *gorm.DB, id uint) (int64, error)

	CountByStatus(db *gorm.DB, departmentID *uint) ([]StatusCount, error)
	CountCreatedBetween(db *gorm.DB, from, to time.Time, status *entity.TestStatus) (int64, error)
	CountTotalByDepartment(db *gorm.DB, departmentID uint) (int64, error)
	CountCompletedByDepartment(db *gorm.DB, departmentID uint) (int64, error)
	// AverageWaitMinutes is the mean of (started_at - assigned_at) over
	// completed tests of a department, in minutes. Zero when none.
	AverageWaitMinutes(db *gorm.DB, departmentID uint) (float64, error)
	// AverageDurationMinutes is the mean of (completed_at - started_at)
	// over completed tests of a department, in minutes. Zero when none.
	AverageDurationMinutes(db *gorm.DB, departmentID uint) (float64, error)
}
