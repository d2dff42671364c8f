package repository

import (
	"healthcare-qms/internal/domain/entity"

	"gorm.io/gorm"
)

// CatalogRepository serves the static department/test reference data.
// The core treats it as read-only input.
type CatalogRepository interface {
	FindAllDepartments(db *gorm.DB) ([]entity.Department, error)
	FindDepartmentByID(db *gorm.DB, id uint) (*entity.Department, error)
	FindAllTests(db *gorm.DB) ([]entity.Test, error)
	FindTestsByDepartmentType(db *gorm.DB, departmentType entity.DepartmentType) ([]entity.Test, error)
	FindTestByCode(db *gorm.DB, code entity.TestCode) (*entity.Test, error)
}
