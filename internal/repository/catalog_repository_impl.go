package repository

import (
	"errors"

	"healthcare-qms/internal/domain/entity"
	domainRepo "healthcare-qms/internal/domain/repository"

	"gorm.io/gorm"
)

type catalogRepository struct{}

func NewCatalogRepository() domainRepo.CatalogRepository {
	return &catalogRepository{}
}

func (r *catalogRepository) FindAllDepartments(db *gorm.DB) ([]entity.Department, error) {
	var departments []entity.Department
	err := db.Order("id").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *catalogRepository) FindDepartmentByID(db *gorm.DB, id uint) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *catalogRepository) FindAllTests(db *gorm.DB) ([]entity.Test, error) {
	var tests []entity.Test
	err := db.Preload("Department").Order("id").Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *catalogRepository) FindTestsByDepartmentType(db *gorm.DB, departmentType entity.DepartmentType) ([]entity.Test, error) {
	var tests []entity.Test
	err := db.Preload("Department").
		Joins("JOIN departments ON departments.id = tests.department_id").
		Where("departments.type = ?", departmentType).
		Order("tests.id").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *catalogRepository) FindTestByCode(db *gorm.DB, code entity.TestCode) (*entity.Test, error) {
	var test entity.Test
	err := db.Preload("Department").Where("code = ?", code).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}
