package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthcare-qms/internal/converter"
	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
	"healthcare-qms/internal/domain/repository"
	"healthcare-qms/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrPatientUIDTaken     = errors.New("patient unique id already exists")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegistrationResponse, error)
	GetAll(ctx context.Context, offset, limit int) (*dto.PatientListResponse, error)
	Get(ctx context.Context, id uint) (*dto.PatientResponse, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (*dto.PatientResponse, error)
	GetTests(ctx context.Context, patientID uint) (*dto.PatientTestListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	patientTestRepo repository.PatientTestRepository
	catalogRepo     repository.CatalogRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	patientTestRepo repository.PatientTestRepository,
	catalogRepo repository.CatalogRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		patientTestRepo: patientTestRepo,
		catalogRepo:     catalogRepo,
		auditService:    auditService,
	}
}

// Register creates a patient, scores its clinical risk and assigns the
// test panel the rules select, all inside one transaction.
//
// Flow:
// 1. Generate the patient unique id
// 2. Classify risk from the submitted attribute snapshot
// 3. Evaluate assignment rules against the test catalog
// 4. Persist patient + pending tests atomically
func (u *patientUsecase) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegistrationResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient := &entity.Patient{
		UniqueID:      service.GeneratePatientUID(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   dob,
		Gender:        req.Gender,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Smoking:       req.Smoking,
		Diabetes:      req.Diabetes,
		Hypertension:  req.Hypertension,
		Obesity:       req.Obesity,
		FamilyHistory: req.FamilyHistory,
	}
	patient.RiskLevel = service.ClassifyRisk(patient)

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.patientRepo.Create(tx, patient); err != nil {
			if isDuplicateKeyError(err, "unique_id") {
				return ErrPatientUIDTaken
			}
			u.log.Warnf("Failed to create patient: %+v", err)
			return err
		}

		catalog, err := u.catalogRepo.FindAllTests(tx)
		if err != nil {
			u.log.Warnf("Failed to load test catalog: %+v", err)
			return err
		}

		assigned, missing := service.AssignTests(patient, catalog)
		for _, code := range missing {
			u.log.Infof("Assignment rule skipped for patient %s: no catalog entry for %s", patient.UniqueID, code)
		}

		if err := u.patientTestRepo.CreateBatch(tx, assigned); err != nil {
			u.log.Warnf("Failed to create assigned tests: %+v", err)
			return err
		}

		return u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientRegister,
			"patient", patient.UniqueID, map[string]interface{}{
				"risk_level":     patient.RiskLevel,
				"assigned_tests": len(assigned),
			})
	})
	if err != nil {
		return nil, err
	}

	tests, err := u.patientTestRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to reload assigned tests for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	u.log.Infof("Patient registered: uid=%s, risk=%s, tests=%d", patient.UniqueID, patient.RiskLevel, len(tests))

	return &dto.RegistrationResponse{
		Patient:       *converter.PatientToResponse(patient),
		AssignedTests: converter.PatientTestsToResponses(tests),
		RiskLevel:     string(patient.RiskLevel),
		Message:       fmt.Sprintf("Patient registered successfully with %d tests assigned", len(tests)),
	}, nil
}

func (u *patientUsecase) GetAll(ctx context.Context, offset, limit int) (*dto.PatientListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) Get(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetByUniqueID(ctx context.Context, uniqueID string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByUniqueID(u.db.WithContext(ctx), uniqueID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", uniqueID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetTests(ctx context.Context, patientID uint) (*dto.PatientTestListResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	tests, err := u.patientTestRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find tests for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.PatientTestListResponse{
		Tests: converter.PatientTestsToResponses(tests),
		Total: len(tests),
	}, nil
}

// Update rewrites the patient's mutable attributes and recomputes the
// risk level from the new snapshot. UniqueID never changes.
func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var patient *entity.Patient
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient, err = u.patientRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find patient %d: %+v", id, err)
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		oldRisk := patient.RiskLevel

		patient.FirstName = req.FirstName
		patient.LastName = req.LastName
		patient.DateOfBirth = dob
		patient.Gender = req.Gender
		patient.Phone = req.Phone
		patient.Email = req.Email
		patient.Address = req.Address
		patient.Smoking = req.Smoking
		patient.Diabetes = req.Diabetes
		patient.Hypertension = req.Hypertension
		patient.Obesity = req.Obesity
		patient.FamilyHistory = req.FamilyHistory
		patient.RiskLevel = service.ClassifyRisk(patient)

		if err := u.patientRepo.Save(tx, patient); err != nil {
			u.log.Warnf("Failed to update patient %d: %+v", id, err)
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientUpdate,
			"patient", patient.UniqueID, oldRisk, patient.RiskLevel)
	})
	if err != nil {
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		if _, err := u.patientRepo.Delete(tx, id); err != nil {
			u.log.Warnf("Failed to delete patient %d: %+v", id, err)
			return err
		}

		return u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientDelete,
			"patient", patient.UniqueID, map[string]interface{}{"name": patient.FullName()})
	})
}
