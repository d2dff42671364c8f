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

// ErrPortalVerification deliberately does not distinguish an unknown
// unique id from a date-of-birth mismatch.
var ErrPortalVerification = errors.New("patient not found or date of birth does not match")

// PortalUsecase serves the public patient portal. Every operation
// re-verifies the caller with unique id + date of birth; there is no
// session.
type PortalUsecase interface {
	GetSummary(ctx context.Context, req *dto.PortalAccessRequest) (*dto.PortalSummaryResponse, error)
	GetNextAppointment(ctx context.Context, req *dto.PortalAccessRequest) (*dto.NextAppointmentResponse, error)
	ScheduleAppointment(ctx context.Context, req *dto.PortalScheduleRequest) (*dto.AppointmentResponse, error)
}

type portalUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	patientTestRepo repository.PatientTestRepository
	appointmentRepo repository.AppointmentRepository
	roomAllocator   *service.RoomAllocator
	auditService    service.AuditService
}

func NewPortalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	patientTestRepo repository.PatientTestRepository,
	appointmentRepo repository.AppointmentRepository,
	roomAllocator *service.RoomAllocator,
	auditService service.AuditService,
) PortalUsecase {
	return &portalUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		patientTestRepo: patientTestRepo,
		appointmentRepo: appointmentRepo,
		roomAllocator:   roomAllocator,
		auditService:    auditService,
	}
}

func (u *portalUsecase) verifyPatient(db *gorm.DB, uniqueID, dateOfBirth string) (*entity.Patient, error) {
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient, err := u.patientRepo.FindByUniqueID(db, uniqueID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", uniqueID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPortalVerification
	}

	py, pm, pd := patient.DateOfBirth.Date()
	ry, rm, rd := dob.Date()
	if py != ry || pm != rm || pd != rd {
		u.log.Warnf("Portal verification failed for %s: date of birth mismatch", uniqueID)
		return nil, ErrPortalVerification
	}

	return patient, nil
}

// GetSummary splits the patient's tests into upcoming and completed.
func (u *portalUsecase) GetSummary(ctx context.Context, req *dto.PortalAccessRequest) (*dto.PortalSummaryResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.verifyPatient(db, req.UniqueID, req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	tests, err := u.patientTestRepo.FindByPatientID(db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to load tests for patient %s: %+v", patient.UniqueID, err)
		return nil, err
	}

	var upcoming, completed []dto.PortalTestHistory
	for i := range tests {
		entry := converter.PatientTestToPortalHistory(&tests[i])
		if tests[i].Status == entity.TestStatusCompleted {
			completed = append(completed, entry)
		} else if tests[i].IsActive() {
			upcoming = append(upcoming, entry)
		}
	}

	return &dto.PortalSummaryResponse{
		PatientName:    patient.FullName(),
		UniqueID:       patient.UniqueID,
		UpcomingTests:  upcoming,
		CompletedTests: completed,
		Message:        fmt.Sprintf("You have %d upcoming and %d completed tests", len(upcoming), len(completed)),
	}, nil
}

// GetNextAppointment finds the patient's earliest scheduled appointment.
func (u *portalUsecase) GetNextAppointment(ctx context.Context, req *dto.PortalAccessRequest) (*dto.NextAppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.verifyPatient(db, req.UniqueID, req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindNextScheduled(db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find next appointment for %s: %+v", patient.UniqueID, err)
		return nil, err
	}

	if appointment == nil {
		return &dto.NextAppointmentResponse{
			PatientName: patient.FullName(),
			Message:     "No upcoming appointments",
		}, nil
	}

	resp := &dto.NextAppointmentResponse{
		PatientName:     patient.FullName(),
		NextAppointment: converter.AppointmentToResponse(appointment),
		Message:         "Next appointment found",
	}
	if appointment.Room != nil {
		resp.RoomNumber = &appointment.Room.RoomNumber
	}
	wait := appointment.EstimatedWaitTime
	resp.EstimatedWaitTime = &wait

	return resp, nil
}

// ScheduleAppointment lets a verified patient book a free room. The room
// claim follows the same transactional contract as the staff flow.
func (u *portalUsecase) ScheduleAppointment(ctx context.Context, req *dto.PortalScheduleRequest) (*dto.AppointmentResponse, error) {
	var appointment *entity.Appointment
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient, err := u.verifyPatient(tx, req.UniqueID, req.DateOfBirth)
		if err != nil {
			return err
		}

		appointment = &entity.Appointment{
			PatientID:         patient.ID,
			AppointmentDate:   req.AppointmentDate,
			EstimatedWaitTime: req.EstimatedWaitTime,
			Status:            entity.AppointmentStatusScheduled,
		}
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			u.log.Warnf("Failed to create portal appointment for %s: %+v", patient.UniqueID, err)
			return err
		}

		holder := service.Holder{Type: entity.OccupantAppointment, ID: appointment.ID}
		if err := u.roomAllocator.Occupy(tx, req.RoomID, holder); err != nil {
			return mapAllocatorError(err)
		}

		appointment.RoomID = &req.RoomID
		if err := u.appointmentRepo.Save(tx, appointment); err != nil {
			u.log.Warnf("Failed to save portal appointment %d: %+v", appointment.ID, err)
			return err
		}

		// Self-service booking has no staff actor.
		return u.auditService.LogCreate(ctx, tx, nil,
			entity.AuditActionAppointmentCreate, "appointment", fmt.Sprint(appointment.ID),
			map[string]interface{}{
				"patient_id":       patient.ID,
				"room_id":          req.RoomID,
				"appointment_date": appointment.AppointmentDate,
				"source":           "portal",
			})
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Portal appointment %d scheduled in room %d", appointment.ID, req.RoomID)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(full), nil
}
