package usecase

import (
	"context"
	"errors"
	"fmt"

	"healthcare-qms/internal/converter"
	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
	"healthcare-qms/internal/domain/repository"
	"healthcare-qms/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context, filter *repository.AppointmentFilter) (*dto.AppointmentListResponse, error)
	Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id uint, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	AssignRoom(ctx context.Context, id uint, req *dto.AssignRoomRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	roomAllocator   *service.RoomAllocator
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	roomAllocator *service.RoomAllocator,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		roomAllocator:   roomAllocator,
		auditService:    auditService,
	}
}

// Create schedules an appointment and claims its room in the same
// transaction. A room conflict rolls the whole creation back, so an
// appointment never exists without the room it was promised.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var appointment *entity.Appointment
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(tx, req.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		appointment = &entity.Appointment{
			PatientID:         req.PatientID,
			AppointmentDate:   req.AppointmentDate,
			EstimatedWaitTime: req.EstimatedWaitTime,
			Status:            entity.AppointmentStatusScheduled,
		}

		// Insert first so the occupant token carries a real id.
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			if isForeignKeyError(err, "patient") {
				return ErrPatientNotFound
			}
			u.log.Warnf("Failed to create appointment: %+v", err)
			return err
		}

		holder := service.Holder{Type: entity.OccupantAppointment, ID: appointment.ID}
		if err := u.roomAllocator.Occupy(tx, req.RoomID, holder); err != nil {
			return mapAllocatorError(err)
		}

		appointment.RoomID = &req.RoomID
		if err := u.appointmentRepo.Save(tx, appointment); err != nil {
			u.log.Warnf("Failed to save appointment %d: %+v", appointment.ID, err)
			return err
		}

		return u.auditService.LogCreate(ctx, tx, actorFromContext(ctx),
			entity.AuditActionAppointmentCreate, "appointment", fmt.Sprint(appointment.ID),
			map[string]interface{}{
				"patient_id":       appointment.PatientID,
				"room_id":          req.RoomID,
				"appointment_date": appointment.AppointmentDate,
			})
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment %d created for patient %d in room %d", appointment.ID, appointment.PatientID, req.RoomID)

	return u.reloadAppointment(ctx, appointment.ID)
}

func (u *appointmentUsecase) GetAll(ctx context.Context, filter *repository.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Update changes the schedule details of an appointment that is still
// upcoming. Terminal appointments are immutable.
func (u *appointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if !appointment.IsScheduled() {
			return ErrInvalidTransition
		}

		if req.AppointmentDate != nil {
			appointment.AppointmentDate = *req.AppointmentDate
		}
		if req.EstimatedWaitTime != nil {
			appointment.EstimatedWaitTime = *req.EstimatedWaitTime
		}

		if err := u.appointmentRepo.Save(tx, appointment); err != nil {
			u.log.Warnf("Failed to update appointment %d: %+v", id, err)
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx),
			entity.AuditActionAppointmentUpdate, "appointment", fmt.Sprint(id),
			nil, map[string]interface{}{
				"appointment_date":    appointment.AppointmentDate,
				"estimated_wait_time": appointment.EstimatedWaitTime,
			})
	})
	if err != nil {
		return nil, err
	}

	return u.reloadAppointment(ctx, id)
}

// UpdateStatus completes or cancels an appointment. Either way the held
// room is released in the same transaction.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uint, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	next := entity.AppointmentStatus(req.Status)

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if !appointment.CanTransitionTo(next) {
			u.log.Warnf("Rejected transition for appointment %d: %s -> %s", id, appointment.Status, next)
			return ErrInvalidTransition
		}

		previous := appointment.Status
		if appointment.RoomID != nil {
			if err := u.roomAllocator.Release(tx, *appointment.RoomID); err != nil {
				return err
			}
		}

		appointment.Status = next
		if err := u.appointmentRepo.Save(tx, appointment); err != nil {
			u.log.Warnf("Failed to update appointment %d status: %+v", id, err)
			return err
		}

		action := entity.AuditActionAppointmentUpdate
		if next == entity.AppointmentStatusCancelled {
			action = entity.AuditActionAppointmentCancel
		}
		return u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx),
			action, "appointment", fmt.Sprint(id), previous, next)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment %d moved to %s", id, next)

	return u.reloadAppointment(ctx, id)
}

// AssignRoom moves a scheduled appointment into another room, freeing
// the previous one first.
func (u *appointmentUsecase) AssignRoom(ctx context.Context, id uint, req *dto.AssignRoomRequest) (*dto.AppointmentResponse, error) {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if !appointment.IsScheduled() {
			return ErrInvalidTransition
		}

		previousRoomID := appointment.RoomID
		holder := service.Holder{Type: entity.OccupantAppointment, ID: appointment.ID}
		if err := u.roomAllocator.Reassign(tx, previousRoomID, req.RoomID, holder); err != nil {
			return mapAllocatorError(err)
		}

		appointment.RoomID = &req.RoomID
		if err := u.appointmentRepo.Save(tx, appointment); err != nil {
			u.log.Warnf("Failed to reassign appointment %d: %+v", id, err)
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx),
			entity.AuditActionAppointmentRoom, "appointment", fmt.Sprint(id),
			previousRoomID, req.RoomID)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment %d assigned to room %d", id, req.RoomID)

	return u.reloadAppointment(ctx, id)
}

// Delete removes an appointment outright, releasing its room if one is
// still held.
func (u *appointmentUsecase) Delete(ctx context.Context, id uint) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		if appointment.IsScheduled() && appointment.RoomID != nil {
			if err := u.roomAllocator.Release(tx, *appointment.RoomID); err != nil {
				return err
			}
		}

		if _, err := u.appointmentRepo.Delete(tx, id); err != nil {
			u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
			return err
		}

		return u.auditService.LogDelete(ctx, tx, actorFromContext(ctx),
			entity.AuditActionAppointmentDelete, "appointment", fmt.Sprint(id),
			map[string]interface{}{
				"patient_id":       appointment.PatientID,
				"appointment_date": appointment.AppointmentDate,
			})
	})
}

func (u *appointmentUsecase) reloadAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}
