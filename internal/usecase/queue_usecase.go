package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"healthcare-qms/internal/converter"
	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
	"healthcare-qms/internal/domain/repository"
	"healthcare-qms/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientTestNotFound = errors.New("patient test not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNotAvailable    = errors.New("room is not available")
	ErrRoomWrongDepartment = errors.New("room belongs to a different department")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrCatalogTestNotFound = errors.New("catalog test not found")
)

const (
	queueMetricsCacheKey = "queue:metrics"
	queueMetricsCacheTTL = 30 * time.Second
)

type QueueUsecase interface {
	GetQueue(ctx context.Context, departmentID *uint) (*dto.QueueStatusResponse, error)
	GetMetrics(ctx context.Context) (*dto.QueueMetricsResponse, error)
	GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
	GetCatalogTests(ctx context.Context, departmentType *entity.DepartmentType) (*dto.CatalogTestListResponse, error)
	GetCatalogTest(ctx context.Context, code entity.TestCode) (*dto.CatalogTestResponse, error)
	GetRooms(ctx context.Context, departmentID *uint, availableOnly bool) (*dto.RoomListResponse, error)
	GetTest(ctx context.Context, id uint) (*dto.PatientTestResponse, error)
	UpdateTestStatus(ctx context.Context, id uint, req *dto.UpdateTestStatusRequest) (*dto.PatientTestResponse, error)
	AssignRoom(ctx context.Context, id uint, req *dto.AssignRoomRequest) (*dto.PatientTestResponse, error)
}

type queueUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	redisClient     *redis.Client
	patientTestRepo repository.PatientTestRepository
	catalogRepo     repository.CatalogRepository
	roomRepo        repository.RoomRepository
	roomAllocator   *service.RoomAllocator
	auditService    service.AuditService
}

func NewQueueUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	redisClient *redis.Client,
	patientTestRepo repository.PatientTestRepository,
	catalogRepo repository.CatalogRepository,
	roomRepo repository.RoomRepository,
	roomAllocator *service.RoomAllocator,
	auditService service.AuditService,
) QueueUsecase {
	return &queueUsecase{
		db:              db,
		log:             log,
		redisClient:     redisClient,
		patientTestRepo: patientTestRepo,
		catalogRepo:     catalogRepo,
		roomRepo:        roomRepo,
		roomAllocator:   roomAllocator,
		auditService:    auditService,
	}
}

// GetQueue returns every test still moving through the workflow,
// optionally scoped to one department, with live wait times.
func (u *queueUsecase) GetQueue(ctx context.Context, departmentID *uint) (*dto.QueueStatusResponse, error) {
	if departmentID != nil {
		department, err := u.catalogRepo.FindDepartmentByID(u.db.WithContext(ctx), *departmentID)
		if err != nil {
			return nil, err
		}
		if department == nil {
			return nil, ErrDepartmentNotFound
		}
	}

	tests, err := u.patientTestRepo.FindQueue(u.db.WithContext(ctx), departmentID)
	if err != nil {
		u.log.Warnf("Failed to load queue: %+v", err)
		return nil, err
	}

	now := time.Now()
	entries := make([]dto.QueueEntryResponse, 0, len(tests))
	for i := range tests {
		entries = append(entries, converter.PatientTestToQueueEntry(&tests[i], now))
	}

	return &dto.QueueStatusResponse{
		Entries: entries,
		Total:   len(entries),
	}, nil
}

// GetMetrics aggregates queue counts overall and per department. The
// result is cached in Redis for a short window since dashboards poll it.
func (u *queueUsecase) GetMetrics(ctx context.Context) (*dto.QueueMetricsResponse, error) {
	if cached, err := u.redisClient.Get(ctx, queueMetricsCacheKey).Result(); err == nil {
		var metrics dto.QueueMetricsResponse
		if err := json.Unmarshal([]byte(cached), &metrics); err == nil {
			return &metrics, nil
		}
	}

	db := u.db.WithContext(ctx)

	totals, err := u.patientTestRepo.CountByStatus(db, nil)
	if err != nil {
		u.log.Warnf("Failed to count tests by status: %+v", err)
		return nil, err
	}

	metrics := &dto.QueueMetricsResponse{}
	applyStatusCounts(totals, &metrics.TotalPending, &metrics.TotalInProgress, &metrics.TotalCompleted)

	departments, err := u.catalogRepo.FindAllDepartments(db)
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	for i := range departments {
		department := &departments[i]
		counts, err := u.patientTestRepo.CountByStatus(db, &department.ID)
		if err != nil {
			u.log.Warnf("Failed to count tests for department %d: %+v", department.ID, err)
			return nil, err
		}

		entry := dto.DepartmentMetricsResponse{Department: department.Name}
		applyStatusCounts(counts, &entry.Pending, &entry.InProgress, &entry.Completed)
		metrics.DepartmentMetrics = append(metrics.DepartmentMetrics, entry)
	}

	if payload, err := json.Marshal(metrics); err == nil {
		if err := u.redisClient.Set(ctx, queueMetricsCacheKey, payload, queueMetricsCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache queue metrics: %+v", err)
		}
	}

	return metrics, nil
}

func applyStatusCounts(counts []repository.StatusCount, pending, inProgress, completed *int64) {
	for _, c := range counts {
		switch c.Status {
		case entity.TestStatusPending:
			*pending = c.Count
		case entity.TestStatusInProgress:
			*inProgress = c.Count
		case entity.TestStatusCompleted:
			*completed = c.Count
		}
	}
}

func (u *queueUsecase) GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.catalogRepo.FindAllDepartments(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Departments: converter.DepartmentsToResponses(departments),
		Total:       len(departments),
	}, nil
}

func (u *queueUsecase) GetCatalogTests(ctx context.Context, departmentType *entity.DepartmentType) (*dto.CatalogTestListResponse, error) {
	db := u.db.WithContext(ctx)

	var tests []entity.Test
	var err error
	if departmentType != nil {
		tests, err = u.catalogRepo.FindTestsByDepartmentType(db, *departmentType)
	} else {
		tests, err = u.catalogRepo.FindAllTests(db)
	}
	if err != nil {
		u.log.Warnf("Failed to list catalog tests: %+v", err)
		return nil, err
	}

	return &dto.CatalogTestListResponse{
		Tests: converter.CatalogTestsToResponses(tests),
		Total: len(tests),
	}, nil
}

func (u *queueUsecase) GetCatalogTest(ctx context.Context, code entity.TestCode) (*dto.CatalogTestResponse, error) {
	test, err := u.catalogRepo.FindTestByCode(u.db.WithContext(ctx), code)
	if err != nil {
		u.log.Warnf("Failed to find catalog test %s: %+v", code, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrCatalogTestNotFound
	}

	return converter.CatalogTestToResponse(test), nil
}

func (u *queueUsecase) GetRooms(ctx context.Context, departmentID *uint, availableOnly bool) (*dto.RoomListResponse, error) {
	db := u.db.WithContext(ctx)

	var rooms []entity.Room
	var err error
	if availableOnly {
		rooms, err = u.roomRepo.FindAvailable(db, departmentID)
	} else {
		rooms, err = u.roomRepo.FindAll(db, departmentID)
	}
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}

	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *queueUsecase) GetTest(ctx context.Context, id uint) (*dto.PatientTestResponse, error) {
	test, err := u.patientTestRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient test %d: %+v", id, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrPatientTestNotFound
	}

	return converter.PatientTestToResponse(test), nil
}

// UpdateTestStatus moves a test through its lifecycle. Guard check,
// timestamps, room occupancy changes and the audit entry all run in one
// transaction, so a room conflict leaves the test untouched.
func (u *queueUsecase) UpdateTestStatus(ctx context.Context, id uint, req *dto.UpdateTestStatusRequest) (*dto.PatientTestResponse, error) {
	next := entity.TestStatus(req.Status)

	var test *entity.PatientTest
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		test, err = u.patientTestRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find patient test %d: %+v", id, err)
			return err
		}
		if test == nil {
			return ErrPatientTestNotFound
		}

		if !test.CanTransitionTo(next) {
			u.log.Warnf("Rejected transition for test %d: %s -> %s", id, test.Status, next)
			return ErrInvalidTransition
		}

		previous := test.Status
		now := time.Now()

		switch next {
		case entity.TestStatusInProgress:
			test.StartedAt = &now
			if req.RoomID != nil {
				if err := u.occupyForTest(tx, test, *req.RoomID, now); err != nil {
					return err
				}
			}
		case entity.TestStatusCompleted:
			test.CompletedAt = &now
			if test.AssignedRoomID != nil {
				if err := u.roomAllocator.Release(tx, *test.AssignedRoomID); err != nil {
					return err
				}
			}
		case entity.TestStatusCancelled:
			if test.AssignedRoomID != nil {
				if err := u.roomAllocator.Release(tx, *test.AssignedRoomID); err != nil {
					return err
				}
			}
		}

		test.Status = next
		if req.Notes != nil {
			test.Notes = *req.Notes
		}

		if err := u.patientTestRepo.Save(tx, test); err != nil {
			u.log.Warnf("Failed to update patient test %d: %+v", id, err)
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx),
			entity.AuditActionTestStatusChange, "patient_test", test.Patient.UniqueID,
			previous, next)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Patient test %d moved to %s", id, next)

	return u.reloadTest(ctx, id)
}

// AssignRoom places a waiting or running test into a room directly,
// freeing any room it held before. Terminal tests cannot be placed.
func (u *queueUsecase) AssignRoom(ctx context.Context, id uint, req *dto.AssignRoomRequest) (*dto.PatientTestResponse, error) {
	var test *entity.PatientTest
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		test, err = u.patientTestRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find patient test %d: %+v", id, err)
			return err
		}
		if test == nil {
			return ErrPatientTestNotFound
		}
		if !test.IsActive() {
			return ErrInvalidTransition
		}

		room, err := u.roomRepo.FindByID(tx, req.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}
		if room.DepartmentID != test.Test.DepartmentID {
			return ErrRoomWrongDepartment
		}

		previousRoomID := test.AssignedRoomID
		holder := service.Holder{Type: entity.OccupantPatientTest, ID: test.ID}
		if err := u.roomAllocator.Reassign(tx, previousRoomID, req.RoomID, holder); err != nil {
			return mapAllocatorError(err)
		}

		now := time.Now()
		test.AssignedRoomID = &req.RoomID
		test.AssignedAt = &now

		if err := u.patientTestRepo.Save(tx, test); err != nil {
			u.log.Warnf("Failed to assign room for patient test %d: %+v", id, err)
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx),
			entity.AuditActionTestRoomAssign, "patient_test", test.Patient.UniqueID,
			previousRoomID, req.RoomID)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Patient test %d assigned to room %d", id, req.RoomID)

	return u.reloadTest(ctx, id)
}

// reloadTest re-reads a test after a write so the room and catalog
// associations in the response reflect the committed state.
func (u *queueUsecase) reloadTest(ctx context.Context, id uint) (*dto.PatientTestResponse, error) {
	test, err := u.patientTestRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrPatientTestNotFound
	}
	return converter.PatientTestToResponse(test), nil
}

// occupyForTest claims the room while starting a test and stamps the
// assignment, releasing any previously held room first.
func (u *queueUsecase) occupyForTest(tx *gorm.DB, test *entity.PatientTest, roomID uint, now time.Time) error {
	holder := service.Holder{Type: entity.OccupantPatientTest, ID: test.ID}
	if err := u.roomAllocator.Reassign(tx, test.AssignedRoomID, roomID, holder); err != nil {
		return mapAllocatorError(err)
	}

	test.AssignedRoomID = &roomID
	if test.AssignedAt == nil {
		test.AssignedAt = &now
	}
	return nil
}

func mapAllocatorError(err error) error {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		return ErrRoomNotFound
	case errors.Is(err, service.ErrRoomOccupied):
		return ErrRoomNotAvailable
	default:
		return err
	}
}
