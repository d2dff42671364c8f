package usecase

import (
	"context"
	"time"

	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
	"healthcare-qms/internal/domain/repository"
	"healthcare-qms/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReportUsecase aggregates queue history into report data. It produces
// rows and figures only; rendering is the consumer's concern.
type ReportUsecase interface {
	PatientCompletion(ctx context.Context, from, to *time.Time, departmentID *uint) (*dto.PatientCompletionReport, error)
	DepartmentEfficiency(ctx context.Context) (*dto.DepartmentEfficiencyReport, error)
	DailySummary(ctx context.Context, date time.Time) (*dto.DailySummaryReport, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	patientTestRepo repository.PatientTestRepository
	catalogRepo     repository.CatalogRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	patientTestRepo repository.PatientTestRepository,
	catalogRepo repository.CatalogRepository,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		patientTestRepo: patientTestRepo,
		catalogRepo:     catalogRepo,
	}
}

// PatientCompletion lists every test in the window with its wait time
// (room assignment to start) and duration (start to completion). Either
// figure is omitted while its interval is still open.
func (u *reportUsecase) PatientCompletion(ctx context.Context, from, to *time.Time, departmentID *uint) (*dto.PatientCompletionReport, error) {
	tests, err := u.patientTestRepo.FindByDateRange(u.db.WithContext(ctx), from, to, departmentID)
	if err != nil {
		u.log.Warnf("Failed to load tests for completion report: %+v", err)
		return nil, err
	}

	rows := make([]dto.PatientCompletionRow, 0, len(tests))
	for i := range tests {
		test := &tests[i]
		row := dto.PatientCompletionRow{
			PatientUID:      test.Patient.UniqueID,
			PatientName:     test.Patient.FullName(),
			TestName:        test.Test.Name,
			Department:      test.Test.Department.Name,
			Status:          string(test.Status),
			WaitTimeMinutes: service.MinutesBetween(test.AssignedAt, test.StartedAt),
			DurationMinutes: service.MinutesBetween(test.StartedAt, test.CompletedAt),
			CreatedAt:       test.CreatedAt,
			CompletedAt:     test.CompletedAt,
		}
		if test.Room != nil {
			row.RoomNumber = &test.Room.RoomNumber
		}
		rows = append(rows, row)
	}

	return &dto.PatientCompletionReport{
		Rows:  rows,
		Total: len(rows),
	}, nil
}

// DepartmentEfficiency reports per-department throughput: totals,
// completion rate and average wait/duration over completed tests.
func (u *reportUsecase) DepartmentEfficiency(ctx context.Context) (*dto.DepartmentEfficiencyReport, error) {
	db := u.db.WithContext(ctx)

	departments, err := u.catalogRepo.FindAllDepartments(db)
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	report := &dto.DepartmentEfficiencyReport{}
	for i := range departments {
		department := &departments[i]

		total, err := u.patientTestRepo.CountTotalByDepartment(db, department.ID)
		if err != nil {
			return nil, err
		}
		completed, err := u.patientTestRepo.CountCompletedByDepartment(db, department.ID)
		if err != nil {
			return nil, err
		}
		avgWait, err := u.patientTestRepo.AverageWaitMinutes(db, department.ID)
		if err != nil {
			return nil, err
		}
		avgDuration, err := u.patientTestRepo.AverageDurationMinutes(db, department.ID)
		if err != nil {
			return nil, err
		}

		report.Departments = append(report.Departments, dto.DepartmentEfficiencyRow{
			Department:         department.Name,
			TotalTests:         total,
			CompletedTests:     completed,
			CompletionRate:     service.CompletionRate(completed, total),
			AvgWaitMinutes:     service.RoundMinutes(avgWait),
			AvgDurationMinutes: service.RoundMinutes(avgDuration),
		})
	}

	return report, nil
}

// DailySummary reports registrations and test movement for one calendar
// day, in the server's local time.
func (u *reportUsecase) DailySummary(ctx context.Context, date time.Time) (*dto.DailySummaryReport, error) {
	db := u.db.WithContext(ctx)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	registrations, err := u.patientRepo.CountRegisteredBetween(db, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to count registrations: %+v", err)
		return nil, err
	}

	total, err := u.patientTestRepo.CountCreatedBetween(db, dayStart, dayEnd, nil)
	if err != nil {
		return nil, err
	}

	byStatus := func(status entity.TestStatus) (int64, error) {
		return u.patientTestRepo.CountCreatedBetween(db, dayStart, dayEnd, &status)
	}

	completed, err := byStatus(entity.TestStatusCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := byStatus(entity.TestStatusPending)
	if err != nil {
		return nil, err
	}
	inProgress, err := byStatus(entity.TestStatusInProgress)
	if err != nil {
		return nil, err
	}

	return &dto.DailySummaryReport{
		Date:               dayStart.Format("2006-01-02"),
		TotalRegistrations: registrations,
		TotalTests:         total,
		CompletedTests:     completed,
		PendingTests:       pending,
		InProgressTests:    inProgress,
		CompletionRate:     service.CompletionRate(completed, total),
	}, nil
}
