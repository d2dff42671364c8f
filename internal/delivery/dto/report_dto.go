package dto

import "time"

type PatientCompletionRow struct {
	PatientUID      string     `json:"patient_uid"`
	PatientName     string     `json:"patient_name"`
	TestName        string     `json:"test_name"`
	Department      string     `json:"department"`
	Status          string     `json:"status"`
	RoomNumber      *string    `json:"room_number,omitempty"`
	WaitTimeMinutes *int       `json:"wait_time_minutes,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

type PatientCompletionReport struct {
	Rows  []PatientCompletionRow `json:"rows"`
	Total int                    `json:"total"`
}

type DepartmentEfficiencyRow struct {
	Department         string  `json:"department"`
	TotalTests         int64   `json:"total_tests"`
	CompletedTests     int64   `json:"completed_tests"`
	CompletionRate     float64 `json:"completion_rate"`
	AvgWaitMinutes     float64 `json:"avg_wait_minutes"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes"`
}

type DepartmentEfficiencyReport struct {
	Departments []DepartmentEfficiencyRow `json:"departments"`
}

type DailySummaryReport struct {
	Date               string  `json:"date"`
	TotalRegistrations int64   `json:"total_registrations"`
	TotalTests         int64   `json:"total_tests"`
	CompletedTests     int64   `json:"completed_tests"`
	PendingTests       int64   `json:"pending_tests"`
	InProgressTests    int64   `json:"in_progress_tests"`
	CompletionRate     float64 `json:"completion_rate"`
}
