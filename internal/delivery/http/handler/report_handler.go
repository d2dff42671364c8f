package handler

import (
	"net/http"
	"time"

	"healthcare-qms/internal/usecase"
	"healthcare-qms/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter.
func parseDateQuery(r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

func (h *ReportHandler) PatientCompletion(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDateQuery(r, "from")
	if !ok {
		response.BadRequest(w, "Invalid from date, use YYYY-MM-DD")
		return
	}
	to, ok := parseDateQuery(r, "to")
	if !ok {
		response.BadRequest(w, "Invalid to date, use YYYY-MM-DD")
		return
	}
	departmentID := parseUintQuery(r, "department_id")

	report, err := h.reportUsecase.PatientCompletion(r.Context(), from, to, departmentID)
	if err != nil {
		response.InternalServerError(w, "Failed to build completion report")
		return
	}

	response.Success(w, http.StatusOK, "Completion report retrieved successfully", report)
}

func (h *ReportHandler) DepartmentEfficiency(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.DepartmentEfficiency(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build efficiency report")
		return
	}

	response.Success(w, http.StatusOK, "Efficiency report retrieved successfully", report)
}

func (h *ReportHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if parsed, ok := parseDateQuery(r, "date"); !ok {
		response.BadRequest(w, "Invalid date, use YYYY-MM-DD")
		return
	} else if parsed != nil {
		date = *parsed
	}

	report, err := h.reportUsecase.DailySummary(r.Context(), date)
	if err != nil {
		response.InternalServerError(w, "Failed to build daily summary")
		return
	}

	response.Success(w, http.StatusOK, "Daily summary retrieved successfully", report)
}
