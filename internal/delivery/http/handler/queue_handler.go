package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/domain/entity"
	"healthcare-qms/internal/usecase"
	"healthcare-qms/pkg/response"
	"healthcare-qms/pkg/validator"

	"github.com/gorilla/mux"
)

type QueueHandler struct {
	queueUsecase usecase.QueueUsecase
	validator    *validator.CustomValidator
}

func NewQueueHandler(queueUsecase usecase.QueueUsecase, validator *validator.CustomValidator) *QueueHandler {
	return &QueueHandler{
		queueUsecase: queueUsecase,
		validator:    validator,
	}
}

func (h *QueueHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	departmentID := parseUintQuery(r, "department_id")

	queue, err := h.queueUsecase.GetQueue(r.Context(), departmentID)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to get queue")
		}
		return
	}

	response.Success(w, http.StatusOK, "Queue retrieved successfully", queue)
}

func (h *QueueHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.queueUsecase.GetMetrics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get queue metrics")
		return
	}

	response.Success(w, http.StatusOK, "Queue metrics retrieved successfully", metrics)
}

func (h *QueueHandler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.queueUsecase.GetDepartments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *QueueHandler) GetCatalogTests(w http.ResponseWriter, r *http.Request) {
	var departmentType *entity.DepartmentType
	if raw := r.URL.Query().Get("department_type"); raw != "" {
		value := entity.DepartmentType(raw)
		departmentType = &value
	}

	tests, err := h.queueUsecase.GetCatalogTests(r.Context(), departmentType)
	if err != nil {
		response.InternalServerError(w, "Failed to get catalog tests")
		return
	}

	response.Success(w, http.StatusOK, "Catalog tests retrieved successfully", tests)
}

func (h *QueueHandler) GetCatalogTest(w http.ResponseWriter, r *http.Request) {
	code := entity.TestCode(mux.Vars(r)["code"])

	test, err := h.queueUsecase.GetCatalogTest(r.Context(), code)
	if err != nil {
		switch err {
		case usecase.ErrCatalogTestNotFound:
			response.NotFound(w, "Catalog test not found")
		default:
			response.InternalServerError(w, "Failed to get catalog test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Catalog test retrieved successfully", test)
}

func (h *QueueHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	departmentID := parseUintQuery(r, "department_id")
	availableOnly := r.URL.Query().Get("available") == "true"

	rooms, err := h.queueUsecase.GetRooms(r.Context(), departmentID, availableOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to get rooms")
		return
	}

	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *QueueHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUintVar(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	test, err := h.queueUsecase.GetTest(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientTestNotFound:
			response.NotFound(w, "Patient test not found")
		default:
			response.InternalServerError(w, "Failed to get patient test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient test retrieved successfully", test)
}

func (h *QueueHandler) UpdateTestStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUintVar(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	var req dto.UpdateTestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.queueUsecase.UpdateTestStatus(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientTestNotFound:
			response.NotFound(w, "Patient test not found")
		case usecase.ErrInvalidTransition:
			response.UnprocessableEntity(w, "Status transition is not allowed")
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrRoomNotAvailable:
			response.Conflict(w, "Room is not available")
		default:
			response.InternalServerError(w, "Failed to update test status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test status updated successfully", test)
}

func (h *QueueHandler) AssignRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUintVar(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	var req dto.AssignRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.queueUsecase.AssignRoom(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientTestNotFound:
			response.NotFound(w, "Patient test not found")
		case usecase.ErrInvalidTransition:
			response.UnprocessableEntity(w, "Test is no longer active")
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrRoomNotAvailable:
			response.Conflict(w, "Room is not available")
		case usecase.ErrRoomWrongDepartment:
			response.Conflict(w, "Room belongs to a different department")
		default:
			response.InternalServerError(w, "Failed to assign room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room assigned successfully", test)
}
