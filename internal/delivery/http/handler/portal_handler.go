package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-qms/internal/delivery/dto"
	"healthcare-qms/internal/usecase"
	"healthcare-qms/pkg/response"
	"healthcare-qms/pkg/validator"
)

// PortalHandler serves the public patient portal. Every request carries
// the patient's unique id and date of birth in the body; there is no token.
type PortalHandler struct {
	portalUsecase usecase.PortalUsecase
	validator     *validator.CustomValidator
}

func NewPortalHandler(portalUsecase usecase.PortalUsecase, validator *validator.CustomValidator) *PortalHandler {
	return &PortalHandler{
		portalUsecase: portalUsecase,
		validator:     validator,
	}
}

func (h *PortalHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	var req dto.PortalAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	summary, err := h.portalUsecase.GetSummary(r.Context(), &req)
	if err != nil {
		h.writePortalError(w, err, "Failed to get patient summary")
		return
	}

	response.Success(w, http.StatusOK, "Patient summary retrieved successfully", summary)
}

func (h *PortalHandler) GetNextAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.PortalAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	next, err := h.portalUsecase.GetNextAppointment(r.Context(), &req)
	if err != nil {
		h.writePortalError(w, err, "Failed to get next appointment")
		return
	}

	response.Success(w, http.StatusOK, "Next appointment retrieved successfully", next)
}

func (h *PortalHandler) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.PortalScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.portalUsecase.ScheduleAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrRoomNotAvailable:
			response.Conflict(w, "Room is not available")
		default:
			h.writePortalError(w, err, "Failed to schedule appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", appointment)
}

func (h *PortalHandler) writePortalError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrPortalVerification:
		response.NotFound(w, "Patient not found or date of birth does not match")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Invalid date of birth, use YYYY-MM-DD")
	default:
		response.InternalServerError(w, fallback)
	}
}
