package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetApplicationsByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		h.badRequest(w, r, errors.New("userId query parameter is required"))
		return
	}

	applications, err := h.store.GetApplicationsByUserID(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "applications retrieved", applications)
}

func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string `json:"userId" validate:"required"`
		ShiftID string `json:"shiftId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	application := &domain.Application{
		UserID:  req.UserID,
		ShiftID: req.ShiftID,
	}

	if err := h.store.CreateApplication(application); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "shift not found")
		case errors.Is(err, domain.ErrAlreadyApplied),
			errors.Is(err, domain.ErrShiftNotAcceptingApplications):
			h.conflict(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if applicant, err := h.store.GetUserByID(application.UserID); err == nil {
		h.publishMailMessage(domain.MailMessage{
			Type: "application_received",
			To:   applicant.Email,
			Data: domain.ApplicationReceivedMailData{
				Name:         applicant.Name,
				ShiftTitle:   application.Shift.Title,
				FacilityName: application.Shift.FacilityName,
			},
		})
	} else {
		h.logInternalServerError(r, err)
	}

	h.createdResponse(w, r, "application submitted", application)
}

func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status" validate:"required,oneof=APPLIED WITHDRAWN REJECTED HIRED"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	application, err := h.store.UpdateApplicationStatus(id, domain.ApplicationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "application not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "application updated", application)
}

func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteApplication(id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "application not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Application deleted successfully", nil)
}
