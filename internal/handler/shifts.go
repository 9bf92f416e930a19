package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	shifts, err := h.store.GetAllShifts(status, h.viewerUserID(r))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shifts retrieved", shifts)
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title           string    `json:"title" validate:"required"`
		Description     *string   `json:"description"`
		FacilityName    string    `json:"facilityName" validate:"required"`
		Location        *string   `json:"location"`
		StartsAt        time.Time `json:"startsAt" validate:"required"`
		EndsAt          time.Time `json:"endsAt" validate:"required"`
		HourlyRateCents int64     `json:"hourlyRateCents" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// status is forced OPEN no matter what the caller sent. endsAt may fall
	// past local midnight, so no startsAt < endsAt check.
	shift := &domain.Shift{
		Title:           req.Title,
		Description:     req.Description,
		FacilityName:    req.FacilityName,
		Location:        req.Location,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		HourlyRateCents: req.HourlyRateCents,
		Status:          domain.ShiftStatusOpen,
	}

	if err := h.store.CreateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "shift created", shift)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	shift, err := h.store.GetShiftByID(id, h.viewerUserID(r))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift retrieved", shift)
}

func (h *Handler) HireProvider(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ApplicationID string `json:"applicationId" validate:"required"`
		ShiftID       string `json:"shiftId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift, application, err := h.store.HireProvider(req.ApplicationID, req.ShiftID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "application not found")
		case errors.Is(err, domain.ErrApplicationShiftMismatch),
			errors.Is(err, domain.ErrShiftAlreadyFilled):
			h.conflict(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if provider, err := h.store.GetUserByID(application.UserID); err == nil {
		h.publishMailMessage(domain.MailMessage{
			Type: "provider_hired",
			To:   provider.Email,
			Data: domain.ProviderHiredMailData{
				Name:         provider.Name,
				ShiftTitle:   shift.Title,
				FacilityName: shift.FacilityName,
				StartsAt:     shift.StartsAt.Format(time.RFC1123),
			},
		})
	} else {
		h.logInternalServerError(r, err)
	}

	h.successResponse(w, r, "Provider hired successfully", struct {
		Shift       *domain.Shift       `json:"shift"`
		Application *domain.Application `json:"application"`
	}{
		Shift:       shift,
		Application: application,
	})
}
