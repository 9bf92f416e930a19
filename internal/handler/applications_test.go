package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApplication(t *testing.T) {
	t.Run("applies to an open shift", func(t *testing.T) {
		store := newFakeStore()
		h, mailPub := newTestHandler(t, store, nil)

		shift := store.addShift("Night Shift - Emergency Department", domain.ShiftStatusOpen)
		sarah := store.addUser("Dr. Sarah Johnson", "sarah.johnson@example.com")

		rr, resp := doRequest(t, h, http.MethodPost, "/api/applications", map[string]any{
			"userId":  sarah.ID,
			"shiftId": shift.ID,
		})

		require.Equal(t, http.StatusCreated, rr.Code)

		application := &domain.Application{}
		unmarshalData(t, resp, application)
		assert.NotEmpty(t, application.ID)
		assert.Equal(t, domain.ApplicationStatusApplied, application.Status)
		require.NotNil(t, application.Shift)
		assert.Equal(t, shift.Title, application.Shift.Title)

		require.Len(t, mailPub.published, 1)
		assert.Equal(t, "application_received", mailPub.published[0].Type)
		assert.Equal(t, sarah.Email, mailPub.published[0].To)
	})

	t.Run("duplicate application conflicts", func(t *testing.T) {
		store := newFakeStore()
		h, _ := newTestHandler(t, store, nil)

		shift := store.addShift("Night Shift - Emergency Department", domain.ShiftStatusOpen)
		sarah := store.addUser("Dr. Sarah Johnson", "sarah.johnson@example.com")
		store.addApplication(shift.ID, sarah.ID, domain.ApplicationStatusApplied)

		rr, resp := doRequest(t, h, http.MethodPost, "/api/applications", map[string]any{
			"userId":  sarah.ID,
			"shiftId": shift.ID,
		})

		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "you have already applied to this shift", resp.Message)
	})

	t.Run("withdrawn application still blocks reapplying", func(t *testing.T) {
		store := newFakeStore()
		h, _ := newTestHandler(t, store, nil)

		shift := store.addShift("Night Shift - Emergency Department", domain.ShiftStatusOpen)
		sarah := store.addUser("Dr. Sarah Johnson", "sarah.johnson@example.com")
		store.addApplication(shift.ID, sarah.ID, domain.ApplicationStatusWithdrawn)

		rr, _ := doRequest(t, h, http.MethodPost, "/api/applications", map[string]any{
			"userId":  sarah.ID,
			"shiftId": shift.ID,
		})

		require.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("filled shift no longer accepts applications", func(t *testing.T) {
		store := newFakeStore()
		h, _ := newTestHandler(t, store, nil)

		shift := store.addShift("Day Shift - ICU", domain.ShiftStatusHired)
		sarah := store.addUser("Dr. Sarah Johnson", "sarah.johnson@example.com")

		rr, resp := doRequest(t, h, http.MethodPost, "/api/applications", map[string]any{
			"userId":  sarah.ID,
			"shiftId": shift.ID,
		})

		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "this shift is no longer accepting applications", resp.Message)
	})

	t.Run("unknown shift", func(t *testing.T) {
		store := newFakeStore()
		h, _ := newTestHandler(t, store, nil)
		sarah := store.addUser("Dr. Sarah Johnson", "sarah.johnson@example.com")

		rr, resp := doRequest(t, h, http.MethodPost, "/api/applications", map[string]any{
			"userId":  sarah.ID,
			"shiftId": "does-not-exist",
		})

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "shift not found", resp.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		store := newFakeStore()
		h, _ := newTestHandler(t, store, nil)

		rr, _ := doRequest(t, h, http.MethodPost, "/api/applications", map[string]any{
			"userId": "some-user",
		})

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetApplicationsByUser(t *testing.T) {
	store := newFakeStore()
	h, _ := newTestHandler(t, store, nil)

	sarah := store.addUser("Dr. Sarah Johnson", "sarah.johnson@example.com")
	mike := store.addUser("Nurse Mike Chen", "mike.chen@example.com")
	er := store.addShift("Night Shift - Emergency Department", domain.ShiftStatusOpen)
	peds := store.addShift("Evening Shift - Pediatrics", domain.ShiftStatusOpen)

	older := store.addApplication(er.ID, sarah.ID, domain.ApplicationStatusApplied)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := store.addApplication(peds.ID, sarah.ID, domain.ApplicationStatusApplied)
	store.addApplication(er.ID, mike.ID, domain.ApplicationStatusApplied)

	t.Run("lists the user's applications newest first", func(t *testing.T) {
		rr, resp := doRequest(t, h, http.MethodGet, "/api/applications?userId="+sarah.ID, nil)

		require.Equal(t, http.StatusOK, rr.Code)

		applications := []*domain.Application{}
		unmarshalData(t, resp, &applications)
		require.Len(t, applications, 2)
		assert.Equal(t, newer.ID, applications[0].ID)
		assert.Equal(t, older.ID, applications[1].ID)
		for _, application := range applications {
			require.NotNil(t, application.Shift)
		}
	})

	t.Run("requires the userId parameter", func(t *testing.T) {
		rr, resp := doRequest(t, h, http.MethodGet, "/api/applications", nil)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "userId query parameter is required", resp.Message)
	})

	t.Run("unknown user gets an empty list", func(t *testing.T) {
		rr, resp := doRequest(t, h, http.MethodGet, "/api/applications?userId=nobody", nil)

		require.Equal(t, http.StatusOK, rr.Code)

		applications := []*domain.Application{}
		unmarshalData(t, resp, &applications)
		assert.Empty(t, applications)
	})
}

func TestUpdateApplication(t *testing.T) {
	store := newFakeStore()
	h, _ := newTestHandler(t, store, nil)

	sarah := store.addUser("Dr. Sarah Johnson", "sarah.johnson@example.com")
	shift := store.addShift("Night Shift - Emergency Department", domain.ShiftStatusOpen)
	application := store.addApplication(shift.ID, sarah.ID, domain.ApplicationStatusApplied)

	t.Run("withdraws an application", func(t *testing.T) {
		rr, resp := doRequest(t, h, http.MethodPatch, "/api/applications/"+application.ID, map[string]any{
			"status": "WITHDRAWN",
		})

		require.Equal(t, http.StatusOK, rr.Code)

		got := &domain.Application{}
		unmarshalData(t, resp, got)
		assert.Equal(t, domain.ApplicationStatusWithdrawn, got.Status)
		require.NotNil(t, got.Shift)
	})

	t.Run("any status may replace any other", func(t *testing.T) {
		rr, resp := doRequest(t, h, http.MethodPatch, "/api/applications/"+application.ID, map[string]any{
			"status": "APPLIED",
		})

		require.Equal(t, http.StatusOK, rr.Code)

		got := &domain.Application{}
		unmarshalData(t, resp, got)
		assert.Equal(t, domain.ApplicationStatusApplied, got.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		rr, _ := doRequest(t, h, http.MethodPatch, "/api/applications/"+application.ID, map[string]any{
			"status": "PENDING",
		})

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown application", func(t *testing.T) {
		rr, resp := doRequest(t, h, http.MethodPatch, "/api/applications/does-not-exist", map[string]any{
			"status": "WITHDRAWN",
		})

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application not found", resp.Message)
	})
}

func TestDeleteApplication(t *testing.T) {
	store := newFakeStore()
	h, _ := newTestHandler(t, store, nil)

	sarah := store.addUser("Dr. Sarah Johnson", "sarah.johnson@example.com")
	shift := store.addShift("Night Shift - Emergency Department", domain.ShiftStatusOpen)
	application := store.addApplication(shift.ID, sarah.ID, domain.ApplicationStatusApplied)

	t.Run("deletes and removes from history", func(t *testing.T) {
		rr, resp := doRequest(t, h, http.MethodDelete, "/api/applications/"+application.ID, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Application deleted successfully", resp.Message)

		_, listResp := doRequest(t, h, http.MethodGet, "/api/applications?userId="+sarah.ID, nil)
		applications := []*domain.Application{}
		unmarshalData(t, listResp, &applications)
		assert.Empty(t, applications)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		rr, _ := doRequest(t, h, http.MethodDelete, "/api/applications/"+application.ID, nil)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-uuid-shaped id is not found, not an internal error", func(t *testing.T) {
		rr, resp := doRequest(t, h, http.MethodDelete, "/api/applications/abc", nil)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application not found", resp.Message)
	})
}
