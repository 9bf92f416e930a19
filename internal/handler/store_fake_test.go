package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/config"
	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// fakeStore mirrors the repository semantics in memory so the handlers can be
// exercised through httptest without a database.
type fakeStore struct {
	users        map[string]*domain.User
	shifts       map[string]*domain.Shift
	applications map[string]*domain.Application

	getAllUsersCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[string]*domain.User{},
		shifts:       map[string]*domain.Shift{},
		applications: map[string]*domain.Application{},
	}
}

func (f *fakeStore) addUser(name, email string) *domain.User {
	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeStore) addShift(title string, status domain.ShiftStatus) *domain.Shift {
	shift := &domain.Shift{
		ID:              uuid.New().String(),
		Title:           title,
		FacilityName:    "City General Hospital",
		StartsAt:        time.Now().Add(24 * time.Hour),
		EndsAt:          time.Now().Add(36 * time.Hour),
		HourlyRateCents: 8500,
		Status:          status,
		CreatedAt:       time.Now(),
	}
	f.shifts[shift.ID] = shift
	return shift
}

func (f *fakeStore) addApplication(shiftID, userID string, status domain.ApplicationStatus) *domain.Application {
	application := &domain.Application{
		ID:        uuid.New().String(),
		ShiftID:   shiftID,
		UserID:    userID,
		Status:    status,
		CreatedAt: time.Now(),
	}
	f.applications[application.ID] = application
	return application
}

func (f *fakeStore) GetAllUsers() ([]*domain.User, error) {
	f.getAllUsersCalls++

	users := make([]*domain.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

func (f *fakeStore) GetUserByID(id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (f *fakeStore) GetUserByEmail(email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) CreateShift(shift *domain.Shift) error {
	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}
	shift.CreatedAt = time.Now()
	f.shifts[shift.ID] = shift
	return nil
}

func (f *fakeStore) GetAllShifts(status string, viewerUserID string) ([]*domain.Shift, error) {
	shifts := make([]*domain.Shift, 0)
	for _, shift := range f.shifts {
		if status != "" && string(shift.Status) != status {
			continue
		}

		listed := *shift
		if viewerUserID != "" {
			applied := false
			for _, application := range f.applications {
				if application.ShiftID == shift.ID && application.UserID == viewerUserID {
					applied = true
					break
				}
			}
			listed.UserHasApplied = &applied
		}
		shifts = append(shifts, &listed)
	}
	sort.Slice(shifts, func(i, j int) bool { return shifts[i].StartsAt.Before(shifts[j].StartsAt) })
	return shifts, nil
}

func (f *fakeStore) GetShiftByID(id string, viewerUserID string) (*domain.Shift, error) {
	shift, ok := f.shifts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	projected := *shift
	applications := make([]domain.ShiftApplication, 0)

	if shift.HiredProviderID != nil {
		if provider, ok := f.users[*shift.HiredProviderID]; ok {
			projected.HiredProvider = &domain.Applicant{ID: provider.ID, Name: provider.Name, Email: provider.Email}
		}
	}

	for _, application := range f.applications {
		if application.ShiftID != id {
			continue
		}
		if viewerUserID == "" {
			applicant := f.users[application.UserID]
			applications = append(applications, domain.ShiftApplication{
				ID:     application.ID,
				Status: application.Status,
				User:   &domain.Applicant{ID: applicant.ID, Name: applicant.Name, Email: applicant.Email},
			})
		} else if application.UserID == viewerUserID {
			applications = append(applications, domain.ShiftApplication{
				ID:     application.ID,
				Status: application.Status,
			})
		}
	}

	projected.Applications = &applications

	if viewerUserID != "" {
		applied := len(applications) > 0
		projected.UserHasApplied = &applied
	}

	return &projected, nil
}

func (f *fakeStore) HireProvider(applicationID string, shiftID string) (*domain.Shift, *domain.Application, error) {
	application, ok := f.applications[applicationID]
	if !ok {
		return nil, nil, sql.ErrNoRows
	}
	if application.ShiftID != shiftID {
		return nil, nil, domain.ErrApplicationShiftMismatch
	}

	shift, ok := f.shifts[shiftID]
	if !ok {
		return nil, nil, sql.ErrNoRows
	}
	if shift.Status == domain.ShiftStatusHired {
		return nil, nil, domain.ErrShiftAlreadyFilled
	}

	shift.Status = domain.ShiftStatusHired
	shift.HiredProviderID = &application.UserID
	application.Status = domain.ApplicationStatusHired

	return shift, application, nil
}

func (f *fakeStore) CreateApplication(application *domain.Application) error {
	for _, existing := range f.applications {
		if existing.ShiftID == application.ShiftID && existing.UserID == application.UserID {
			return domain.ErrAlreadyApplied
		}
	}

	shift, ok := f.shifts[application.ShiftID]
	if !ok {
		return sql.ErrNoRows
	}
	if shift.Status != domain.ShiftStatusOpen {
		return domain.ErrShiftNotAcceptingApplications
	}

	if application.ID == "" {
		application.ID = uuid.New().String()
	}
	application.Status = domain.ApplicationStatusApplied
	application.CreatedAt = time.Now()
	application.Shift = shift

	f.applications[application.ID] = application
	return nil
}

func (f *fakeStore) GetApplicationsByUserID(userID string) ([]*domain.Application, error) {
	applications := make([]*domain.Application, 0)
	for _, application := range f.applications {
		if application.UserID != userID {
			continue
		}
		listed := *application
		listed.Shift = f.shifts[application.ShiftID]
		applications = append(applications, &listed)
	}
	sort.Slice(applications, func(i, j int) bool {
		return applications[i].CreatedAt.After(applications[j].CreatedAt)
	})
	return applications, nil
}

func (f *fakeStore) UpdateApplicationStatus(id string, status domain.ApplicationStatus) (*domain.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	application.Status = status
	application.Shift = f.shifts[application.ShiftID]
	return application, nil
}

func (f *fakeStore) DeleteApplication(id string) error {
	if _, ok := f.applications[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.applications, id)
	return nil
}

type fakeMailPublisher struct {
	published []domain.MailMessage
}

func (f *fakeMailPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	message := domain.MailMessage{}
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		return err
	}
	f.published = append(f.published, message)
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Environment = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 3600
	cfg.RabbitMQ.PublishTimeout = 1
	cfg.Redis.OperationTimeout = 1
	cfg.Redis.UserCacheTTL = 60
	return cfg
}

func newTestHandler(t *testing.T, store *fakeStore, rdb *redis.Client) (*Handler, *fakeMailPublisher) {
	t.Helper()

	mailPub := &fakeMailPublisher{}
	h, err := NewHandler(testConfig(), store, mailPub, rdb)
	require.NoError(t, err)
	h.RegisterRoutes()
	return h, mailPub
}

type testResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, h *Handler, method, target string, body any) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h.Mux.ServeHTTP(rr, req)

	resp := testResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return rr, resp
}

func unmarshalData(t *testing.T, resp testResponse, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

var _ Store = (*fakeStore)(nil)
