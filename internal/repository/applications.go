package repository

import (
	"context"
	"errors"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueShiftUserConstraint must match the constraint name in
// migrations/00001_init.sql; the duplicate-apply race path depends on it.
const uniqueShiftUserConstraint = "applications_shift_id_user_id_key"

// CreateApplication inserts an APPLIED application for app.UserID on
// app.ShiftID and joins the parent shift onto the result. The pre-checks give
// friendly errors; the (shift_id, user_id) unique constraint is what actually
// serializes racing duplicates.
func (r *Repository) CreateApplication(application *domain.Application) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM applications WHERE shift_id = $1 AND user_id = $2)
	`
	alreadyApplied := false
	if err := r.dbpool.QueryRowContext(ctx, query, application.ShiftID, application.UserID).Scan(&alreadyApplied); err != nil {
		return err
	}
	if alreadyApplied {
		// any status counts, a WITHDRAWN application still blocks reapplying
		return domain.ErrAlreadyApplied
	}

	shift := &domain.Shift{
		ID: application.ShiftID,
	}

	query = `
		SELECT title, description, facility_name, location, starts_at, ends_at, hourly_rate_cents, status, hired_provider_id, created_at
		FROM shifts WHERE id = $1
	`
	dst := []any{
		&shift.Title,
		&shift.Description,
		&shift.FacilityName,
		&shift.Location,
		&shift.StartsAt,
		&shift.EndsAt,
		&shift.HourlyRateCents,
		&shift.Status,
		&shift.HiredProviderID,
		&shift.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, application.ShiftID).Scan(dst...); err != nil {
		return err
	}

	if shift.Status != domain.ShiftStatusOpen {
		return domain.ErrShiftNotAcceptingApplications
	}

	if application.ID == "" {
		application.ID = uuid.New().String()
	}
	application.Status = domain.ApplicationStatusApplied

	query = `
		INSERT INTO applications (id, shift_id, user_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	args := []any{application.ID, application.ShiftID, application.UserID, application.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&application.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == uniqueShiftUserConstraint {
			return domain.ErrAlreadyApplied
		}
		return err
	}

	application.Shift = shift

	return nil
}

func (r *Repository) GetApplicationsByUserID(userID string) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			a.id, a.shift_id, a.user_id, a.status, a.created_at,
			s.title, s.description, s.facility_name, s.location, s.starts_at, s.ends_at, s.hourly_rate_cents, s.status, s.hired_provider_id, s.created_at
		FROM applications a
		JOIN shifts s ON s.id = a.shift_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]*domain.Application, 0)
	for rows.Next() {
		application := &domain.Application{}
		shift := &domain.Shift{}
		dst := []any{
			&application.ID,
			&application.ShiftID,
			&application.UserID,
			&application.Status,
			&application.CreatedAt,
			&shift.Title,
			&shift.Description,
			&shift.FacilityName,
			&shift.Location,
			&shift.StartsAt,
			&shift.EndsAt,
			&shift.HourlyRateCents,
			&shift.Status,
			&shift.HiredProviderID,
			&shift.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shift.ID = application.ShiftID
		application.Shift = shift
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// UpdateApplicationStatus overwrites the status unconditionally. There is no
// transition table: any of the four statuses may replace any other.
func (r *Repository) UpdateApplicationStatus(id string, status domain.ApplicationStatus) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	application := &domain.Application{
		ID:     id,
		Status: status,
	}

	query := `
		UPDATE applications SET status = $1 WHERE id = $2
		RETURNING shift_id, user_id, created_at
	`
	dst := []any{&application.ShiftID, &application.UserID, &application.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, status, id).Scan(dst...); err != nil {
		return nil, err
	}

	shift := &domain.Shift{
		ID: application.ShiftID,
	}

	query = `
		SELECT title, description, facility_name, location, starts_at, ends_at, hourly_rate_cents, status, hired_provider_id, created_at
		FROM shifts WHERE id = $1
	`
	dst = []any{
		&shift.Title,
		&shift.Description,
		&shift.FacilityName,
		&shift.Location,
		&shift.StartsAt,
		&shift.EndsAt,
		&shift.HourlyRateCents,
		&shift.Status,
		&shift.HiredProviderID,
		&shift.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, application.ShiftID).Scan(dst...); err != nil {
		return nil, err
	}

	application.Shift = shift

	return application, nil
}

// DeleteApplication hard-deletes the row. This coexists with the WITHDRAWN
// status path: a withdrawn application is still listable, a deleted one is
// gone from history.
func (r *Repository) DeleteApplication(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM applications WHERE id = $1
		RETURNING id
	`

	deleted := ""
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&deleted); err != nil {
		return err
	}

	return nil
}
