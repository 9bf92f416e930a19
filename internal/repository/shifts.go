package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateShift(shift *domain.Shift) error {
	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shifts (id, title, description, facility_name, location, starts_at, ends_at, hourly_rate_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	args := []any{
		shift.ID,
		shift.Title,
		shift.Description,
		shift.FacilityName,
		shift.Location,
		shift.StartsAt,
		shift.EndsAt,
		shift.HourlyRateCents,
		shift.Status,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetAllShifts lists shifts ordered by start time. When viewerUserID is
// non-empty every shift carries the derived userHasApplied flag, computed
// against applications of any status; the application rows themselves are
// never part of the list payload.
func (r *Repository) GetAllShifts(status string, viewerUserID string) ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, title, description, facility_name, location, starts_at, ends_at, hourly_rate_cents, status, hired_provider_id, created_at
		FROM shifts
	`
	args := []any{}

	if viewerUserID != "" {
		query = `
			SELECT s.id, s.title, s.description, s.facility_name, s.location, s.starts_at, s.ends_at, s.hourly_rate_cents, s.status, s.hired_provider_id, s.created_at,
				EXISTS (SELECT 1 FROM applications a WHERE a.shift_id = s.id AND a.user_id = $1) AS user_has_applied
			FROM shifts s
		`
		args = append(args, viewerUserID)
		if status != "" {
			query += ` WHERE s.status = $2`
			args = append(args, status)
		}
		query += ` ORDER BY s.starts_at ASC`
	} else {
		if status != "" {
			query += ` WHERE status = $1`
			args = append(args, status)
		}
		query += ` ORDER BY starts_at ASC`
	}

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift := &domain.Shift{}
		dst := []any{
			&shift.ID,
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
		if viewerUserID != "" {
			var applied bool
			dst = append(dst, &applied)
			if err := rows.Scan(dst...); err != nil {
				return nil, err
			}
			shift.UserHasApplied = &applied
		} else {
			if err := rows.Scan(dst...); err != nil {
				return nil, err
			}
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// GetShiftByID returns a shift with one of two projections. Without a viewer
// it is the facility view: every application joined with its applicant's id,
// name and email. With a viewer it is the provider self-view: only the
// viewer's own application rows, id and status only.
func (r *Repository) GetShiftByID(id string, viewerUserID string) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			s.title, s.description, s.facility_name, s.location, s.starts_at, s.ends_at, s.hourly_rate_cents, s.status, s.hired_provider_id, s.created_at,
			hp.id, hp.name, hp.email,
			a.id, a.status,
			u.id, u.name, u.email
		FROM shifts s
		LEFT JOIN users hp ON hp.id = s.hired_provider_id
		LEFT JOIN applications a ON a.shift_id = s.id
		LEFT JOIN users u ON u.id = a.user_id
		WHERE s.id = $1
		ORDER BY a.created_at ASC
	`
	args := []any{id}

	if viewerUserID != "" {
		query = `
			SELECT
				s.title, s.description, s.facility_name, s.location, s.starts_at, s.ends_at, s.hourly_rate_cents, s.status, s.hired_provider_id, s.created_at,
				hp.id, hp.name, hp.email,
				a.id, a.status,
				NULL, NULL, NULL
			FROM shifts s
			LEFT JOIN users hp ON hp.id = s.hired_provider_id
			LEFT JOIN applications a ON a.shift_id = s.id AND a.user_id = $2
			WHERE s.id = $1
			ORDER BY a.created_at ASC
		`
		args = append(args, viewerUserID)
	}

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shift := &domain.Shift{
		ID: id,
	}
	applications := make([]domain.ShiftApplication, 0)
	found := false

	for rows.Next() {
		var row struct {
			HiredProviderID    sql.NullString
			HiredProviderName  sql.NullString
			HiredProviderEmail sql.NullString

			ApplicationID     sql.NullString
			ApplicationStatus sql.NullString

			ApplicantID    sql.NullString
			ApplicantName  sql.NullString
			ApplicantEmail sql.NullString
		}

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
			&row.HiredProviderID,
			&row.HiredProviderName,
			&row.HiredProviderEmail,
			&row.ApplicationID,
			&row.ApplicationStatus,
			&row.ApplicantID,
			&row.ApplicantName,
			&row.ApplicantEmail,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			found = true
			if row.HiredProviderID.Valid {
				shift.HiredProvider = &domain.Applicant{
					ID:    row.HiredProviderID.String,
					Name:  row.HiredProviderName.String,
					Email: row.HiredProviderEmail.String,
				}
			}
		}

		if !row.ApplicationID.Valid {
			// no applications matched the join for this shift
			continue
		}

		application := domain.ShiftApplication{
			ID:     row.ApplicationID.String,
			Status: domain.ApplicationStatus(row.ApplicationStatus.String),
		}
		if row.ApplicantID.Valid {
			application.User = &domain.Applicant{
				ID:    row.ApplicantID.String,
				Name:  row.ApplicantName.String,
				Email: row.ApplicantEmail.String,
			}
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	shift.Applications = &applications

	if viewerUserID != "" {
		applied := len(applications) > 0
		shift.UserHasApplied = &applied
	}

	return shift, nil
}

// HireProvider promotes one application and its shift to HIRED in a single
// transaction. The shift row is locked first so that concurrent hires on the
// same shift serialize; the loser re-reads HIRED and gets the already-filled
// conflict. Sibling applications are left untouched.
func (r *Repository) HireProvider(applicationID string, shiftID string) (*domain.Shift, *domain.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	application := &domain.Application{
		ID: applicationID,
	}

	query := `
		SELECT shift_id, user_id, status, created_at FROM applications WHERE id = $1
	`
	dst := []any{&application.ShiftID, &application.UserID, &application.Status, &application.CreatedAt}
	if err := tx.QueryRowContext(ctx, query, applicationID).Scan(dst...); err != nil {
		return nil, nil, err
	}

	if application.ShiftID != shiftID {
		return nil, nil, domain.ErrApplicationShiftMismatch
	}

	shift := &domain.Shift{
		ID: shiftID,
	}

	query = `
		SELECT title, description, facility_name, location, starts_at, ends_at, hourly_rate_cents, status, hired_provider_id, created_at
		FROM shifts
		WHERE id = $1
		FOR UPDATE
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
	if err := tx.QueryRowContext(ctx, query, shiftID).Scan(dst...); err != nil {
		return nil, nil, err
	}

	if shift.Status == domain.ShiftStatusHired {
		return nil, nil, domain.ErrShiftAlreadyFilled
	}

	query = `
		UPDATE shifts SET status = $1, hired_provider_id = $2 WHERE id = $3
	`
	if _, err := tx.ExecContext(ctx, query, domain.ShiftStatusHired, application.UserID, shiftID); err != nil {
		return nil, nil, err
	}

	query = `
		UPDATE applications SET status = $1 WHERE id = $2
	`
	if _, err := tx.ExecContext(ctx, query, domain.ApplicationStatusHired, applicationID); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	shift.Status = domain.ShiftStatusHired
	shift.HiredProviderID = &application.UserID
	application.Status = domain.ApplicationStatusHired

	return shift, application, nil
}
