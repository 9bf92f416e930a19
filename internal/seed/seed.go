package seed

import (
	"log/slog"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/carelink-dev/shift-market/backend/internal/repository"
)

func strPtr(s string) *string {
	return &s
}

// SeedDemoData loads the demo dataset: four providers, six shifts across
// bay area facilities and three applications. Matches what the frontend
// demo expects.
func SeedDemoData(repo *repository.Repository) {
	users := []*domain.User{
		{Name: "Dr. Sarah Johnson", Email: "sarah.johnson@example.com"},
		{Name: "Nurse Mike Chen", Email: "mike.chen@example.com"},
		{Name: "Dr. Emily Rodriguez", Email: "emily.rodriguez@example.com"},
		{Name: "Nurse James Wilson", Email: "james.wilson@example.com"},
	}

	for _, user := range users {
		if err := repo.CreateUser(user); err != nil {
			slog.Error("unable to insert user", slog.String("email", user.Email), slog.String("error", err.Error()))
			return
		}
	}
	slog.Info("inserted users", slog.Int("count", len(users)))

	tomorrow := time.Now().AddDate(0, 0, 1).Truncate(time.Hour)
	nextWeek := time.Now().AddDate(0, 0, 7).Truncate(time.Hour)

	shifts := []*domain.Shift{
		{
			Title:           "Night Shift - Emergency Department",
			Description:     strPtr("Overnight coverage for a busy ER. ACLS certification required."),
			FacilityName:    "City General Hospital",
			Location:        strPtr("San Francisco, CA"),
			StartsAt:        tomorrow.Add(19 * time.Hour),
			EndsAt:          tomorrow.Add(31 * time.Hour),
			HourlyRateCents: 8500,
			Status:          domain.ShiftStatusOpen,
		},
		{
			Title:           "Day Shift - ICU",
			Description:     strPtr("Critical care unit day coverage. Two years ICU experience preferred."),
			FacilityName:    "Metro Medical Center",
			Location:        strPtr("Oakland, CA"),
			StartsAt:        tomorrow.Add(7 * time.Hour),
			EndsAt:          tomorrow.Add(19 * time.Hour),
			HourlyRateCents: 9500,
			Status:          domain.ShiftStatusOpen,
		},
		{
			Title:           "Evening Shift - Pediatrics",
			Description:     strPtr("Pediatric ward evening shift. PALS certification required."),
			FacilityName:    "Children's Hospital",
			Location:        strPtr("Palo Alto, CA"),
			StartsAt:        tomorrow.Add(15 * time.Hour),
			EndsAt:          tomorrow.Add(23 * time.Hour),
			HourlyRateCents: 7500,
			Status:          domain.ShiftStatusOpen,
		},
		{
			Title:           "Weekend Shift - Surgery",
			Description:     strPtr("Weekend surgical team coverage. OR experience required."),
			FacilityName:    "Bay Area Surgical Center",
			Location:        strPtr("San Jose, CA"),
			StartsAt:        nextWeek.Add(8 * time.Hour),
			EndsAt:          nextWeek.Add(20 * time.Hour),
			HourlyRateCents: 12000,
			Status:          domain.ShiftStatusOpen,
		},
		{
			Title:           "Night Shift - Med/Surg",
			Description:     strPtr("General medical-surgical floor, overnight."),
			FacilityName:    "Community Hospital",
			Location:        strPtr("Berkeley, CA"),
			StartsAt:        nextWeek.Add(19 * time.Hour),
			EndsAt:          nextWeek.Add(31 * time.Hour),
			HourlyRateCents: 7000,
			Status:          domain.ShiftStatusOpen,
		},
		{
			Title:           "Day Shift - Cardiology",
			Description:     strPtr("Cardiac telemetry unit day shift."),
			FacilityName:    "Heart & Vascular Institute",
			Location:        strPtr("Sacramento, CA"),
			StartsAt:        nextWeek.Add(7 * time.Hour),
			EndsAt:          nextWeek.Add(19 * time.Hour),
			HourlyRateCents: 8800,
			Status:          domain.ShiftStatusOpen,
		},
	}

	for _, shift := range shifts {
		if err := repo.CreateShift(shift); err != nil {
			slog.Error("unable to insert shift", slog.String("title", shift.Title), slog.String("error", err.Error()))
			return
		}
	}
	slog.Info("inserted shifts", slog.Int("count", len(shifts)))

	applications := []*domain.Application{
		{UserID: users[0].ID, ShiftID: shifts[0].ID},
		{UserID: users[1].ID, ShiftID: shifts[0].ID},
		{UserID: users[0].ID, ShiftID: shifts[2].ID},
	}

	for _, application := range applications {
		if err := repo.CreateApplication(application); err != nil {
			slog.Error("unable to insert application", slog.String("error", err.Error()))
			return
		}
	}
	slog.Info("inserted applications", slog.Int("count", len(applications)))
}
