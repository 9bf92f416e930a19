package domain

import "time"

type ShiftStatus string

const (
	ShiftStatusOpen      ShiftStatus = "OPEN"
	ShiftStatusHired     ShiftStatus = "HIRED"
	ShiftStatusCancelled ShiftStatus = "CANCELLED"
)

// Applicant is the reduced user payload embedded in shift responses.
type Applicant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ShiftApplication is an application row as seen from its shift. User is only
// populated in the facility view; the provider self-view carries id and status.
type ShiftApplication struct {
	ID     string            `json:"id"`
	Status ApplicationStatus `json:"status"`
	User   *Applicant        `json:"user,omitempty"`
}

type Shift struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     *string     `json:"description"`
	FacilityName    string      `json:"facilityName"`
	Location        *string     `json:"location"`
	StartsAt        time.Time   `json:"startsAt"`
	EndsAt          time.Time   `json:"endsAt"`
	HourlyRateCents int64       `json:"hourlyRateCents"`
	Status          ShiftStatus `json:"status"`
	HiredProviderID *string     `json:"hiredProviderId"`
	CreatedAt       time.Time   `json:"createdAt"`

	// Applications is nil outside the detail projection so the key stays off
	// list payloads; the detail view always carries the array, even empty.
	HiredProvider  *Applicant          `json:"hiredProvider,omitempty"`
	Applications   *[]ShiftApplication `json:"applications,omitempty"`
	UserHasApplied *bool               `json:"userHasApplied,omitempty"`
}
