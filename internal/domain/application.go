package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "APPLIED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusHired     ApplicationStatus = "HIRED"
)

type Application struct {
	ID        string            `json:"id"`
	ShiftID   string            `json:"shiftId"`
	UserID    string            `json:"userId"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`

	Shift *Shift `json:"shift,omitempty"`
}
