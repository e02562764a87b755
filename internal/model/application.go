package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application status values
const (
	// ApplicationStatusApplied is the status every application is created with
	ApplicationStatusApplied = "applied"
	// ApplicationStatusInterview indicates the company invited the applicant to interview
	ApplicationStatusInterview = "interview"
	// ApplicationStatusOffer indicates the applicant received an offer
	ApplicationStatusOffer = "offer"
	// ApplicationStatusRejected indicates the application has been rejected
	ApplicationStatusRejected = "rejected"
)

var (
	// ErrUnknownStatus is returned when a status is not one of the known values.
	ErrUnknownStatus = errors.New("unknown application status")
	// ErrInvalidTransition is returned when a status change is not allowed from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// applicationTransitions lists the statuses reachable from each status.
// offer and rejected are terminal.
var applicationTransitions = map[string][]string{
	ApplicationStatusApplied:   {ApplicationStatusInterview, ApplicationStatusRejected},
	ApplicationStatusInterview: {ApplicationStatusOffer, ApplicationStatusRejected},
	ApplicationStatusOffer:     {},
	ApplicationStatusRejected:  {},
}

// Application represents a job application record
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	JobID       string    `gorm:"type:text;not null;index" json:"job_id"`
	ResumeURL   string    `gorm:"type:text;not null" json:"resume_url"`
	CoverLetter *string   `gorm:"type:text" json:"cover_letter"`
	Status      string    `gorm:"type:text;not null;default:'applied'" json:"status"`
	AppliedAt   time.Time `gorm:"type:timestamptz;not null;index" json:"applied_at"`
}

// BeforeCreate assigns the primary key so the inserted row can be returned without a reload.
func (a *Application) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsKnownApplicationStatus reports whether status is one of the application statuses.
func IsKnownApplicationStatus(status string) bool {
	_, ok := applicationTransitions[status]
	return ok
}

// TransitionTo moves the application to next if the status machine allows it.
func (a *Application) TransitionTo(next string) error {
	if !IsKnownApplicationStatus(next) {
		return fmt.Errorf("%w: %s", ErrUnknownStatus, next)
	}
	for _, allowed := range applicationTransitions[a.Status] {
		if allowed == next {
			a.Status = next
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, next)
}
