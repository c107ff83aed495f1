package domain

import "time"

// ApplicationStatus represents lifecycle states for an application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusReviewing ApplicationStatus = "REVIEWING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

// Application links a candidate to a job posting.
type Application struct {
	ID          int64
	JobID       int64
	CandidateID int64
	CoverLetter string
	CVPath      string
	Status      ApplicationStatus
	AppliedAt   time.Time
	UpdatedAt   time.Time
}
