package domain

import "time"

// InterviewStatus represents lifecycle states for an interview appointment.
type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "SCHEDULED"
	InterviewStatusCompleted InterviewStatus = "COMPLETED"
	InterviewStatusCancelled InterviewStatus = "CANCELLED"
)

// Interview is an appointment between an employer and an applicant.
type Interview struct {
	ID            int64
	ApplicationID int64
	ScheduledAt   time.Time
	Location      string
	Note          string
	Status        InterviewStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
