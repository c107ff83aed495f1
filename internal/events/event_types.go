package events

import (
	"time"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationStatusChanged EventType = "application_status_changed"
	EventInterviewScheduled       EventType = "interview_scheduled"
	EventJobPublished             EventType = "job_published"
)

// Actor identifies the account that triggered an event.
type Actor struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicationID  int64 `json:"application_id"`
	JobID          int64 `json:"job_id"`
	CandidateID    int64 `json:"candidate_id"`
	EmployerUserID int64 `json:"employer_user_id"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	ApplicationID int64                    `json:"application_id"`
	CandidateID   int64                    `json:"candidate_id"`
	OldStatus     domain.ApplicationStatus `json:"old_status"`
	NewStatus     domain.ApplicationStatus `json:"new_status"`
}

// InterviewScheduledPayload payload.
type InterviewScheduledPayload struct {
	InterviewID   int64     `json:"interview_id"`
	ApplicationID int64     `json:"application_id"`
	CandidateID   int64     `json:"candidate_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Location      string    `json:"location"`
}

// JobPublishedPayload payload.
type JobPublishedPayload struct {
	JobID      int64  `json:"job_id"`
	EmployerID int64  `json:"employer_id"`
	Title      string `json:"title"`
}
