package dto

import "time"

// ScheduleInterviewRequest payload for scheduling an interview.
type ScheduleInterviewRequest struct {
	ApplicationID int64     `json:"application_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Location      string    `json:"location"`
	Note          string    `json:"note"`
}

// InterviewStatusRequest payload for completing or cancelling an interview.
type InterviewStatusRequest struct {
	Status string `json:"status"`
}

// InterviewResponse is the serialized interview.
type InterviewResponse struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Location      string    `json:"location"`
	Note          string    `json:"note,omitempty"`
	Status        string    `json:"status"`
}
