package dto

import "time"

// ApplyRequest payload for submitting an application.
type ApplyRequest struct {
	JobID       int64  `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
	CVPath      string `json:"cv_path"`
}

// ApplicationStatusRequest payload for employer status updates.
type ApplicationStatusRequest struct {
	Status string `json:"status"`
}

// ApplicationResponse is the serialized application.
type ApplicationResponse struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	CVPath      string    `json:"cv_path,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}
