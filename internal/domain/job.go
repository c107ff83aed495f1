package domain

import "time"

// JobStatus represents lifecycle states for a job posting.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

// Job is a posting published by an employer.
type Job struct {
	ID          int64
	EmployerID  int64
	Title       string
	Description string
	Location    string
	SalaryMin   *int64
	SalaryMax   *int64
	Status      JobStatus
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobFilter narrows job listings.
type JobFilter struct {
	Keyword    string
	Location   string
	EmployerID *int64
	Status     *JobStatus
	Limit      int
	Offset     int
}
