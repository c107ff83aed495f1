package dto

import "time"

// JobRequest payload for creating or updating a job posting.
type JobRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	SalaryMin   *int64     `json:"salary_min"`
	SalaryMax   *int64     `json:"salary_max"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
}

// JobResponse is the serialized job posting.
type JobResponse struct {
	ID          int64      `json:"id"`
	EmployerID  int64      `json:"employer_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	SalaryMin   *int64     `json:"salary_min,omitempty"`
	SalaryMax   *int64     `json:"salary_max,omitempty"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
