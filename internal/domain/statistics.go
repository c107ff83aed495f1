package domain

// RecruitmentStats aggregates hiring activity for one employer.
type RecruitmentStats struct {
	EmployerID        int64                       `json:"employer_id"`
	TotalJobs         int64                       `json:"total_jobs"`
	OpenJobs          int64                       `json:"open_jobs"`
	TotalApplications int64                       `json:"total_applications"`
	ByStatus          map[ApplicationStatus]int64 `json:"by_status"`
	InterviewsPlanned int64                       `json:"interviews_planned"`
}
