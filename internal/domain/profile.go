package domain

import "time"

// CandidateProfile holds a candidate's CV data. An empty profile is created
// automatically when a CANDIDATE account registers.
type CandidateProfile struct {
	ID         int64
	UserID     int64
	BirthDate  *time.Time
	Address    string
	Gender     string
	Education  string
	Skills     string
	Experience string
	CVPath     string
	Summary    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
