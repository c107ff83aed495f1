package dto

import "time"

// ProfileRequest payload for updating a candidate profile.
type ProfileRequest struct {
	BirthDate  *time.Time `json:"birth_date"`
	Address    string     `json:"address"`
	Gender     string     `json:"gender"`
	Education  string     `json:"education"`
	Skills     string     `json:"skills"`
	Experience string     `json:"experience"`
	Summary    string     `json:"summary"`
}

// ProfileResponse is the serialized candidate profile.
type ProfileResponse struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	Address    string     `json:"address,omitempty"`
	Gender     string     `json:"gender,omitempty"`
	Education  string     `json:"education,omitempty"`
	Skills     string     `json:"skills,omitempty"`
	Experience string     `json:"experience,omitempty"`
	CVPath     string     `json:"cv_path,omitempty"`
	Summary    string     `json:"summary,omitempty"`
}
