package domain

import "time"

// Employer is the company profile owned by an EMPLOYER account.
type Employer struct {
	ID          int64
	UserID      int64
	CompanyName string
	Website     string
	Address     string
	LogoPath    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
