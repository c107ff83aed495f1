package dto

// EmployerRequest payload for creating or updating the employer record.
type EmployerRequest struct {
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// EmployerResponse is the serialized employer record.
type EmployerResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website,omitempty"`
	Address     string `json:"address,omitempty"`
	LogoPath    string `json:"logo_path,omitempty"`
	Description string `json:"description,omitempty"`
}
