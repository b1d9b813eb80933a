package dto

// CreateCaseRequest body para POST /api/cases (ingreso público de una familia).
type CreateCaseRequest struct {
	ProviderID   string `json:"provider_id"`
	FamilyName   string `json:"family_name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	ServiceType  string `json:"service_type"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateCaseStatusRequest body para PATCH /api/cases/:id/status.
type UpdateCaseStatusRequest struct {
	Status string `json:"status"`
}

// CaseResponse caso en respuestas.
type CaseResponse struct {
	ID           string `json:"id"`
	ProviderID   string `json:"provider_id"`
	FamilyName   string `json:"family_name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	ServiceType  string `json:"service_type"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"created_at"`
}
