package dto

// UpdateProviderRequest body para PUT /api/providers/me.
// El logo se envía en base64 (decodificado por el handler) o se omite para
// conservar el actual.
type UpdateProviderRequest struct {
	Name    string `json:"name"`
	RUT     string `json:"rut,omitempty"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	LogoB64 string `json:"logo_png,omitempty"`
}

// ProviderResponse perfil de la funeraria en respuestas.
type ProviderResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	RUT     string `json:"rut,omitempty"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	HasLogo bool   `json:"has_logo"`
	Status  string `json:"status"`
}

// CreateStaffRequest body para POST /api/staff.
type CreateStaffRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// StaffResponse trabajador en respuestas.
type StaffResponse struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Active     bool   `json:"active"`
}
