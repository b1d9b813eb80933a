package dto

// SaveShiftRequest body para POST /api/shifts. Si ID viene con valor se trata
// como edición del turno existente (el turno se excluye a sí mismo en la
// verificación de solapamiento).
type SaveShiftRequest struct {
	ID        string `json:"id,omitempty"`
	StaffID   string `json:"staff_id"`
	Date      string `json:"date"`       // "2006-01-02"
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
	Notes     string `json:"notes,omitempty"`
}

// ShiftResponse turno en respuestas.
type ShiftResponse struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	StaffID    string `json:"staff_id"`
	StaffName  string `json:"staff_name,omitempty"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Notes      string `json:"notes,omitempty"`
}
