package entity

import "time"

// Estados de un caso (lead de una familia hacia una funeraria).
const (
	CaseStatusNew       = "new"
	CaseStatusContacted = "contacted"
	CaseStatusQuoted    = "quoted"
	CaseStatusClosed    = "closed"
)

// CaseRecord representa la solicitud de una familia a una funeraria
// (servicio requerido + datos de contacto).
type CaseRecord struct {
	ID           string
	ProviderID   string
	FamilyName   string
	ContactName  string
	ContactEmail string
	ContactPhone string
	ServiceType  string // funeral, cremacion, traslado, memorial
	Status       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
