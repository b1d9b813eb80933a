package entity

import "time"

// Staff representa un trabajador de la funeraria (conductor, asistente, atención).
type Staff struct {
	ID         string
	ProviderID string
	Name       string
	Role       string // conductor, asistente, atencion
	Email      string
	Phone      string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
