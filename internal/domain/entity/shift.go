package entity

import "time"

// Shift representa un turno de un trabajador en un día calendario.
// StartTime y EndTime son horas del mismo día en formato "HH:MM" (cero a la
// izquierda, comparables lexicográficamente). Se asume start < end; no se valida.
type Shift struct {
	ID         string
	ProviderID string
	StaffID    string
	Date       time.Time // día calendario (hora en cero)
	StartTime  string    // "09:00"
	EndTime    string    // "13:30"
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
