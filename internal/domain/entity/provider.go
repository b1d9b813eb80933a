package entity

import "time"

// Provider representa una funeraria/tenant del marketplace (enfoque Chile).
type Provider struct {
	ID        string
	Name      string
	RUT       string // RUT chileno (con dígito verificador)
	Address   string
	Phone     string
	Email     string
	LogoPNG   []byte // logo en PNG para la cotización; nil = sin logo
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
