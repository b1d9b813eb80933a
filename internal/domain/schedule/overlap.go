// Package schedule contiene las reglas puras de agenda de turnos.
package schedule

import "github.com/jhoicas/funeraria-api/internal/domain/entity"

// Conflicts devuelve el primer turno existente que se solapa con el candidato,
// o nil si el candidato puede guardarse. Los turnos existentes deben ser del
// mismo trabajador y día; el turno en edición se excluye por ID.
//
// Dos turnos se solapan cuando el inicio del candidato cae en [inicio, fin) de
// un existente, su fin cae en (inicio, fin], o el candidato contiene por
// completo al existente. Los extremos que solo se tocan (fin de uno == inicio
// del otro) no se solapan.
//
// Las horas "HH:MM" con cero a la izquierda se comparan lexicográficamente.
func Conflicts(candidate *entity.Shift, existing []*entity.Shift) *entity.Shift {
	for _, e := range existing {
		if candidate.ID != "" && candidate.ID == e.ID {
			continue
		}
		if overlaps(candidate, e) {
			return e
		}
	}
	return nil
}

func overlaps(c, e *entity.Shift) bool {
	if c.StartTime >= e.StartTime && c.StartTime < e.EndTime {
		return true
	}
	if c.EndTime > e.StartTime && c.EndTime <= e.EndTime {
		return true
	}
	return c.StartTime <= e.StartTime && c.EndTime >= e.EndTime
}
