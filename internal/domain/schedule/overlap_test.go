package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/funeraria-api/internal/domain/entity"
	"github.com/jhoicas/funeraria-api/internal/domain/schedule"
)

func shift(id, start, end string) *entity.Shift {
	return &entity.Shift{
		ID:        id,
		StaffID:   "staff-1",
		Date:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   end,
	}
}

// TestConflicts_CasosBorde cubre la semántica de intervalos: los extremos que
// solo se tocan no se solapan; el resto de las intersecciones sí.
func TestConflicts_CasosBorde(t *testing.T) {
	existing := []*entity.Shift{shift("e1", "10:00", "11:00")}

	cases := []struct {
		name       string
		start, end string
		conflict   bool
	}{
		{"extremos que se tocan no chocan (antes)", "09:00", "10:00", false},
		{"extremos que se tocan no chocan (después)", "11:00", "12:00", false},
		{"inicio dentro del existente", "10:30", "11:30", true},
		{"fin dentro del existente", "09:30", "10:30", true},
		{"candidato contiene al existente", "09:00", "12:00", true},
		{"existente contiene al candidato", "10:15", "10:45", true},
		{"intervalos idénticos", "10:00", "11:00", true},
		{"completamente antes", "07:00", "08:00", false},
		{"completamente después", "12:00", "13:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.Conflicts(shift("", tc.start, tc.end), existing)
			if tc.conflict {
				assert.NotNil(t, got, "debe reportar conflicto")
			} else {
				assert.Nil(t, got, "no debe reportar conflicto")
			}
		})
	}
}

// TestConflicts_ExcluyeElPropioTurno: editar un turno contra sí mismo (mismo
// ID) nunca reporta auto-conflicto.
func TestConflicts_ExcluyeElPropioTurno(t *testing.T) {
	existing := []*entity.Shift{shift("e1", "10:00", "11:00")}

	candidate := shift("e1", "10:00", "11:30")
	assert.Nil(t, schedule.Conflicts(candidate, existing))

	// Con otro ID el mismo intervalo sí choca.
	candidate = shift("e2", "10:00", "11:30")
	got := schedule.Conflicts(candidate, existing)
	assert.NotNil(t, got)
	assert.Equal(t, "e1", got.ID)
}

// TestConflicts_VariosExistentes: se reporta el primer conflicto encontrado.
func TestConflicts_VariosExistentes(t *testing.T) {
	existing := []*entity.Shift{
		shift("e1", "08:00", "09:00"),
		shift("e2", "10:00", "11:00"),
		shift("e3", "14:00", "16:00"),
	}

	assert.Nil(t, schedule.Conflicts(shift("", "09:00", "10:00"), existing))
	assert.Nil(t, schedule.Conflicts(shift("", "11:00", "14:00"), existing))

	got := schedule.Conflicts(shift("", "15:00", "17:00"), existing)
	assert.NotNil(t, got)
	assert.Equal(t, "e3", got.ID)
}

func TestConflicts_SinExistentes(t *testing.T) {
	assert.Nil(t, schedule.Conflicts(shift("", "09:00", "18:00"), nil))
}
