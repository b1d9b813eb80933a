package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/funeraria-api/internal/application/dto"
	appschedule "github.com/jhoicas/funeraria-api/internal/application/schedule"
	"github.com/jhoicas/funeraria-api/internal/domain"
	"github.com/jhoicas/funeraria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeShiftRepo struct {
	shifts  map[string]*entity.Shift
	listErr error
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: map[string]*entity.Shift{}}
}

func (r *fakeShiftRepo) Create(s *entity.Shift) error {
	cp := *s
	r.shifts[s.ID] = &cp
	return nil
}

func (r *fakeShiftRepo) GetByID(id string) (*entity.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeShiftRepo) ListByStaffAndDate(staffID string, date time.Time) ([]*entity.Shift, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.Shift
	for _, s := range r.shifts {
		if s.StaffID == staffID && s.Date.Equal(date) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) ListByProviderAndDate(providerID string, date time.Time) ([]*entity.Shift, error) {
	var out []*entity.Shift
	for _, s := range r.shifts {
		if s.ProviderID == providerID && s.Date.Equal(date) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) Update(s *entity.Shift) error {
	cp := *s
	r.shifts[s.ID] = &cp
	return nil
}

func (r *fakeShiftRepo) Delete(id string) error {
	delete(r.shifts, id)
	return nil
}

type fakeStaffRepo struct {
	staff map[string]*entity.Staff
}

func (r *fakeStaffRepo) Create(s *entity.Staff) error { r.staff[s.ID] = s; return nil }
func (r *fakeStaffRepo) GetByID(id string) (*entity.Staff, error) {
	return r.staff[id], nil
}
func (r *fakeStaffRepo) ListByProvider(string, int, int) ([]*entity.Staff, error) { return nil, nil }
func (r *fakeStaffRepo) Update(*entity.Staff) error                               { return nil }
func (r *fakeStaffRepo) Delete(string) error                                      { return nil }

const (
	testProviderID = "prov-1"
	testStaffID    = "staff-1"
)

func buildUseCase(policy appschedule.OverlapPolicy) (*appschedule.SaveShiftUseCase, *fakeShiftRepo) {
	shiftRepo := newFakeShiftRepo()
	staffRepo := &fakeStaffRepo{staff: map[string]*entity.Staff{
		testStaffID: {ID: testStaffID, ProviderID: testProviderID, Name: "Pedro Rojas"},
	}}
	return appschedule.NewSaveShiftUseCase(shiftRepo, staffRepo, policy), shiftRepo
}

func saveReq(id, start, end string) dto.SaveShiftRequest {
	return dto.SaveShiftRequest{
		ID:        id,
		StaffID:   testStaffID,
		Date:      "2024-05-10",
		StartTime: start,
		EndTime:   end,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardado y solapamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestSaveShift_CreaYRechazaSolapados(t *testing.T) {
	uc, _ := buildUseCase("")
	ctx := context.Background()

	first, err := uc.SaveShift(ctx, testProviderID, saveReq("", "09:00", "13:00"))
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Intervalo que intersecta → conflicto, no se persiste.
	_, err = uc.SaveShift(ctx, testProviderID, saveReq("", "12:00", "15:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrShiftOverlap)

	// Extremos que solo se tocan → permitido.
	_, err = uc.SaveShift(ctx, testProviderID, saveReq("", "13:00", "17:00"))
	assert.NoError(t, err)

	list, err := uc.ListShifts(ctx, testProviderID, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, list, 2, "el turno en conflicto no debe haberse guardado")
}

// TestSaveShift_EdicionNoAutoChoca: editar un turno contra sí mismo nunca
// reporta conflicto; contra un tercero sí.
func TestSaveShift_EdicionNoAutoChoca(t *testing.T) {
	uc, _ := buildUseCase("")
	ctx := context.Background()

	created, err := uc.SaveShift(ctx, testProviderID, saveReq("", "09:00", "13:00"))
	require.NoError(t, err)
	_, err = uc.SaveShift(ctx, testProviderID, saveReq("", "14:00", "18:00"))
	require.NoError(t, err)

	// Extender el propio turno dentro de su franja: permitido.
	resp, err := uc.SaveShift(ctx, testProviderID, saveReq(created.ID, "09:30", "13:00"))
	require.NoError(t, err)
	assert.Equal(t, "09:30", resp.StartTime)

	// Extenderlo hasta chocar con el otro turno: conflicto.
	_, err = uc.SaveShift(ctx, testProviderID, saveReq(created.ID, "09:00", "15:00"))
	assert.ErrorIs(t, err, domain.ErrShiftOverlap)
}

// ──────────────────────────────────────────────────────────────────────────────
// Política ante fallo de lectura
// ──────────────────────────────────────────────────────────────────────────────

// TestSaveShift_FailOpen: con la política por defecto, una lectura fallida se
// trata como "sin conflicto" y el guardado continúa (comportamiento de
// referencia, deliberadamente riesgoso).
func TestSaveShift_FailOpen(t *testing.T) {
	uc, repo := buildUseCase(appschedule.OverlapFailOpen)
	repo.listErr = errors.New("conexión perdida")

	resp, err := uc.SaveShift(context.Background(), testProviderID, saveReq("", "09:00", "13:00"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

// TestSaveShift_FailClosed: con fail-closed la misma lectura fallida bloquea
// el guardado.
func TestSaveShift_FailClosed(t *testing.T) {
	uc, repo := buildUseCase(appschedule.OverlapFailClosed)
	repo.listErr = errors.New("conexión perdida")

	_, err := uc.SaveShift(context.Background(), testProviderID, saveReq("", "09:00", "13:00"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrShiftOverlap)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pertenencia y validación
// ──────────────────────────────────────────────────────────────────────────────

func TestSaveShift_RechazaOtroTenant(t *testing.T) {
	uc, _ := buildUseCase("")
	_, err := uc.SaveShift(context.Background(), "prov-ajeno", saveReq("", "09:00", "13:00"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSaveShift_ValidaCampos(t *testing.T) {
	uc, _ := buildUseCase("")
	ctx := context.Background()

	_, err := uc.SaveShift(ctx, testProviderID, dto.SaveShiftRequest{StaffID: testStaffID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := saveReq("", "09:00", "13:00")
	bad.Date = "10-05-2024"
	_, err = uc.SaveShift(ctx, testProviderID, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
