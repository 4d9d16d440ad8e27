package usecase

import (
	"context"
	"testing"

	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardDerivesFromStoredData(t *testing.T) {
	store := newMemoryStore()
	deps, _ := newTestDeps(t, store)
	uc := NewDashboardUsecase(deps)

	store.seed(entity.TypeAppointment,
		map[string]any{"id": uuid.New(), "appointment_date": fixedNow, "start_time": "09:00", "end_time": "10:30", "status": "completed",
			"specialty": map[string]any{"name": "Psicologia"}},
		map[string]any{"id": uuid.New(), "appointment_date": fixedNow, "start_time": "11:00", "end_time": "12:00", "status": "scheduled",
			"specialty": map[string]any{"name": "Fonoaudiologia"}},
		map[string]any{"id": uuid.New(), "appointment_date": date(t, "2024-06-14"), "start_time": "08:00", "end_time": "09:00", "status": "cancelled",
			"specialty": map[string]any{"name": "Psicologia"}},
	)
	store.seed(entity.TypePatient,
		map[string]any{"id": uuid.New(), "full_name": "Ana", "birth_date": date(t, "2010-01-01"), "is_active": true},
		map[string]any{"id": uuid.New(), "full_name": "Bia", "birth_date": date(t, "2011-01-01"), "is_active": false},
	)
	store.seed(entity.TypeAccount,
		map[string]any{"id": uuid.New(), "name": "Consulta", "type": "revenue", "amount": "300.00", "status": "paid", "payment_date": date(t, "2024-06-03")},
		map[string]any{"id": uuid.New(), "name": "Consulta", "type": "revenue", "amount": "100.00", "status": "paid", "payment_date": date(t, "2024-05-03")},
	)

	resp, err := uc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Stats.AppointmentsToday)
	assert.Equal(t, 1, resp.Stats.ActivePatients)
	assert.True(t, resp.Stats.MonthlyRevenue.Equal(decimal.NewFromInt(300)))
	assert.InDelta(t, 1.5, resp.Stats.HoursWorked, 0.001)

	require.Len(t, resp.DailyAppointments, dashboardDays)
	last := resp.DailyAppointments[dashboardDays-1]
	assert.Equal(t, "2024-06-15", last.Date)
	assert.Equal(t, 2, last.Count)
	assert.Equal(t, 0, resp.DailyAppointments[dashboardDays-2].Count)

	require.Len(t, resp.RevenueByMonth, dashboardMonths)
	assert.Equal(t, "2024-06", resp.RevenueByMonth[dashboardMonths-1].Month)
	assert.True(t, resp.RevenueByMonth[dashboardMonths-2].Revenue.Equal(decimal.NewFromInt(100)))

	require.Len(t, resp.SpecialtyDistribution, 2)
}

func TestDashboardSharesCacheWithLists(t *testing.T) {
	store := newMemoryStore()
	deps, _ := newTestDeps(t, store)
	refs := NewReferenceUsecase(deps)
	patients := NewPatientUsecase(deps, refs)

	_, err := patients.(*patientUsecase).Load(context.Background())
	require.NoError(t, err)

	_, err = NewDashboardUsecase(deps).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, store.selectCount(entity.TypePatient))
}

func TestDashboardFailsWhenAnyListFails(t *testing.T) {
	store := newMemoryStore()
	store.selectErr = &repository.StoreError{Class: repository.ClassTransport, Message: "timeout"}
	deps, _ := newTestDeps(t, store)

	resp, err := NewDashboardUsecase(deps).Get(context.Background())
	assert.Nil(t, resp)
	assert.Equal(t, repository.ClassTransport, repository.ClassOf(err))
}

func TestRegistryLookup(t *testing.T) {
	store := newMemoryStore()
	deps, _ := newTestDeps(t, store)
	refs := NewReferenceUsecase(deps)
	reg := Registry{"patients": NewPatientUsecase(deps, refs)}

	uc, err := reg.Lookup("patients")
	require.NoError(t, err)
	assert.Equal(t, entity.TypePatient, uc.Entity())

	_, err = reg.Lookup("invoices")
	assert.ErrorIs(t, err, ErrUnknownEntity)
}
