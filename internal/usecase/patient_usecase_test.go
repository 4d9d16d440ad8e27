package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/domain/repository"
	"neuroclinic/internal/filter"
	"neuroclinic/internal/form"
	"neuroclinic/internal/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientUsecase(t *testing.T) (PatientUsecase, *memoryStore, *recordingNotifier) {
	t.Helper()
	store := newMemoryStore()
	deps, notifier := newTestDeps(t, store)
	return NewPatientUsecase(deps, NewReferenceUsecase(deps)), store, notifier
}

func seedPatients(t *testing.T, store *memoryStore) {
	store.seed(entity.TypePatient,
		map[string]any{"id": uuid.New(), "full_name": "Ana Souza", "birth_date": date(t, "2010-06-16"), "is_active": true, "cpf": "111.222.333-44"},
		map[string]any{"id": uuid.New(), "full_name": "Bruno Lima", "birth_date": date(t, "1990-01-01"), "is_active": true, "phone": "11 99999-0000"},
		map[string]any{"id": uuid.New(), "full_name": "Carla Dias", "birth_date": date(t, "1985-03-10"), "is_active": false},
	)
}

func TestPatientListFiltersAndComputesStatsOverFullList(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)
	seedPatients(t, store)

	resp, err := uc.List(context.Background(), &dto.ListRequest{Search: "LIMA"})
	require.NoError(t, err)

	items, ok := resp.Items.([]*dto.PatientResponse)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Bruno Lima", items[0].FullName)
	assert.Equal(t, 34, items[0].Age)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Filtered)

	// The 2010-06-16 birthday is one day after the fixed clock.
	assert.Equal(t, stats.PatientStats{Total: 3, Active: 2, Minors: 1, Adults: 2}, resp.Stats)
}

func TestPatientListSearchesDocumentAndPhone(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)
	seedPatients(t, store)

	resp, err := uc.List(context.Background(), &dto.ListRequest{Search: "333"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Filtered)

	resp, err = uc.List(context.Background(), &dto.ListRequest{Search: "99999"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Filtered)
}

func TestPatientListEmptyIsNotAnError(t *testing.T) {
	uc, _, _ := newPatientUsecase(t)

	resp, err := uc.List(context.Background(), &dto.ListRequest{})
	require.NoError(t, err)
	items, ok := resp.Items.([]*dto.PatientResponse)
	require.True(t, ok)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPatientListReadErrorIsReturned(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)
	store.selectErr = &repository.StoreError{Class: repository.ClassTransport, Message: "connection refused"}

	resp, err := uc.List(context.Background(), &dto.ListRequest{})
	assert.Nil(t, resp)
	assert.Equal(t, repository.ClassTransport, repository.ClassOf(err))
}

func TestPatientFetchRejectsUnknownFilter(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)

	_, err := uc.(*patientUsecase).Fetch(context.Background(), filter.Criteria{Categories: map[string]string{"status": "active"}})
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.Zero(t, store.selectCount(entity.TypePatient))
}

func TestPatientListIgnoresUndeclaredQueryKeys(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)
	seedPatients(t, store)

	resp, err := uc.List(context.Background(), &dto.ListRequest{Filters: map[string]string{"_": "1718445600"}})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Filtered)
}

func TestPatientListBlankSearchKeepsEveryRecord(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)
	seedPatients(t, store)

	resp, err := uc.List(context.Background(), &dto.ListRequest{Search: "   "})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Filtered)
}

func TestPatientCreateThenListShowsRecordOnce(t *testing.T) {
	uc, store, notifier := newPatientUsecase(t)
	seedPatients(t, store)
	ctx := context.Background()

	_, err := uc.List(ctx, &dto.ListRequest{})
	require.NoError(t, err)
	_, err = uc.List(ctx, &dto.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, store.selectCount(entity.TypePatient))

	resp, err := uc.Create(ctx, &dto.CreateRecordRequest{Values: map[string]string{
		"full_name":  "Diego Rocha",
		"birth_date": "2015-02-20",
	}})
	require.NoError(t, err)
	assert.Equal(t, "Paciente cadastrado com sucesso!", resp.Notification.Title)
	assert.Equal(t, string(form.VariantDefault), resp.Notification.Variant)
	assert.Equal(t, form.VariantDefault, notifier.last().Variant)

	list, err := uc.List(ctx, &dto.ListRequest{Search: "diego"})
	require.NoError(t, err)
	assert.Equal(t, 2, store.selectCount(entity.TypePatient))
	assert.Equal(t, 4, list.Total)
	assert.Equal(t, 1, list.Filtered)
}

func TestPatientCreateStoresBlankOptionalFieldsAsNull(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)

	_, err := uc.Create(context.Background(), &dto.CreateRecordRequest{Values: map[string]string{
		"full_name":  "  Elisa Prado ",
		"birth_date": "2012-09-01",
		"cpf":        "   ",
	}})
	require.NoError(t, err)

	calls := store.insertCalls()
	require.Len(t, calls, 1)
	rec := calls[0].Record
	assert.Equal(t, "Elisa Prado", rec["full_name"])
	require.Contains(t, rec, "cpf")
	assert.Nil(t, rec["cpf"])
	require.Contains(t, rec, "responsible_id")
	assert.Nil(t, rec["responsible_id"])
}

func TestPatientCreateValidationBlocksInsert(t *testing.T) {
	uc, store, notifier := newPatientUsecase(t)

	_, err := uc.Create(context.Background(), &dto.CreateRecordRequest{Values: map[string]string{
		"birth_date":     "not-a-date",
		"responsible_id": "abc",
	}})

	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "full_name")
	assert.Contains(t, verr.Fields, "birth_date")
	assert.Contains(t, verr.Fields, "responsible_id")
	assert.Empty(t, store.insertCalls())
	assert.Empty(t, notifier.seen)
}

func TestPatientCreateSurfacesBackendMessage(t *testing.T) {
	uc, store, notifier := newPatientUsecase(t)
	store.insertErr[entity.TypePatient] = &repository.StoreError{
		Class:   repository.ClassConstraint,
		Message: `duplicate key value violates unique constraint "patients_cpf_key"`,
	}

	_, err := uc.Create(context.Background(), &dto.CreateRecordRequest{Values: map[string]string{
		"full_name":  "Fabio Reis",
		"birth_date": "2001-04-04",
		"cpf":        "111.222.333-44",
	}})

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Erro ao cadastrar paciente", serr.Notification.Title)
	assert.Equal(t, `duplicate key value violates unique constraint "patients_cpf_key"`, serr.Notification.Description)
	assert.Equal(t, form.VariantDestructive, serr.Notification.Variant)
	assert.Equal(t, repository.ClassConstraint, repository.ClassOf(err))
	assert.Equal(t, serr.Notification, notifier.last())
}

func TestPatientCreateRejectsOverlappingDuplicateSubmission(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)

	entered := make(chan struct{})
	proceed := make(chan struct{})
	var once sync.Once
	store.beforeInsert = func() {
		once.Do(func() {
			close(entered)
			<-proceed
		})
	}

	values := map[string]string{"full_name": "Gabi Melo", "birth_date": "2018-07-07"}
	ctx := context.Background()

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = uc.Create(ctx, &dto.CreateRecordRequest{Values: values})
	}()

	<-entered
	_, err := uc.Create(ctx, &dto.CreateRecordRequest{Values: values})
	assert.ErrorIs(t, err, form.ErrSubmissionInFlight)

	close(proceed)
	wg.Wait()
	require.NoError(t, firstErr)
	assert.Len(t, store.insertCalls(), 1)
}

func TestPatientDeactivate(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)
	id := uuid.New()
	store.seed(entity.TypePatient, map[string]any{"id": id, "full_name": "Hugo Alves", "birth_date": date(t, "2000-01-01"), "is_active": true})
	ctx := context.Background()

	before, err := uc.List(ctx, &dto.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, before.Stats.(stats.PatientStats).Active)

	require.NoError(t, uc.Deactivate(ctx, id))

	after, err := uc.List(ctx, &dto.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, after.Stats.(stats.PatientStats).Active)
	assert.Equal(t, 1, after.Total)
}

func TestPatientDeactivateMissing(t *testing.T) {
	uc, _, _ := newPatientUsecase(t)

	err := uc.Deactivate(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrPatientNotFound))
}

func TestPatientFormListsResponsibles(t *testing.T) {
	uc, store, _ := newPatientUsecase(t)
	rid := uuid.New()
	store.seed(entity.TypeProfile,
		map[string]any{"id": rid, "full_name": "Irene Costa", "email": "irene@example.com", "role": "responsible"},
		map[string]any{"id": uuid.New(), "full_name": "Dr. João", "email": "joao@example.com", "role": "professional"},
	)

	resp, err := uc.Form(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "patients", resp.Entity)

	var found bool
	for _, f := range resp.Fields {
		if f.Name == "responsible_id" {
			found = true
			assert.Equal(t, []dto.OptionResponse{{Value: rid.String(), Label: "Irene Costa"}}, f.Options)
		}
	}
	assert.True(t, found)
}
