package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"neuroclinic/internal/domain/entity"
	domainRepo "neuroclinic/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRecordStoreSelectAppliesFiltersAndOrder(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRecordStore(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE "profiles"."role" = \$1 ORDER BY "profiles"."full_name"`).
		WithArgs("professional").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "role", "is_active"}).
			AddRow(id.String(), "Ana Lima", "ana@clinic.test", "professional", true))

	var profiles []entity.Profile
	err := store.Select(context.Background(), entity.ListQuery{
		Entity:  entity.TypeProfile,
		Filters: []entity.Filter{{Column: "role", Value: "professional"}},
		OrderBy: "full_name",
	}, &profiles)

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, id, profiles[0].ID)
	assert.Equal(t, entity.RoleProfessional, profiles[0].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStoreSelectDescendingWithJoin(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRecordStore(db)

	patientID := uuid.New()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "accounts" ORDER BY "accounts"."created_at" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "amount", "status", "patient_id", "created_at"}).
			AddRow(uuid.New().String(), "Consulta", "revenue", "150.00", "paid", patientID.String(), created))
	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE "patients"."id" = \$1`).
		WithArgs(patientID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "birth_date"}).
			AddRow(patientID.String(), "Joana Souza", time.Date(2010, 1, 2, 0, 0, 0, 0, time.UTC)))

	var accounts []entity.Account
	err := store.Select(context.Background(), entity.ListQuery{
		Entity:     entity.TypeAccount,
		Joins:      []entity.Join{{Relation: "Patient", Entity: entity.TypePatient}},
		OrderBy:    "created_at",
		Descending: true,
	}, &accounts)

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "150", accounts[0].Amount.String())
	assert.Equal(t, "Joana Souza", accounts[0].PatientName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStoreSelectRejectsMismatchedDestination(t *testing.T) {
	db, _ := newMockDB(t)
	store := NewRecordStore(db)

	var rooms []entity.Room
	err := store.Select(context.Background(), entity.ListQuery{Entity: entity.TypePatient}, &rooms)

	require.Error(t, err)
	var storeErr *domainRepo.StoreError
	assert.True(t, errors.As(err, &storeErr))
}

func TestRecordStoreSelectClassifiesTransportError(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRecordStore(db)

	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnError(context.DeadlineExceeded)

	var rooms []entity.Room
	err := store.Select(context.Background(), entity.ListQuery{Entity: entity.TypeRoom}, &rooms)

	require.Error(t, err)
	assert.Equal(t, domainRepo.ClassTransport, domainRepo.ClassOf(err))
}

func TestRecordStoreInsert(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRecordStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "patients" \("birth_date","cpf","full_name"\) VALUES \(\$1,\$2,\$3\)`).
		WithArgs(sqlmock.AnyArg(), nil, "Joana Souza").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Insert(context.Background(), entity.TypePatient, entity.Record{
		"full_name":  "Joana Souza",
		"birth_date": time.Date(2015, 6, 15, 0, 0, 0, 0, time.UTC),
		"cpf":        nil,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStoreInsertKeepsBackendMessage(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		class domainRepo.ErrorClass
	}{
		{name: "unique violation", code: "23505", class: domainRepo.ClassConstraint},
		{name: "not null violation", code: "23502", class: domainRepo.ClassConstraint},
		{name: "row level security", code: "42501", class: domainRepo.ClassPermission},
		{name: "connection failure", code: "08006", class: domainRepo.ClassTransport},
		{name: "syntax error", code: "42601", class: domainRepo.ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			store := NewRecordStore(db)

			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO "rooms"`).
				WillReturnError(&pgconn.PgError{Code: tt.code, Message: "backend says no"})
			mock.ExpectRollback()

			err := store.Insert(context.Background(), entity.TypeRoom, entity.Record{"name": "Sala 1"})

			require.Error(t, err)
			assert.Equal(t, "backend says no", err.Error())
			assert.Equal(t, tt.class, domainRepo.ClassOf(err))
		})
	}
}

func TestRecordStoreUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRecordStore(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "patients" SET "is_active"=\$1 WHERE id = \$2`).
		WithArgs(false, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Update(context.Background(), entity.TypePatient, id, entity.Record{"is_active": false})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStoreUpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewRecordStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "patients"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.Update(context.Background(), entity.TypePatient, uuid.New(), entity.Record{"is_active": false})

	require.Error(t, err)
	assert.Equal(t, domainRepo.ClassNotFound, domainRepo.ClassOf(err))
}
