package repository

import (
	"context"
	"testing"

	"neuroclinic/internal/domain/entity"
	domainRepo "neuroclinic/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityProviderCreateAccountHashesCredential(t *testing.T) {
	db, mock := newMockDB(t)
	provider := NewIdentityProvider(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "identities"`).
		WithArgs(sqlmock.AnyArg(), "ana@clinic.test", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	identity, err := provider.CreateAccount(context.Background(), "ana@clinic.test", "s3cret-temp", entity.JSON{
		"full_name": "Ana Lima",
		"role":      "professional",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@clinic.test", identity.Email)
	assert.NotEqual(t, "s3cret-temp", identity.Password)
	assert.NotEqual(t, uuid.Nil, identity.ID)
}

func TestIdentityProviderDeleteAccount(t *testing.T) {
	db, mock := newMockDB(t)
	provider := NewIdentityProvider(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "identities" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, provider.DeleteAccount(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityProviderDeleteMissingAccount(t *testing.T) {
	db, mock := newMockDB(t)
	provider := NewIdentityProvider(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "identities"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := provider.DeleteAccount(context.Background(), uuid.New())
	assert.Equal(t, domainRepo.ClassNotFound, domainRepo.ClassOf(err))
}
