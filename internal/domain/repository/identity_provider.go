package repository

import (
	"context"

	"neuroclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityProvider provisions login accounts.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, email, temporaryCredential string, metadata entity.JSON) (*entity.Identity, error)
	// DeleteAccount removes a provisioned account. It is only used to undo a
	// CreateAccount whose follow-up step failed.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
