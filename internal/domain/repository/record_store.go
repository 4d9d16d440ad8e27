package repository

import (
	"context"

	"neuroclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordStore is the data-access contract with relational storage.
// Every error it returns is a *StoreError.
type RecordStore interface {
	// Select loads the rows described by query into dest, a pointer to a
	// slice of the entity's record type.
	Select(ctx context.Context, query entity.ListQuery, dest any) error
	Insert(ctx context.Context, entityType entity.Type, record entity.Record) error
	Update(ctx context.Context, entityType entity.Type, id uuid.UUID, record entity.Record) error
}
