package repository

import (
	"context"

	"neuroclinic/internal/domain/entity"
	domainRepo "neuroclinic/internal/domain/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type identityProvider struct {
	db *gorm.DB
}

func NewIdentityProvider(db *gorm.DB) domainRepo.IdentityProvider {
	return &identityProvider{db: db}
}

func (r *identityProvider) CreateAccount(ctx context.Context, email, temporaryCredential string, metadata entity.JSON) (*entity.Identity, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(temporaryCredential), bcrypt.DefaultCost)
	if err != nil {
		return nil, classify(err)
	}

	identity := &entity.Identity{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		Metadata: metadata,
	}
	if err := r.db.WithContext(ctx).Create(identity).Error; err != nil {
		return nil, classify(err)
	}
	return identity, nil
}

func (r *identityProvider) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Identity{})
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return classify(gorm.ErrRecordNotFound)
	}
	return nil
}
