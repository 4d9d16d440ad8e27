package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"neuroclinic/internal/converter"
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/domain/repository"
	"neuroclinic/internal/filter"
	"neuroclinic/internal/form"
	"neuroclinic/internal/stats"

	"github.com/google/uuid"
)

type CleanupOutcome string

const (
	CleanupSucceeded CleanupOutcome = "succeeded"
	CleanupFailed    CleanupOutcome = "failed"
)

// PartialFailureError reports a professional whose identity was provisioned
// but whose profile could not be stored. Cleanup tells whether the identity
// was removed again.
type PartialFailureError struct {
	IdentityID uuid.UUID
	Cause      error
	Cleanup    CleanupOutcome
	CleanupErr error
}

func (e *PartialFailureError) Error() string {
	if e.Cleanup == CleanupFailed {
		return fmt.Sprintf("%v (account %s was created and could not be removed: %v)", e.Cause, e.IdentityID, e.CleanupErr)
	}
	return fmt.Sprintf("%v (account %s was created and has been removed)", e.Cause, e.IdentityID)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Cause
}

// ProfessionalSchema is the create form of a professional.
var ProfessionalSchema = &form.Schema{
	Entity: entity.TypeProfile,
	Fields: []form.Field{
		{Name: "full_name", Label: "Nome Completo", Kind: form.KindText, Required: true, MaxLength: 255},
		{Name: "email", Label: "Email", Kind: form.KindEmail, Required: true},
		{Name: "phone", Label: "Telefone", Kind: form.KindText, MaxLength: 20},
		{Name: "specialty", Label: "Especialidade", Kind: form.KindEnum, Options: entity.ProfessionalSpecialties},
		{Name: "professional_license", Label: "Registro Profissional", Kind: form.KindText, MaxLength: 50},
	},
}

var professionalsQuery = entity.ListQuery{
	Entity:  entity.TypeProfile,
	Filters: []entity.Filter{{Column: "role", Value: string(entity.RoleProfessional)}},
	OrderBy: "full_name",
}

var professionalFilter = filter.Spec[entity.Profile]{
	Text: []func(entity.Profile) string{
		func(p entity.Profile) string { return p.FullName },
		func(p entity.Profile) string { return p.SpecialtyName() },
		func(p entity.Profile) string { return deref(p.ProfessionalLicense) },
	},
}

type ProfessionalUsecase interface {
	EntityUsecase
}

type professionalUsecase struct {
	*EntityCatalog[entity.Profile]
	deps       Dependencies
	identities repository.IdentityProvider
}

func NewProfessionalUsecase(deps Dependencies, identities repository.IdentityProvider) ProfessionalUsecase {
	catalog := NewEntityCatalog(Definition[entity.Profile]{
		Schema: ProfessionalSchema,
		Query:  professionalsQuery,
		Filter: professionalFilter,
		Stats: func(profiles []entity.Profile, _ time.Time) any {
			return stats.Professionals(profiles)
		},
		Convert: func(profiles []entity.Profile, _ time.Time) any {
			return converter.ProfessionalsToResponses(profiles)
		},
		Messages: Messages{
			Created:       "Profissional cadastrado com sucesso!",
			CreatedDetail: "Uma senha temporária foi gerada para o primeiro acesso.",
			Failed:        "Erro ao cadastrar profissional",
		},
	}, deps)

	return &professionalUsecase{
		EntityCatalog: catalog,
		deps:          deps,
		identities:    identities,
	}
}

func (u *professionalUsecase) Create(ctx context.Context, req *dto.CreateRecordRequest) (*dto.SubmissionResponse, error) {
	return u.submit(ctx, req.Values, u.provision)
}

// provision creates the identity, then the profile bound to it. When the
// profile insert fails the identity is deleted once, without retry.
func (u *professionalUsecase) provision(ctx context.Context, record entity.Record) error {
	credential, err := temporaryCredential()
	if err != nil {
		u.deps.Log.Warnf("Failed to generate temporary credential: %+v", err)
		return err
	}

	email, _ := record["email"].(string)
	fullName, _ := record["full_name"].(string)
	identity, err := u.identities.CreateAccount(ctx, email, credential, entity.JSON{
		"full_name": fullName,
		"role":      string(entity.RoleProfessional),
	})
	if err != nil {
		u.deps.Log.Warnf("Failed to create identity: %+v", err)
		return err
	}

	record["id"] = identity.ID
	record["role"] = string(entity.RoleProfessional)
	if err := u.deps.Store.Insert(ctx, entity.TypeProfile, record); err != nil {
		u.deps.Log.Warnf("Failed to create profile for identity %s: %+v", identity.ID, err)
		return u.compensate(ctx, identity.ID, err)
	}
	return nil
}

func (u *professionalUsecase) compensate(ctx context.Context, identityID uuid.UUID, cause error) error {
	perr := &PartialFailureError{
		IdentityID: identityID,
		Cause:      cause,
		Cleanup:    CleanupSucceeded,
	}
	if err := u.identities.DeleteAccount(context.WithoutCancel(ctx), identityID); err != nil {
		u.deps.Log.Errorf("Failed to remove orphaned identity %s: %+v", identityID, err)
		perr.Cleanup = CleanupFailed
		perr.CleanupErr = err
	}
	return perr
}

func temporaryCredential() (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
