package usecase

import (
	"context"
	"errors"
	"time"

	"neuroclinic/internal/converter"
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/delivery/http/middleware"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/domain/repository"
	"neuroclinic/internal/filter"
	"neuroclinic/internal/form"
	"neuroclinic/internal/stats"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountSchema is the create form of a ledger entry. Status is left to the
// column default and created_by is taken from the caller.
var AccountSchema = &form.Schema{
	Entity: entity.TypeAccount,
	Fields: []form.Field{
		{Name: "name", Label: "Nome", Kind: form.KindText, Required: true, MaxLength: 255},
		{Name: "type", Label: "Tipo", Kind: form.KindEnum, Required: true, Options: entity.AccountTypes},
		{Name: "amount", Label: "Valor (R$)", Kind: form.KindDecimal, Required: true, Positive: true, Scale: 2, MaxDigits: 12},
		{Name: "due_date", Label: "Data de Vencimento", Kind: form.KindDate},
		{Name: "patient_id", Label: "Paciente", Kind: form.KindReference, References: entity.TypePatient},
		{Name: "category", Label: "Categoria", Kind: form.KindEnum, Options: entity.AccountCategories},
		{Name: "payment_method", Label: "Forma de Pagamento", Kind: form.KindEnum, Options: entity.PaymentMethods},
		{Name: "description", Label: "Descrição", Kind: form.KindText},
		{Name: "notes", Label: "Observações", Kind: form.KindText},
	},
}

var accountsQuery = entity.ListQuery{
	Entity: entity.TypeAccount,
	Joins: []entity.Join{
		{Relation: "Patient", Entity: entity.TypePatient},
		{Relation: "Creator", Entity: entity.TypeProfile},
	},
	OrderBy:    "created_at",
	Descending: true,
}

var accountFilter = filter.Spec[entity.Account]{
	Text: []func(entity.Account) string{
		func(a entity.Account) string { return a.Name },
		func(a entity.Account) string { return a.PatientName() },
	},
	Categories: map[string]filter.Category[entity.Account]{
		"type": {
			Value:   func(a entity.Account) string { return string(a.Type) },
			Options: entity.AccountTypes,
		},
		"status": {
			Value:   func(a entity.Account) string { return string(a.Status) },
			Options: entity.AccountStatuses,
		},
	},
}

type AccountUsecase interface {
	EntityUsecase
	MarkPaid(ctx context.Context, id uuid.UUID, req *dto.MarkPaidRequest) error
}

type accountUsecase struct {
	*EntityCatalog[entity.Account]
	deps Dependencies
}

func NewAccountUsecase(deps Dependencies, refs ReferenceUsecase) AccountUsecase {
	catalog := NewEntityCatalog(Definition[entity.Account]{
		Schema: AccountSchema,
		Query:  accountsQuery,
		Filter: accountFilter,
		Stats: func(accounts []entity.Account, _ time.Time) any {
			return stats.Financial(accounts)
		},
		Convert: func(accounts []entity.Account, _ time.Time) any {
			return converter.AccountsToResponses(accounts)
		},
		Messages: Messages{
			Created: "Conta criada com sucesso!",
			Failed:  "Erro ao criar conta",
		},
		Enrich: func(ctx context.Context, record entity.Record) error {
			if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
				record["created_by"] = userID
			}
			return nil
		},
		References: map[string]OptionSource{
			"patient_id": refs.PatientOptions,
		},
	}, deps)

	return &accountUsecase{
		EntityCatalog: catalog,
		deps:          deps,
	}
}

// MarkPaid settles an entry. The payment date defaults to today.
func (u *accountUsecase) MarkPaid(ctx context.Context, id uuid.UUID, req *dto.MarkPaidRequest) error {
	paidOn := u.deps.now()
	if req.PaymentDate != "" {
		t, err := time.Parse(form.DateLayout, req.PaymentDate)
		if err != nil {
			return &form.ValidationError{Fields: map[string]string{"payment_date": "payment_date must be a date in YYYY-MM-DD format"}}
		}
		paidOn = t
	}

	record := entity.Record{
		"status":       string(entity.AccountStatusPaid),
		"payment_date": time.Date(paidOn.Year(), paidOn.Month(), paidOn.Day(), 0, 0, 0, 0, time.UTC),
	}
	if req.PaymentMethod != "" {
		record["payment_method"] = req.PaymentMethod
	}

	if err := u.deps.Store.Update(ctx, entity.TypeAccount, id, record); err != nil {
		if repository.ClassOf(err) == repository.ClassNotFound {
			return ErrAccountNotFound
		}
		u.deps.Log.Warnf("Failed to mark account as paid: %+v", err)
		return err
	}

	if err := u.deps.Cache.Invalidate(ctx, entity.TypeAccount); err != nil {
		u.deps.Log.Warnf("Failed to invalidate account lists: %+v", err)
	}
	return nil
}
