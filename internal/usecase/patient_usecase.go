package usecase

import (
	"context"
	"errors"
	"time"

	"neuroclinic/internal/converter"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/domain/repository"
	"neuroclinic/internal/filter"
	"neuroclinic/internal/form"
	"neuroclinic/internal/stats"

	"github.com/google/uuid"
)

var ErrPatientNotFound = errors.New("patient not found")

// PatientSchema is the create form of a patient.
var PatientSchema = &form.Schema{
	Entity: entity.TypePatient,
	Fields: []form.Field{
		{Name: "full_name", Label: "Nome Completo", Kind: form.KindText, Required: true, MaxLength: 255},
		{Name: "birth_date", Label: "Data de Nascimento", Kind: form.KindDate, Required: true},
		{Name: "cpf", Label: "CPF", Kind: form.KindText, MaxLength: 14},
		{Name: "rg", Label: "RG", Kind: form.KindText, MaxLength: 20},
		{Name: "address", Label: "Endereço", Kind: form.KindText},
		{Name: "phone", Label: "Telefone", Kind: form.KindText, MaxLength: 20},
		{Name: "emergency_contact", Label: "Contato de Emergência", Kind: form.KindText, MaxLength: 255},
		{Name: "emergency_phone", Label: "Telefone de Emergência", Kind: form.KindText, MaxLength: 20},
		{Name: "medical_history", Label: "Histórico Médico", Kind: form.KindText},
		{Name: "allergies", Label: "Alergias", Kind: form.KindText},
		{Name: "medications", Label: "Medicamentos", Kind: form.KindText},
		{Name: "responsible_id", Label: "Responsável", Kind: form.KindReference, References: entity.TypeProfile},
	},
}

var patientsQuery = entity.ListQuery{
	Entity:  entity.TypePatient,
	Joins:   []entity.Join{{Relation: "Responsible", Entity: entity.TypeProfile}},
	OrderBy: "full_name",
}

var patientFilter = filter.Spec[entity.Patient]{
	Text: []func(entity.Patient) string{
		func(p entity.Patient) string { return p.FullName },
		func(p entity.Patient) string { return deref(p.CPF) },
		func(p entity.Patient) string { return deref(p.Phone) },
	},
}

type PatientUsecase interface {
	EntityUsecase
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	*EntityCatalog[entity.Patient]
	deps Dependencies
}

func NewPatientUsecase(deps Dependencies, refs ReferenceUsecase) PatientUsecase {
	catalog := NewEntityCatalog(Definition[entity.Patient]{
		Schema: PatientSchema,
		Query:  patientsQuery,
		Filter: patientFilter,
		Stats: func(patients []entity.Patient, now time.Time) any {
			return stats.Patients(patients, now)
		},
		Convert: func(patients []entity.Patient, now time.Time) any {
			return converter.PatientsToResponses(patients, now)
		},
		Messages: Messages{
			Created: "Paciente cadastrado com sucesso!",
			Failed:  "Erro ao cadastrar paciente",
		},
		References: map[string]OptionSource{
			"responsible_id": refs.ResponsibleOptions,
		},
	}, deps)

	return &patientUsecase{
		EntityCatalog: catalog,
		deps:          deps,
	}
}

// Deactivate hides a patient from active lists. Patients are never deleted.
func (u *patientUsecase) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := u.deps.Store.Update(ctx, entity.TypePatient, id, entity.Record{"is_active": false})
	if err != nil {
		if repository.ClassOf(err) == repository.ClassNotFound {
			return ErrPatientNotFound
		}
		u.deps.Log.Warnf("Failed to deactivate patient: %+v", err)
		return err
	}

	if err := u.deps.Cache.Invalidate(ctx, entity.TypePatient); err != nil {
		u.deps.Log.Warnf("Failed to invalidate patient lists: %+v", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
