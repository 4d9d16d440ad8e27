package usecase

import (
	"context"
	"strings"
	"time"

	"neuroclinic/internal/converter"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/filter"
	"neuroclinic/internal/form"
	"neuroclinic/internal/stats"
)

// AppointmentSchema is the create form of an appointment. Status is left to
// the column default.
var AppointmentSchema = &form.Schema{
	Entity: entity.TypeAppointment,
	Fields: []form.Field{
		{Name: "patient_id", Label: "Paciente", Kind: form.KindReference, Required: true, References: entity.TypePatient},
		{Name: "professional_id", Label: "Profissional", Kind: form.KindReference, Required: true, References: entity.TypeProfile},
		{Name: "specialty_id", Label: "Especialidade", Kind: form.KindReference, Required: true, References: entity.TypeSpecialty},
		{Name: "room_id", Label: "Sala", Kind: form.KindReference, References: entity.TypeRoom},
		{Name: "appointment_date", Label: "Data", Kind: form.KindDate, Required: true},
		{Name: "start_time", Label: "Hora Início", Kind: form.KindTime, Required: true},
		{Name: "end_time", Label: "Hora Fim", Kind: form.KindTime, Required: true},
		{Name: "price", Label: "Valor (R$)", Kind: form.KindDecimal, Positive: true, Scale: 2, MaxDigits: 10},
		{Name: "notes", Label: "Observações", Kind: form.KindText},
	},
	Checks: []form.Check{
		{
			Field:   "end_time",
			Message: "end_time must be after start_time",
			Valid: func(r entity.Record) bool {
				start, _ := r["start_time"].(string)
				end, _ := r["end_time"].(string)
				// Both are normalized to HH:MM, so they order as strings.
				return start < end
			},
		},
	},
}

var appointmentsQuery = entity.ListQuery{
	Entity: entity.TypeAppointment,
	Joins: []entity.Join{
		{Relation: "Patient", Entity: entity.TypePatient},
		{Relation: "Professional", Entity: entity.TypeProfile},
		{Relation: "Specialty", Entity: entity.TypeSpecialty},
		{Relation: "Room", Entity: entity.TypeRoom},
	},
	OrderBy: "appointment_date",
}

var appointmentFilter = filter.Spec[entity.Appointment]{
	Text: []func(entity.Appointment) string{
		func(a entity.Appointment) string { return a.PatientName() },
		func(a entity.Appointment) string { return a.ProfessionalName() },
	},
	Categories: map[string]filter.Category[entity.Appointment]{
		"status": {
			Value:   func(a entity.Appointment) string { return string(a.Status) },
			Options: entity.AppointmentStatuses,
		},
	},
}

type AppointmentUsecase interface {
	EntityUsecase
}

type appointmentUsecase struct {
	*EntityCatalog[entity.Appointment]
}

func NewAppointmentUsecase(deps Dependencies, refs ReferenceUsecase) AppointmentUsecase {
	catalog := NewEntityCatalog(Definition[entity.Appointment]{
		Schema: AppointmentSchema,
		Query:  appointmentsQuery,
		Filter: appointmentFilter,
		Stats: func(appointments []entity.Appointment, now time.Time) any {
			return stats.Appointments(appointments, now)
		},
		Convert: func(appointments []entity.Appointment, _ time.Time) any {
			return converter.AppointmentsToResponses(appointments)
		},
		Messages: Messages{
			Created: "Agendamento criado com sucesso!",
			Failed:  "Erro ao criar agendamento",
		},
		Prefills: func(ctx context.Context) ([]form.Prefill, error) {
			prices, err := refs.SpecialtyPrices(ctx)
			if err != nil {
				return nil, err
			}
			return []form.Prefill{{
				Trigger: "specialty_id",
				Target:  "price",
				Lookup: func(id string) (string, bool) {
					price, ok := prices[strings.ToLower(strings.TrimSpace(id))]
					return price, ok
				},
			}}, nil
		},
		References: map[string]OptionSource{
			"patient_id":      refs.PatientOptions,
			"professional_id": refs.ProfessionalOptions,
			"specialty_id":    refs.SpecialtyOptions,
			"room_id":         refs.RoomOptions,
		},
	}, deps)

	return &appointmentUsecase{EntityCatalog: catalog}
}
