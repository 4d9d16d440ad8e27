package converter

import (
	"time"

	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/stats"
)

const dateLayout = "2006-01-02"

func PatientToResponse(p *entity.Patient, now time.Time) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:               p.ID,
		FullName:         p.FullName,
		BirthDate:        p.BirthDate.Format(dateLayout),
		Age:              stats.Age(p.BirthDate, now),
		CPF:              p.CPF,
		RG:               p.RG,
		Address:          p.Address,
		Phone:            p.Phone,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		MedicalHistory:   p.MedicalHistory,
		Allergies:        p.Allergies,
		Medications:      p.Medications,
		ResponsibleID:    p.ResponsibleID,
		ResponsibleName:  p.ResponsibleName(),
		IsActive:         p.Active(),
		CreatedAt:        p.CreatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient, now time.Time) []*dto.PatientResponse {
	responses := make([]*dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = PatientToResponse(&patients[i], now)
	}
	return responses
}

func PatientToOption(p *entity.Patient) dto.OptionResponse {
	return dto.OptionResponse{Value: p.ID.String(), Label: p.FullName}
}
