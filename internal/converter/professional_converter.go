package converter

import (
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"
)

func ProfessionalToResponse(p *entity.Profile) *dto.ProfessionalResponse {
	return &dto.ProfessionalResponse{
		ID:                  p.ID,
		FullName:            p.FullName,
		Email:               p.Email,
		Phone:               p.Phone,
		Specialty:           p.Specialty,
		ProfessionalLicense: p.ProfessionalLicense,
		IsActive:            p.Active(),
		CreatedAt:           p.CreatedAt,
	}
}

func ProfessionalsToResponses(profiles []entity.Profile) []*dto.ProfessionalResponse {
	responses := make([]*dto.ProfessionalResponse, len(profiles))
	for i := range profiles {
		responses[i] = ProfessionalToResponse(&profiles[i])
	}
	return responses
}

// ProfileToOption labels a profile with its name, plus specialty when set.
func ProfileToOption(p *entity.Profile) dto.OptionResponse {
	label := p.FullName
	if s := p.SpecialtyName(); s != "" {
		label += " - " + s
	}
	return dto.OptionResponse{Value: p.ID.String(), Label: label}
}
