package usecase

import (
	"context"

	"neuroclinic/internal/converter"
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"
)

var (
	activePatientsQuery = entity.ListQuery{
		Entity:  entity.TypePatient,
		Filters: []entity.Filter{{Column: "is_active", Value: true}},
		OrderBy: "full_name",
	}
	professionalOptionsQuery = entity.ListQuery{
		Entity: entity.TypeProfile,
		Filters: []entity.Filter{
			{Column: "role", Value: string(entity.RoleProfessional)},
			{Column: "is_active", Value: true},
		},
		OrderBy: "full_name",
	}
	responsiblesQuery = entity.ListQuery{
		Entity:  entity.TypeProfile,
		Filters: []entity.Filter{{Column: "role", Value: string(entity.RoleResponsible)}},
		OrderBy: "full_name",
	}
	activeSpecialtiesQuery = entity.ListQuery{
		Entity:  entity.TypeSpecialty,
		Filters: []entity.Filter{{Column: "is_active", Value: true}},
		OrderBy: "name",
	}
	activeRoomsQuery = entity.ListQuery{
		Entity:  entity.TypeRoom,
		Filters: []entity.Filter{{Column: "is_active", Value: true}},
		OrderBy: "name",
	}
)

// ReferenceUsecase serves the small lists that back form selects.
type ReferenceUsecase interface {
	Specialties(ctx context.Context) (*dto.ReferenceListResponse, error)
	Rooms(ctx context.Context) (*dto.ReferenceListResponse, error)
	Responsibles(ctx context.Context) (*dto.ReferenceListResponse, error)

	PatientOptions(ctx context.Context) ([]dto.OptionResponse, error)
	ProfessionalOptions(ctx context.Context) ([]dto.OptionResponse, error)
	ResponsibleOptions(ctx context.Context) ([]dto.OptionResponse, error)
	SpecialtyOptions(ctx context.Context) ([]dto.OptionResponse, error)
	RoomOptions(ctx context.Context) ([]dto.OptionResponse, error)
	// SpecialtyPrices maps specialty ids to their non-zero default price.
	SpecialtyPrices(ctx context.Context) (map[string]string, error)
}

type referenceUsecase struct {
	deps Dependencies
}

func NewReferenceUsecase(deps Dependencies) ReferenceUsecase {
	return &referenceUsecase{deps: deps}
}

func (u *referenceUsecase) specialties(ctx context.Context) ([]entity.Specialty, error) {
	specialties, err := fetch[entity.Specialty](ctx, u.deps, activeSpecialtiesQuery)
	if err != nil {
		u.deps.Log.Warnf("Failed to load specialties: %+v", err)
		return nil, err
	}
	return specialties, nil
}

func (u *referenceUsecase) rooms(ctx context.Context) ([]entity.Room, error) {
	rooms, err := fetch[entity.Room](ctx, u.deps, activeRoomsQuery)
	if err != nil {
		u.deps.Log.Warnf("Failed to load rooms: %+v", err)
		return nil, err
	}
	return rooms, nil
}

func (u *referenceUsecase) responsibles(ctx context.Context) ([]entity.Profile, error) {
	profiles, err := fetch[entity.Profile](ctx, u.deps, responsiblesQuery)
	if err != nil {
		u.deps.Log.Warnf("Failed to load responsibles: %+v", err)
		return nil, err
	}
	return profiles, nil
}

func (u *referenceUsecase) Specialties(ctx context.Context) (*dto.ReferenceListResponse, error) {
	specialties, err := u.specialties(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReferenceListResponse{
		Items: converter.SpecialtiesToResponses(specialties),
		Total: len(specialties),
	}, nil
}

func (u *referenceUsecase) Rooms(ctx context.Context) (*dto.ReferenceListResponse, error) {
	rooms, err := u.rooms(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReferenceListResponse{
		Items: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *referenceUsecase) Responsibles(ctx context.Context) (*dto.ReferenceListResponse, error) {
	profiles, err := u.responsibles(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReferenceListResponse{
		Items: converter.ProfessionalsToResponses(profiles),
		Total: len(profiles),
	}, nil
}

func (u *referenceUsecase) PatientOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	patients, err := fetch[entity.Patient](ctx, u.deps, activePatientsQuery)
	if err != nil {
		u.deps.Log.Warnf("Failed to load patient options: %+v", err)
		return nil, err
	}
	opts := make([]dto.OptionResponse, len(patients))
	for i := range patients {
		opts[i] = converter.PatientToOption(&patients[i])
	}
	return opts, nil
}

func (u *referenceUsecase) ProfessionalOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	profiles, err := fetch[entity.Profile](ctx, u.deps, professionalOptionsQuery)
	if err != nil {
		u.deps.Log.Warnf("Failed to load professional options: %+v", err)
		return nil, err
	}
	opts := make([]dto.OptionResponse, len(profiles))
	for i := range profiles {
		opts[i] = converter.ProfileToOption(&profiles[i])
	}
	return opts, nil
}

func (u *referenceUsecase) ResponsibleOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	profiles, err := u.responsibles(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]dto.OptionResponse, len(profiles))
	for i := range profiles {
		opts[i] = dto.OptionResponse{Value: profiles[i].ID.String(), Label: profiles[i].FullName}
	}
	return opts, nil
}

func (u *referenceUsecase) SpecialtyOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	specialties, err := u.specialties(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]dto.OptionResponse, len(specialties))
	for i := range specialties {
		opts[i] = converter.SpecialtyToOption(&specialties[i])
	}
	return opts, nil
}

func (u *referenceUsecase) RoomOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	rooms, err := u.rooms(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]dto.OptionResponse, len(rooms))
	for i := range rooms {
		opts[i] = converter.RoomToOption(&rooms[i])
	}
	return opts, nil
}

func (u *referenceUsecase) SpecialtyPrices(ctx context.Context) (map[string]string, error) {
	specialties, err := u.specialties(ctx)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]string, len(specialties))
	for i := range specialties {
		if price, ok := specialties[i].PriceDefault(); ok {
			prices[specialties[i].ID.String()] = price.StringFixed(2)
		}
	}
	return prices, nil
}
