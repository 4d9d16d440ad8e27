package converter

import (
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"
)

func SpecialtyToResponse(s *entity.Specialty) *dto.SpecialtyResponse {
	return &dto.SpecialtyResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DefaultPrice:    nullDecimal(s.DefaultPrice),
		SessionDuration: s.SessionDuration,
	}
}

func SpecialtiesToResponses(specialties []entity.Specialty) []*dto.SpecialtyResponse {
	responses := make([]*dto.SpecialtyResponse, len(specialties))
	for i := range specialties {
		responses[i] = SpecialtyToResponse(&specialties[i])
	}
	return responses
}

func SpecialtyToOption(s *entity.Specialty) dto.OptionResponse {
	return dto.OptionResponse{Value: s.ID.String(), Label: s.Name}
}

func RoomToResponse(r *entity.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Equipment:   r.Equipment,
	}
}

func RoomsToResponses(rooms []entity.Room) []*dto.RoomResponse {
	responses := make([]*dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = RoomToResponse(&rooms[i])
	}
	return responses
}

func RoomToOption(r *entity.Room) dto.OptionResponse {
	return dto.OptionResponse{Value: r.ID.String(), Label: r.Name}
}
