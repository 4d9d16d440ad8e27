package converter

import (
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	resp := &dto.AppointmentResponse{
		ID:               a.ID,
		PatientID:        a.PatientID,
		PatientName:      a.PatientName(),
		ProfessionalID:   a.ProfessionalID,
		ProfessionalName: a.ProfessionalName(),
		SpecialtyID:      a.SpecialtyID,
		SpecialtyName:    a.SpecialtyName(),
		RoomID:           a.RoomID,
		AppointmentDate:  a.AppointmentDate.Format(dateLayout),
		StartTime:        clock(a.StartTime),
		EndTime:          clock(a.EndTime),
		Notes:            a.Notes,
		Price:            nullDecimal(a.Price),
		Status:           string(a.Status),
	}
	if a.Room != nil {
		resp.RoomName = a.Room.Name
	}
	return resp
}

func AppointmentsToResponses(appointments []entity.Appointment) []*dto.AppointmentResponse {
	responses := make([]*dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = AppointmentToResponse(&appointments[i])
	}
	return responses
}

// clock trims seconds from a stored time of day.
func clock(v string) string {
	t, err := entity.ParseClock(v)
	if err != nil {
		return v
	}
	return t.Format("15:04")
}

func nullDecimal(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}
