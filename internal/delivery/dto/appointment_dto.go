package dto

import (
	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID               uuid.UUID  `json:"id"`
	PatientID        uuid.UUID  `json:"patient_id"`
	PatientName      string     `json:"patient_name"`
	ProfessionalID   uuid.UUID  `json:"professional_id"`
	ProfessionalName string     `json:"professional_name"`
	SpecialtyID      uuid.UUID  `json:"specialty_id"`
	SpecialtyName    string     `json:"specialty_name"`
	RoomID           *uuid.UUID `json:"room_id,omitempty"`
	RoomName         string     `json:"room_name,omitempty"`
	AppointmentDate  string     `json:"appointment_date"`
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
	Notes            *string    `json:"notes,omitempty"`
	Price            *string    `json:"price,omitempty"`
	Status           string     `json:"status"`
}
