package dto

import (
	"time"

	"github.com/google/uuid"
)

// PatientResponse represents a patient with its derived age
type PatientResponse struct {
	ID               uuid.UUID  `json:"id"`
	FullName         string     `json:"full_name"`
	BirthDate        string     `json:"birth_date"`
	Age              int        `json:"age"`
	CPF              *string    `json:"cpf,omitempty"`
	RG               *string    `json:"rg,omitempty"`
	Address          *string    `json:"address,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	EmergencyContact *string    `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string    `json:"emergency_phone,omitempty"`
	MedicalHistory   *string    `json:"medical_history,omitempty"`
	Allergies        *string    `json:"allergies,omitempty"`
	Medications      *string    `json:"medications,omitempty"`
	ResponsibleID    *uuid.UUID `json:"responsible_id,omitempty"`
	ResponsibleName  string     `json:"responsible_name,omitempty"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
}
