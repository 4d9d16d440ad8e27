package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfessionalResponse struct {
	ID                  uuid.UUID `json:"id"`
	FullName            string    `json:"full_name"`
	Email               string    `json:"email"`
	Phone               *string   `json:"phone,omitempty"`
	Specialty           *string   `json:"specialty,omitempty"`
	ProfessionalLicense *string   `json:"professional_license,omitempty"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
}
