package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProfessionalSpecialties is the fixed set offered for a professional's specialty.
var ProfessionalSpecialties = []string{
	"Psicologia",
	"Nutrição",
	"Musicoterapia",
	"Psicopedagogia",
	"Assistência Social",
	"Fisioterapia",
	"Fonoaudiologia",
	"Terapia Ocupacional",
}

// Profile is a person attached to an identity. Professionals and
// responsibles are both profiles, told apart by Role.
type Profile struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName            string    `gorm:"type:varchar(255);not null;index" json:"full_name"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone               *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Role                Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	Specialty           *string   `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	ProfessionalLicense *string   `gorm:"type:varchar(50)" json:"professional_license,omitempty"`
	IsActive            *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// SpecialtyName returns the specialty or "" when unset.
func (p *Profile) SpecialtyName() string {
	if p.Specialty == nil {
		return ""
	}
	return *p.Specialty
}

// IsPsychologist reports whether the specialty belongs to psychology.
func (p *Profile) IsPsychologist() bool {
	return strings.Contains(p.SpecialtyName(), "Psicolog")
}
